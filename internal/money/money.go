package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Default failure messages.
const (
	DefaultCommonMessage      = "Value passed is not a common amount"
	DefaultPositiveMessage    = "Value passed is not a common positive amount"
	DefaultNonnegativeMessage = "Value passed is not a common non-negative amount"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports an amount that failed one of the checks.
type ValidationError struct {
	Amount  float64
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AssertCommonAmount returns amount unchanged if it has at most two decimal
// places, i.e. formatting it with two decimals and parsing it back yields
// the same value. An empty message selects DefaultCommonMessage.
func AssertCommonAmount(amount float64, message string) (float64, error) {
	message = orDefault(message, DefaultCommonMessage)
	if !isCommon(amount) {
		return 0, &ValidationError{Amount: amount, Message: message}
	}
	return amount, nil
}

// AssertCommonPositiveAmount returns amount if it is a common amount greater than zero.
func AssertCommonPositiveAmount(amount float64, message string) (float64, error) {
	message = orDefault(message, DefaultPositiveMessage)
	if _, err := AssertCommonAmount(amount, message); err != nil {
		return 0, err
	}
	if amount > 0 {
		return amount, nil
	}
	return 0, &ValidationError{Amount: amount, Message: message}
}

// AssertCommonNonnegativeAmount returns amount if it is a common amount of zero or more.
func AssertCommonNonnegativeAmount(amount float64, message string) (float64, error) {
	message = orDefault(message, DefaultNonnegativeMessage)
	if _, err := AssertCommonAmount(amount, message); err != nil {
		return 0, err
	}
	if amount >= 0 {
		return amount, nil
	}
	return 0, &ValidationError{Amount: amount, Message: message}
}

// ParseAmount parses a decimal amount such as "10.50".
// NaN and infinities are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Message: "invalid amount: " + strconv.Quote(s)}
	}
	return v, nil
}

func isCommon(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(amount, 'f', 2, 64), 64)
	if err != nil {
		return false
	}
	return rounded == amount
}

func orDefault(message, def string) string {
	if message == "" {
		return def
	}
	return message
}
