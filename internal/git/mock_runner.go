package git

import "context"

// MockRunner is a test double for ExecRunner.
// It returns canned output without needing a git binary or repository.
type MockRunner struct {
	Output string
	Error  error
	Calls  [][]string
}

// NewMockRunner creates a new MockRunner with the given output.
func NewMockRunner(output string, err error) *MockRunner {
	return &MockRunner{
		Output: output,
		Error:  err,
	}
}

// Run records the arguments and returns the predefined output or error.
func (m *MockRunner) Run(_ context.Context, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string(nil), args...))
	if m.Error != nil {
		return "", m.Error
	}
	return m.Output, nil
}

// LastCall returns the arguments of the most recent Run call.
func (m *MockRunner) LastCall() []string {
	if len(m.Calls) == 0 {
		return nil
	}
	return m.Calls[len(m.Calls)-1]
}

// Compile-time interface conformance check.
var _ Runner = (*MockRunner)(nil)
