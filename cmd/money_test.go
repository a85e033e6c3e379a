package cmd

import (
	"errors"
	"testing"

	"github.com/masmgr/revlog/internal/money"
)

func TestMoneyCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "common ok", args: []string{"common", "10.5"}, want: "10.5\n"},
		{name: "common rejects sub-cent", args: []string{"common", "10.555"}, wantErr: money.DefaultCommonMessage},
		{name: "positive rejects zero", args: []string{"positive", "0"}, wantErr: money.DefaultPositiveMessage},
		{name: "nonnegative accepts zero", args: []string{"nonnegative", "0"}, want: "0\n"},
		{name: "nonnegative rejects negative", args: []string{"nonnegative", "--", "-1"}, wantErr: money.DefaultNonnegativeMessage},
		{name: "custom message", args: []string{"positive", "--message", "price required", "--", "-3"}, wantErr: "price required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runApp(t, append([]string{"money"}, tt.args...)...)
			if tt.wantErr != "" {
				if !errors.Is(err, money.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoneyCommand_BadInput(t *testing.T) {
	if _, err := runApp(t, "money", "common", "ten"); !errors.Is(err, money.ErrValidation) {
		t.Errorf("expected validation error for non-numeric amount, got %v", err)
	}
	if _, err := runApp(t, "money", "common"); err == nil {
		t.Error("expected error for missing amount, got nil")
	}
}
