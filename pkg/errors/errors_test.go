package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeUnitNotFound, "unknown unit: %s", "cubit"),
			want: "UNIT_NOT_FOUND: unknown unit: cubit",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeInvalidLibrary, stderrors.New("unexpected token"), "parse %s", "lib.toml"),
			want: "INVALID_LIBRARY: parse lib.toml: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !strings.HasPrefix(got, string(tt.err.Code)) {
				t.Errorf("Error() = %q, want prefix %q", got, tt.err.Code)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDimensionMismatch, "cannot add Length and Time")

	if !Is(err, ErrCodeDimensionMismatch) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeUnitNotFound) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeDimensionMismatch) {
		t.Error("Is() = true for plain error")
	}
}

func TestIsWrapped(t *testing.T) {
	inner := New(ErrCodeMissingCorrelation, "no Antoine coefficients for Argon")
	outer := fmt.Errorf("k-values: %w", inner)

	if !Is(outer, ErrCodeMissingCorrelation) {
		t.Error("Is() should unwrap through fmt.Errorf chains")
	}
	if GetCode(outer) != ErrCodeMissingCorrelation {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeMissingCorrelation)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidComponent, "molecular weight must be positive")
	if got := UserMessage(err); got != "molecular weight must be positive" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("some failure")
	if got := UserMessage(plain); got != "some failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeNoRoot, cause, "cubic solve failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}
