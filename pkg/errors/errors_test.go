package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(ErrCodeInvalidState, "pointer %d out of range", 7)
	if got, want := err.Error(), "INVALID_STATE: pointer 7 out of range"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(ErrCodeFileNotFound, errors.New("no such file"), "puzzle file %s", "p.toml")
	if got, want := wrapped.Error(), "FILE_NOT_FOUND: puzzle file p.toml: no such file"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Wrap(ErrCodeInvalidPath, cause, "read %s", "p.toml")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestIs(t *testing.T) {
	inner := New(ErrCodeInvalidState, "bad values")
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"same code", inner, ErrCodeInvalidState, true},
		{"other code", inner, ErrCodeInvalidMove, false},
		{"outer code", Wrap(ErrCodeInvalidFormat, inner, "decode"), ErrCodeInvalidFormat, true},
		{"inner code", Wrap(ErrCodeInvalidFormat, inner, "decode"), ErrCodeInvalidState, true},
		{"behind fmt wrap", fmt.Errorf("load: %w", inner), ErrCodeInvalidState, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidState, false},
		{"nil", nil, ErrCodeInvalidState, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	wrapped := Wrap(ErrCodeInternal, New(ErrCodeInvalidState, "inner"), "outer")
	if got := GetCode(wrapped); got != ErrCodeInternal {
		t.Errorf("GetCode(wrapped) = %q, want outermost %q", got, ErrCodeInternal)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}
