package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidWeight, "weight %d is not on the palette", 0)

	if err.Code != ErrCodeInvalidWeight {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidWeight)
	}

	expected := "INVALID_WEIGHT: weight 0 is not on the palette"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("toml: line 3")
	err := Wrap(ErrCodeInvalidConfig, cause, "decoding settings")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_CONFIG: decoding settings: toml: line 3"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidAngle, "NaN"), ErrCodeInvalidAngle, true},
		{"non-matching code", New(ErrCodeInvalidAngle, "NaN"), ErrCodeInvalidWeight, false},
		{"wrapped outer code", Wrap(ErrCodeInvalidCommand, New(ErrCodeInvalidPan, "up"), "parse"), ErrCodeInvalidCommand, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidPan, false},
		{"nil error", nil, ErrCodeInvalidPan, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidPan, "unknown pan %q", "up")); got != `unknown pan "up"` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("boom")); got != "boom" {
		t.Errorf("UserMessage() = %q, want %q", got, "boom")
	}
}
