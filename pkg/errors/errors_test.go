package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeValidation, "missing field: %s", "nodes")

	if err.Code != ErrCodeValidation {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeValidation)
	}

	if err.Message != "missing field: nodes" {
		t.Errorf("Message = %v, want %v", err.Message, "missing field: nodes")
	}

	expected := "VALIDATION: missing field: nodes"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeStorage, cause, "save material")

	if err.Code != ErrCodeStorage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStorage)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeValidation, "test"),
			code:     ErrCodeValidation,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeValidation, "test"),
			code:     ErrCodeStorage,
			expected: false,
		},
		{
			name:     "outer code",
			err:      Wrap(ErrCodeStorage, New(ErrCodeValidation, "inner"), "outer"),
			code:     ErrCodeStorage,
			expected: true,
		},
		{
			name:     "inner code",
			err:      Wrap(ErrCodeStorage, New(ErrCodeValidation, "inner"), "outer"),
			code:     ErrCodeValidation,
			expected: true,
		},
		{
			name:     "material not found is not found",
			err:      New(ErrCodeMaterialNotFound, "Steel"),
			code:     ErrCodeNotFound,
			expected: true,
		},
		{
			name:     "not found is not material not found",
			err:      New(ErrCodeNotFound, "x"),
			code:     ErrCodeMaterialNotFound,
			expected: false,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeValidation,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeValidation,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeUnsupportedNode, "test"), ErrCodeUnsupportedNode},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeMaterialNotFound, "material \"Steel\" not found"), "material \"Steel\" not found"},
		{"validation with cause", Wrap(ErrCodeValidation, errors.New("unexpected EOF"), "invalid JSON"), "invalid JSON: unexpected EOF"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsSoft(t *testing.T) {
	if !IsSoft(ErrCodeUnsupportedNode) || !IsSoft(ErrCodePartialLink) {
		t.Error("conversion issues should be soft")
	}
	if IsSoft(ErrCodeValidation) || IsSoft(ErrCodeNotFound) {
		t.Error("validation and lookup failures should be hard")
	}
}
