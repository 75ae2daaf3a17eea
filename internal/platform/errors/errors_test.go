package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "error with cause",
			err: Wrap(KindConfig, "load", "failed to load config",
				errors.New("file not found")),
			contains: []string{"[config:load]", "failed to load config", "file not found"},
		},
		{
			name:     "error without cause",
			err:      New(KindInvalidInput, "ask", "Please ask a question!"),
			contains: []string{"[invalid_input:ask]", "Please ask a question!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errStr, substr) {
					t.Errorf("error string %q does not contain %q", errStr, substr)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := Wrap(KindWeatherService, "fetch", "wrapped", originalErr)

	if !errors.Is(wrappedErr, originalErr) {
		t.Error("Unwrap should return the original error")
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{
			name:     "direct error kind match",
			err:      New(KindNotFound, "search", "no rows"),
			kind:     KindNotFound,
			expected: true,
		},
		{
			name:     "kind mismatch",
			err:      New(KindNotFound, "search", "no rows"),
			kind:     KindAIService,
			expected: false,
		},
		{
			name:     "untyped error",
			err:      errors.New("plain"),
			kind:     KindUnknown,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			kind:     KindUnknown,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.expected {
				t.Errorf("IsKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(KindAnalysis, "identify", "Cannot analyze image: boom")); got != "Cannot analyze image: boom" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(nil); got != "" {
		t.Errorf("UserMessage(nil) = %q", got)
	}
}
