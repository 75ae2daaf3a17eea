package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindConfig           Kind = "config"
	KindBootstrap        Kind = "bootstrap"
	KindTransport        Kind = "transport"
	KindInvalidInput     Kind = "invalid_input"
	KindPayloadTooLarge  Kind = "payload_too_large"
	KindUnsupportedMedia Kind = "unsupported_media"
	KindAIService        Kind = "ai_service"
	KindAnalysis         Kind = "analysis"
	KindWeatherService   Kind = "weather_service"
	KindNotFound         Kind = "not_found"
	KindStorage          Kind = "storage"
	KindUnknown          Kind = "unknown"
)

type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(kind Kind, op, message string, err error) *Error {
	if err == nil {
		return nil
	}

	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Cause:   err,
	}
}

func New(kind Kind, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
	}
}

// IsKind checks whether any error in the chain matches the provided kind.
func IsKind(err error, kind Kind) bool {
	var target *Error
	for err != nil {
		if errors.As(err, &target) {
			return target.Kind == kind
		}
		err = errors.Unwrap(err)
	}
	return false
}

// UserMessage extracts the human-readable message carried by a typed error.
// Untyped errors fall back to their default rendering.
func UserMessage(err error) string {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
