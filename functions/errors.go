package functions

import (
	"errors"
	"strings"
)

// ErrorType 转换错误类型
type ErrorType int

const (
	// ErrorTypeArgument a required argument is missing or has the wrong shape
	ErrorTypeArgument ErrorType = iota
	// ErrorTypeFormat a rate interval is not an ISO-8601 duration
	ErrorTypeFormat
	// ErrorTypeContextState the execution context lacks the time window AVGRATE needs
	ErrorTypeContextState
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeArgument:
		return "ARGUMENT_ERROR"
	case ErrorTypeFormat:
		return "FORMAT_ERROR"
	case ErrorTypeContextState:
		return "CONTEXT_STATE_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Sentinels matched by errors.Is against a *ConversionError of the same type.
var (
	ErrArgument     = errors.New("invalid function argument")
	ErrFormat       = errors.New("invalid duration format")
	ErrContextState = errors.New("missing execution context state")
)

// ConversionError reports a malformed function. It is never transient.
type ConversionError struct {
	Type     ErrorType
	Function string
	Message  string
	Cause    error
}

func (e *ConversionError) Error() string {
	var builder strings.Builder
	builder.WriteString("[")
	builder.WriteString(e.Type.String())
	builder.WriteString("] ")
	if e.Function != "" {
		builder.WriteString(e.Function)
		builder.WriteString(": ")
	}
	builder.WriteString(e.Message)
	if e.Cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Cause.Error())
	}
	return builder.String()
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

func (e *ConversionError) Is(target error) bool {
	switch target {
	case ErrArgument:
		return e.Type == ErrorTypeArgument
	case ErrFormat:
		return e.Type == ErrorTypeFormat
	case ErrContextState:
		return e.Type == ErrorTypeContextState
	}
	return false
}

func newArgumentError(function, message string) *ConversionError {
	return &ConversionError{Type: ErrorTypeArgument, Function: function, Message: message}
}

func newFormatError(function, message string, cause error) *ConversionError {
	return &ConversionError{Type: ErrorTypeFormat, Function: function, Message: message, Cause: cause}
}

func newContextStateError(function, message string) *ConversionError {
	return &ConversionError{Type: ErrorTypeContextState, Function: function, Message: message}
}
