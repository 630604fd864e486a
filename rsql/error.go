package rsql

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	// ErrorTypeSyntax the text is not a valid expression
	ErrorTypeSyntax ErrorType = iota
	// ErrorTypeUnsupported the expression uses a construct with no function-call equivalent
	ErrorTypeUnsupported
	// ErrorTypeNotFunction a function call was expected
	ErrorTypeNotFunction
)

// ParseError 解析错误
type ParseError struct {
	Type    ErrorType
	Message string
	// Input is the text being parsed.
	Input string
	// Token is the offending fragment, when known.
	Token string
	Cause error
}

func (e *ParseError) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s] %s", e.getErrorTypeName(), e.Message))
	if e.Token != "" {
		builder.WriteString(fmt.Sprintf(" (found '%s')", e.Token))
	}
	if e.Cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Cause.Error())
	}
	if e.Input != "" {
		builder.WriteString(fmt.Sprintf("\nInput: %s", e.Input))
	}
	return builder.String()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func (e *ParseError) getErrorTypeName() string {
	switch e.Type {
	case ErrorTypeSyntax:
		return "SYNTAX_ERROR"
	case ErrorTypeUnsupported:
		return "UNSUPPORTED_EXPRESSION"
	case ErrorTypeNotFunction:
		return "NOT_A_FUNCTION"
	default:
		return "UNKNOWN_ERROR"
	}
}

// IsParseError reports whether err is a *ParseError of the given type.
func IsParseError(err error, errorType ErrorType) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Type == errorType
}
