package types

import (
	"fmt"
	"strings"
)

// ExpressionKind 表达式种类
type ExpressionKind int

const (
	KindLiteral ExpressionKind = iota
	KindColumn
	KindFunction
)

func (k ExpressionKind) String() string {
	switch k {
	case KindLiteral:
		return "LITERAL"
	case KindColumn:
		return "COLUMN"
	case KindFunction:
		return "NESTED_FUNCTION"
	default:
		return "UNKNOWN"
	}
}

// Expression is a single function argument: a literal, a column reference or a nested call.
type Expression struct {
	Kind       ExpressionKind
	Literal    Value
	ColumnName string
	Function   *Function
}

// Literal wraps a value as an argument expression.
func Literal(v Value) *Expression {
	return &Expression{Kind: KindLiteral, Literal: v}
}

// Column references a column by its logical name.
func Column(name string) *Expression {
	return &Expression{Kind: KindColumn, ColumnName: name}
}

// Call builds a nested function argument.
func Call(name string, args ...*Expression) *Expression {
	return &Expression{Kind: KindFunction, Function: NewFunction(name, args...)}
}

func (e *Expression) IsLiteral() bool {
	return e != nil && e.Kind == KindLiteral
}

func (e *Expression) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindLiteral:
		return e.Literal.GoString()
	case KindColumn:
		return e.ColumnName
	case KindFunction:
		return e.Function.String()
	default:
		return fmt.Sprintf("<%s>", e.Kind)
	}
}

// Function is an abstract function call as produced by the planner.
// The argument order is significant.
type Function struct {
	Name      string
	Arguments []*Expression
}

func NewFunction(name string, args ...*Expression) *Function {
	return &Function{Name: name, Arguments: args}
}

// WithName returns a copy of f carrying a different name.
func (f *Function) WithName(name string) *Function {
	return &Function{Name: name, Arguments: f.copyArguments()}
}

// WithoutArgument returns a copy of f with the argument at index i removed.
func (f *Function) WithoutArgument(i int) *Function {
	args := make([]*Expression, 0, len(f.Arguments))
	args = append(args, f.Arguments[:i]...)
	args = append(args, f.Arguments[i+1:]...)
	return &Function{Name: f.Name, Arguments: args}
}

// WithArgumentAt returns a copy of f with arg inserted at index i.
func (f *Function) WithArgumentAt(i int, arg *Expression) *Function {
	args := make([]*Expression, 0, len(f.Arguments)+1)
	args = append(args, f.Arguments[:i]...)
	args = append(args, arg)
	args = append(args, f.Arguments[i:]...)
	return &Function{Name: f.Name, Arguments: args}
}

func (f *Function) copyArguments() []*Expression {
	args := make([]*Expression, len(f.Arguments))
	copy(args, f.Arguments)
	return args
}

func (f *Function) String() string {
	if f == nil {
		return "<nil>"
	}
	parts := make([]string, len(f.Arguments))
	for i, arg := range f.Arguments {
		parts[i] = arg.String()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}
