package rsql

import (
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/pkg/errors"

	"github.com/rulego/pinotsql/types"
)

var (
	// countStarPattern matches NAME(*), which is not valid expr syntax.
	countStarPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\(\s*\*\s*\)`)
	// callPattern matches the name of every call so it can be prefixed.
	callPattern = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
)

// callPrefix keeps call names away from expr builtins and predicates such as
// filter, map or all, which expr parses with their own grammar.
const callPrefix = "_call_"

// ParseFunction parses a single function call such as `PERCENTILE(95, duration)`.
func ParseFunction(text string) (*types.Function, error) {
	e, err := ParseExpression(text)
	if err != nil {
		return nil, err
	}
	if e.Kind != types.KindFunction {
		return nil, &ParseError{
			Type:    ErrorTypeNotFunction,
			Message: "expected a function call",
			Token:   e.String(),
			Input:   text,
		}
	}
	return e.Function, nil
}

// ParseExpression parses a literal, a column reference or a function call.
func ParseExpression(text string) (*types.Expression, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Type: ErrorTypeSyntax, Message: "empty expression"}
	}
	tree, err := parser.Parse(rewriteCalls(text))
	if err != nil {
		return nil, &ParseError{
			Type:    ErrorTypeSyntax,
			Message: "invalid expression",
			Input:   text,
			Cause:   errors.WithStack(err),
		}
	}
	e, err := toExpression(tree.Node)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Input = text
		}
		return nil, err
	}
	return e, nil
}

func toExpression(node ast.Node) (*types.Expression, error) {
	switch n := node.(type) {
	case *ast.CallNode:
		callee, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, unsupported("call target", n.Callee)
		}
		return toCall(strings.TrimPrefix(callee.Value, callPrefix), n.Arguments)
	case *ast.IdentifierNode:
		if strings.EqualFold(n.Value, "null") {
			return types.Literal(types.NullValue()), nil
		}
		return types.Column(n.Value), nil
	case *ast.MemberNode:
		name, err := memberPath(n)
		if err != nil {
			return nil, err
		}
		return types.Column(name), nil
	case *ast.IntegerNode:
		return types.Literal(integerValue(int64(n.Value))), nil
	case *ast.FloatNode:
		return types.Literal(types.DoubleValue(n.Value)), nil
	case *ast.StringNode:
		return types.Literal(types.StringValue(n.Value)), nil
	case *ast.BoolNode:
		return types.Literal(types.BoolValue(n.Value)), nil
	case *ast.NilNode:
		return types.Literal(types.NullValue()), nil
	case *ast.UnaryNode:
		return negated(n)
	default:
		return nil, unsupported("expression", node)
	}
}

// rewriteCalls prepares text for the expr parser. Outside string literals NAME(*)
// becomes NAME() and every call name gets callPrefix.
func rewriteCalls(text string) string {
	var b strings.Builder
	start := 0
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != '\'' && c != '"' && c != '`' {
			continue
		}
		b.WriteString(rewriteCode(text[start:i]))
		end := closingQuote(text, i)
		b.WriteString(text[i:end])
		start = end
		i = end - 1
	}
	b.WriteString(rewriteCode(text[start:]))
	return b.String()
}

func rewriteCode(code string) string {
	code = countStarPattern.ReplaceAllString(code, "$1()")
	return callPattern.ReplaceAllString(code, callPrefix+"$1(")
}

// closingQuote returns the index just past the string literal opened at i,
// or len(text) when it is not terminated.
func closingQuote(text string, i int) int {
	quote := text[i]
	for j := i + 1; j < len(text); j++ {
		switch {
		case text[j] == '\\' && quote != '`':
			j++
		case text[j] == quote:
			return j + 1
		}
	}
	return len(text)
}

func toCall(name string, nodes []ast.Node) (*types.Expression, error) {
	var args []*types.Expression
	for _, arg := range nodes {
		e, err := toExpression(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return types.Call(name, args...), nil
}

// integerValue keeps small integers as INT so they can serve as percentile values.
func integerValue(v int64) types.Value {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return types.IntValue(int32(v))
	}
	return types.LongValue(v)
}

func negated(n *ast.UnaryNode) (*types.Expression, error) {
	sign := int64(1)
	switch n.Operator {
	case "-":
		sign = -1
	case "+":
	default:
		return nil, unsupported("operator", n)
	}
	switch v := n.Node.(type) {
	case *ast.IntegerNode:
		return types.Literal(integerValue(sign * int64(v.Value))), nil
	case *ast.FloatNode:
		return types.Literal(types.DoubleValue(float64(sign) * v.Value)), nil
	default:
		return nil, unsupported("operator", n)
	}
}

// memberPath flattens a.b.c into a dotted column name.
func memberPath(n *ast.MemberNode) (string, error) {
	prop, ok := n.Property.(*ast.StringNode)
	if !ok || n.Optional {
		return "", unsupported("member access", n)
	}
	switch base := n.Node.(type) {
	case *ast.IdentifierNode:
		return base.Value + "." + prop.Value, nil
	case *ast.MemberNode:
		prefix, err := memberPath(base)
		if err != nil {
			return "", err
		}
		return prefix + "." + prop.Value, nil
	default:
		return "", unsupported("member access", n)
	}
}

func unsupported(what string, node ast.Node) error {
	return &ParseError{
		Type:    ErrorTypeUnsupported,
		Message: "unsupported " + what,
		Token:   strings.ReplaceAll(node.String(), callPrefix, ""),
	}
}
