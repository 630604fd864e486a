package rsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/pinotsql/types"
)

func TestParseFunction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *types.Function
	}{
		{
			name:     "percentile",
			input:    "PERCENTILE(95, duration)",
			expected: types.NewFunction("PERCENTILE", types.Literal(types.IntValue(95)), types.Column("duration")),
		},
		{
			name:     "legacy percentile",
			input:    "PERCENTILE99(API_TRACE.duration)",
			expected: types.NewFunction("PERCENTILE99", types.Column("API_TRACE.duration")),
		},
		{
			name:     "avgrate with interval",
			input:    `AVGRATE(bytes, "PT5S")`,
			expected: types.NewFunction("AVGRATE", types.Column("bytes"), types.Literal(types.StringValue("PT5S"))),
		},
		{
			name:     "single quoted string",
			input:    `CONCAT(a, '-', b)`,
			expected: types.NewFunction("CONCAT", types.Column("a"), types.Literal(types.StringValue("-")), types.Column("b")),
		},
		{
			name:     "count star",
			input:    "COUNT(*)",
			expected: types.NewFunction("COUNT"),
		},
		{
			name:     "count star with spaces",
			input:    "COUNT ( * )",
			expected: types.NewFunction("COUNT"),
		},
		{
			name:  "nested",
			input: "DIV(SUM(a.b.c), 2.5)",
			expected: types.NewFunction("DIV",
				types.Call("SUM", types.Column("a.b.c")),
				types.Literal(types.DoubleValue(2.5))),
		},
		{
			name:  "literals",
			input: "F(true, nil, null, -3, 4294967296, -1.5)",
			expected: types.NewFunction("F",
				types.Literal(types.BoolValue(true)),
				types.Literal(types.NullValue()),
				types.Literal(types.NullValue()),
				types.Literal(types.IntValue(-3)),
				types.Literal(types.LongValue(4294967296)),
				types.Literal(types.DoubleValue(-1.5))),
		},
		{
			name:     "star inside string literals",
			input:    `CONCAT("f(*)", 'g( * )', a)`,
			expected: types.NewFunction("CONCAT", types.Literal(types.StringValue("f(*)")), types.Literal(types.StringValue("g( * )")), types.Column("a")),
		},
		{
			name:     "call syntax inside string literals",
			input:    `CONCAT('h(x)', "say \"k(*)\"", a)`,
			expected: types.NewFunction("CONCAT", types.Literal(types.StringValue("h(x)")), types.Literal(types.StringValue(`say "k(*)"`)), types.Column("a")),
		},
		{
			name:     "count star after string literal",
			input:    `F('(*)', COUNT(*))`,
			expected: types.NewFunction("F", types.Literal(types.StringValue("(*)")), types.Call("COUNT")),
		},
		{
			name:     "lower case names shadowing expr builtins",
			input:    "filter(a, b)",
			expected: types.NewFunction("filter", types.Column("a"), types.Column("b")),
		},
		{
			name:  "nested lower case names",
			input: "map(all(a), len(b), sum(c), not(d))",
			expected: types.NewFunction("map",
				types.Call("all", types.Column("a")),
				types.Call("len", types.Column("b")),
				types.Call("sum", types.Column("c")),
				types.Call("not", types.Column("d"))),
		},
		{
			name:     "no arguments",
			input:    "NOW()",
			expected: types.NewFunction("NOW"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := ParseFunction(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fn)
		})
	}
}

func TestParseExpression(t *testing.T) {
	e, err := ParseExpression("duration")
	require.NoError(t, err)
	assert.Equal(t, types.Column("duration"), e)

	e, err = ParseExpression("'x'")
	require.NoError(t, err)
	assert.Equal(t, types.Literal(types.StringValue("x")), e)

	e, err = ParseExpression("42")
	require.NoError(t, err)
	assert.Equal(t, types.Literal(types.IntValue(42)), e)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errType ErrorType
	}{
		{"empty", "  ", ErrorTypeSyntax},
		{"unbalanced", "PERCENTILE(95, duration", ErrorTypeSyntax},
		{"binary operator", "F(a + b)", ErrorTypeUnsupported},
		{"array", "F([1, 2])", ErrorTypeUnsupported},
		{"index access", "F(a[0])", ErrorTypeUnsupported},
		{"negated column", "F(-a)", ErrorTypeUnsupported},
		{"not a function", "duration", ErrorTypeNotFunction},
		{"unterminated string", "F('(*)", ErrorTypeSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFunction(tt.input)
			require.Error(t, err)
			assert.True(t, IsParseError(err, tt.errType), "got %v", err)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseFunction("F(a + b)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[UNSUPPORTED_EXPRESSION]")
	assert.Contains(t, err.Error(), "Input: F(a + b)")

	_, err = ParseFunction("F(a.g(b))")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), callPrefix)

	_, err = ParseFunction("duration")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[NOT_A_FUNCTION] expected a function call (found 'duration')")
}
