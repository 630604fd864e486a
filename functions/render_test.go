package functions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/pinotsql/types"
)

func TestRenderLiteral(t *testing.T) {
	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"null", types.NullValue(), "null"},
		{"string", types.StringValue("GET /api"), "'GET /api'"},
		{"string with quote", types.StringValue("it's"), "'it''s'"},
		{"int", types.IntValue(-7), "-7"},
		{"long", types.LongValue(1 << 40), "1099511627776"},
		{"float", types.FloatValue(1.5), "1.5"},
		{"double", types.DoubleValue(0.25), "0.25"},
		{"bool", types.BoolValue(true), "true"},
		{"bytes", types.BytesValue([]byte{0xde, 0xad}), "'dead'"},
		{"timestamp", types.TimestampValue(1700000000000), "1700000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := renderLiteral(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := renderLiteral(types.Value{Type: types.ValueType(99)})
	assert.Error(t, err)
}

func TestExpressionRenderer_Columns(t *testing.T) {
	converter := NewFunctionConverter("")
	renderer := NewExpressionRenderer(converter, WithColumnMapping(map[string]string{
		"API_TRACE.duration": "duration_millis",
	}))

	out, err := renderer.Render(types.EmptyWindow, types.Column("API_TRACE.duration"))
	require.NoError(t, err)
	assert.Equal(t, "duration_millis", out)

	out, err = renderer.Render(types.EmptyWindow, types.Column("unmapped"))
	require.NoError(t, err)
	assert.Equal(t, "unmapped", out)

	strict := NewExpressionRenderer(converter, WithStrictColumns())
	_, err = strict.Render(types.EmptyWindow, types.Column("unmapped"))
	assert.ErrorIs(t, err, ErrUnknownColumn)
	assert.Contains(t, err.Error(), "unmapped")
}

func TestExpressionRenderer_MappingIsCopied(t *testing.T) {
	mapping := map[string]string{"a": "col_a"}
	renderer := NewExpressionRenderer(NewFunctionConverter(""), WithColumnMapping(mapping))
	mapping["a"] = "changed"

	out, err := renderer.Render(types.EmptyWindow, types.Column("a"))
	require.NoError(t, err)
	assert.Equal(t, "col_a", out)
}

func TestExpressionRenderer_NestedFunctions(t *testing.T) {
	converter := NewFunctionConverter("")
	renderer := NewExpressionRenderer(converter, WithColumnMapping(map[string]string{"bytes": "bytes_received"}))
	ctx := types.NewTimeWindow(epoch, epoch.Add(10*time.Minute))

	fn := types.NewFunction("DIV",
		types.Call("AVGRATE", types.Column("bytes"), types.Literal(types.StringValue("PT1M"))),
		types.Call("PERCENTILE99", types.Column("bytes")),
	)
	out, err := converter.Convert(ctx, fn, renderer.ArgumentConverter(ctx))
	require.NoError(t, err)
	assert.Equal(t, "DIV(SUM(DIV(bytes_received,10)),PERCENTILETDIGEST99(bytes_received))", out)
}

func TestExpressionRenderer_NestedErrorsPropagate(t *testing.T) {
	converter := NewFunctionConverter("")
	renderer := NewExpressionRenderer(converter)

	fn := types.NewFunction("MAX", types.Call("AVGRATE", types.Column("x")))
	_, err := converter.Convert(types.EmptyWindow, fn, renderer.ArgumentConverter(types.EmptyWindow))
	assert.ErrorIs(t, err, ErrContextState)

	_, err = renderer.Render(types.EmptyWindow, nil)
	assert.Error(t, err)
	_, err = renderer.Render(types.EmptyWindow, &types.Expression{Kind: types.KindFunction})
	assert.Error(t, err)
}
