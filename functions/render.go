package functions

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/rulego/pinotsql/types"
)

// ErrUnknownColumn is returned by a strict renderer for columns it has no mapping for.
var ErrUnknownColumn = errors.New("unknown column")

// ExpressionRenderer renders argument expressions in Pinot syntax. Nested
// functions go back through the FunctionConverter.
type ExpressionRenderer struct {
	converter *FunctionConverter
	columns   map[string]string
	strict    bool
}

// RendererOption configures an ExpressionRenderer.
type RendererOption func(*ExpressionRenderer)

// WithColumnMapping maps logical column names to physical ones.
func WithColumnMapping(columns map[string]string) RendererOption {
	return func(r *ExpressionRenderer) {
		r.columns = make(map[string]string, len(columns))
		for k, v := range columns {
			r.columns[k] = v
		}
	}
}

// WithStrictColumns makes unmapped columns an error instead of passing them through.
func WithStrictColumns() RendererOption {
	return func(r *ExpressionRenderer) {
		r.strict = true
	}
}

func NewExpressionRenderer(converter *FunctionConverter, opts ...RendererOption) *ExpressionRenderer {
	r := &ExpressionRenderer{converter: converter}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ArgumentConverter binds ctx so the renderer can be handed to Convert.
func (r *ExpressionRenderer) ArgumentConverter(ctx types.ExecutionContext) ArgumentConverter {
	return func(arg *types.Expression) (string, error) {
		return r.Render(ctx, arg)
	}
}

func (r *ExpressionRenderer) Render(ctx types.ExecutionContext, arg *types.Expression) (string, error) {
	if arg == nil {
		return "", errors.New("nil expression")
	}
	switch arg.Kind {
	case types.KindLiteral:
		return renderLiteral(arg.Literal)
	case types.KindColumn:
		return r.renderColumn(arg.ColumnName)
	case types.KindFunction:
		if arg.Function == nil {
			return "", errors.New("function expression without a function")
		}
		return r.converter.Convert(ctx, arg.Function, r.ArgumentConverter(ctx))
	default:
		return "", errors.Errorf("unsupported expression kind %s", arg.Kind)
	}
}

func (r *ExpressionRenderer) renderColumn(name string) (string, error) {
	if physical, ok := r.columns[name]; ok {
		return physical, nil
	}
	if r.strict {
		return "", errors.Wrap(ErrUnknownColumn, name)
	}
	return name, nil
}

func renderLiteral(v types.Value) (string, error) {
	switch v.Type {
	case types.ValueTypeNull:
		return "null", nil
	case types.ValueTypeString:
		return quote(v.String), nil
	case types.ValueTypeBytes:
		return quote(hex.EncodeToString(v.Bytes)), nil
	case types.ValueTypeBool, types.ValueTypeInt, types.ValueTypeLong,
		types.ValueTypeFloat, types.ValueTypeDouble, types.ValueTypeTimestamp:
		s, err := cast.ToStringE(v.Interface())
		if err != nil {
			return "", errors.Wrapf(err, "render %s literal", v.Type)
		}
		return s, nil
	default:
		return "", errors.Errorf("unsupported literal type %s", v.Type)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
