package functions

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rulego/pinotsql/types"
)

// toPinotPercentile turns PERCENTILE(p, args...) into <percentileFunction><p>(args...).
func (c *FunctionConverter) toPinotPercentile(fn *types.Function) (*types.Function, error) {
	percentile, ok := percentileFromArguments(fn)
	if !ok {
		got := "no arguments"
		if len(fn.Arguments) > 0 {
			got = fn.Arguments[0].String()
		}
		return nil, newArgumentError(namePercentile,
			fmt.Sprintf("must include an integer convertible value as its first argument, got: %s", got))
	}
	return fn.WithoutArgument(0).WithName(c.percentileFunction + strconv.FormatInt(int64(percentile), 10)), nil
}

func percentileFromArguments(fn *types.Function) (int32, bool) {
	if len(fn.Arguments) == 0 {
		return 0, false
	}
	first := fn.Arguments[0]
	if !first.IsLiteral() {
		return 0, false
	}
	return intFromValue(first.Literal)
}

// intFromValue accepts INT, and LONG values that fit in an int32.
func intFromValue(v types.Value) (int32, bool) {
	switch v.Type {
	case types.ValueTypeInt:
		return v.Int, true
	case types.ValueTypeLong:
		if v.Long < math.MinInt32 || v.Long > math.MaxInt32 {
			return 0, false
		}
		return int32(v.Long), true
	default:
		return 0, false
	}
}

// normalizeHardcodedPercentile rewrites PERCENTILE95(args...) into PERCENTILE(95, args...).
// The result is always named PERCENTILE, so it cannot be normalized again.
func normalizeHardcodedPercentile(fn *types.Function, percentile int32) *types.Function {
	return fn.WithName(namePercentile).WithArgumentAt(0, types.Literal(types.IntValue(percentile)))
}
