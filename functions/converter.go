package functions

import (
	"strings"

	"github.com/rulego/pinotsql/logger"
	"github.com/rulego/pinotsql/types"
)

const (
	// concatSkipNullFunction is a custom UDF; the engine's CONCAT turns the
	// whole result null when any input is null.
	concatSkipNullFunction = "CONCATSKIPNULL"
	countAll               = "COUNT(*)"
)

// ArgumentConverter renders one argument expression in engine syntax.
// Its errors are returned by Convert unchanged.
type ArgumentConverter func(arg *types.Expression) (string, error)

// FunctionConverter translates abstract function calls into Pinot function syntax.
// It holds only immutable configuration and is safe for concurrent use.
type FunctionConverter struct {
	percentileFunction string
	logger             logger.Logger
}

// ConverterOption configures a FunctionConverter at construction.
type ConverterOption func(*FunctionConverter)

// WithConverterLogger sets the logger used to report rewrites.
func WithConverterLogger(log logger.Logger) ConverterOption {
	return func(c *FunctionConverter) {
		c.logger = log
	}
}

// NewFunctionConverter creates a converter emitting percentileFunction for PERCENTILE.
// An empty name selects PERCENTILETDIGEST.
func NewFunctionConverter(percentileFunction string, opts ...ConverterOption) *FunctionConverter {
	if percentileFunction == "" {
		percentileFunction = types.DefaultPercentileAggregationFunction
	}
	c := &FunctionConverter{percentileFunction: percentileFunction}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.GetDefault()
	}
	return c
}

// PercentileFunction returns the configured percentile aggregate name.
func (c *FunctionConverter) PercentileFunction() string {
	return c.percentileFunction
}

// Convert renders fn as a Pinot function call. Arguments are rendered with
// argumentConverter, once each, left to right. ctx is consulted only by AVGRATE.
func (c *FunctionConverter) Convert(ctx types.ExecutionContext, fn *types.Function, argumentConverter ArgumentConverter) (string, error) {
	switch ParseFunctionName(fn.Name) {
	case FunctionCount:
		return countAll, nil
	case FunctionPercentile:
		percentile, err := c.toPinotPercentile(fn)
		if err != nil {
			return "", err
		}
		return functionToString(percentile, argumentConverter)
	case FunctionConcat:
		return functionToString(fn.WithName(concatSkipNullFunction), argumentConverter)
	case FunctionAvgRate:
		return c.avgRateToString(ctx, fn, argumentConverter)
	default:
		// 旧式写法 PERCENTILE95(col)，改写为 PERCENTILE(95, col) 后只重新分发一次
		if percentile, ok := percentileFromName(fn.Name); ok {
			c.logger.Debug("normalizing hardcoded percentile function %s", fn.Name)
			return c.Convert(ctx, normalizeHardcodedPercentile(fn, percentile), argumentConverter)
		}
		return functionToString(fn, argumentConverter)
	}
}

func functionToString(fn *types.Function, argumentConverter ArgumentConverter) (string, error) {
	var builder strings.Builder
	builder.WriteString(fn.Name)
	builder.WriteByte('(')
	for i, arg := range fn.Arguments {
		if i > 0 {
			builder.WriteByte(',')
		}
		rendered, err := argumentConverter(arg)
		if err != nil {
			return "", err
		}
		builder.WriteString(rendered)
	}
	builder.WriteByte(')')
	return builder.String(), nil
}
