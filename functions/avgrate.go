package functions

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sosodev/duration"

	"github.com/rulego/pinotsql/types"
)

// defaultRateInterval AVGRATE 未指定速率区间时按每秒计算
const defaultRateInterval = "PT1S"

// avgRateToString emits SUM(DIV(col,factor)) where factor is the aggregation
// window divided by the rate interval, both in whole seconds. Pinot has no
// native AVGRATE.
func (c *FunctionConverter) avgRateToString(ctx types.ExecutionContext, fn *types.Function, argumentConverter ArgumentConverter) (string, error) {
	if len(fn.Arguments) == 0 {
		return "", newArgumentError(nameAvgRate, "must include a column as its first argument")
	}
	column, err := argumentConverter(fn.Arguments[0])
	if err != nil {
		return "", err
	}

	interval := defaultRateInterval
	if len(fn.Arguments) == 2 {
		interval, err = rateIntervalArgument(fn.Arguments[1])
		if err != nil {
			return "", err
		}
	}
	intervalSeconds, err := isoDurationToSeconds(interval)
	if err != nil {
		return "", err
	}

	window, ok := aggregationWindow(ctx)
	if !ok {
		return "", newContextStateError(nameAvgRate,
			"execution context has neither a time series period nor a time range duration")
	}

	// zero or negative intervals are not rejected; the factor follows float division
	factor := float64(wholeSeconds(window)) / float64(intervalSeconds)
	return "SUM(DIV(" + column + "," + strconv.FormatFloat(factor, 'f', -1, 64) + "))", nil
}

func rateIntervalArgument(arg *types.Expression) (string, error) {
	if !arg.IsLiteral() || arg.Literal.Type != types.ValueTypeString {
		return "", newFormatError(nameAvgRate,
			fmt.Sprintf("rate interval must be an ISO-8601 duration string, got: %s", arg), nil)
	}
	return arg.Literal.String, nil
}

func aggregationWindow(ctx types.ExecutionContext) (time.Duration, bool) {
	if ctx == nil {
		return 0, false
	}
	if period, ok := ctx.TimeSeriesPeriod(); ok {
		return period, true
	}
	return ctx.TimeRangeDuration()
}

// isoComponent is one designator of an ISO-8601 duration. A component may carry
// its own sign, as in PT-5S or P1DT-2H.
var isoComponent = regexp.MustCompile(`^([-+]?)([0-9]+(?:[.,][0-9]+)?)([YMWDHS])`)

// isoDurationToSeconds parses a time-based ISO-8601 duration such as PT5S or P1DT2H.
// Calendar components (years, months, weeks) have no fixed length and are rejected.
func isoDurationToSeconds(s string) (int64, error) {
	if !strings.ContainsAny(s, "0123456789") {
		return 0, unsupportedDuration(s, nil)
	}
	d, err := parseISODuration(strings.ToUpper(s))
	if err != nil {
		return 0, unsupportedDuration(s, err)
	}
	return wholeSeconds(d), nil
}

// parseISODuration sums the components of s one by one, so both a leading sign
// (-PT5S) and signs on single components (PT1H-5M) are honoured.
func parseISODuration(s string) (time.Duration, error) {
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}
	rest, ok := strings.CutPrefix(s, "P")
	if !ok {
		return 0, errors.New("missing P designator")
	}
	datePart, timePart, hasTime := strings.Cut(rest, "T")
	if hasTime && timePart == "" {
		return 0, errors.New("missing time components")
	}

	var total time.Duration
	for _, part := range []struct{ prefix, text string }{{"P", datePart}, {"PT", timePart}} {
		for text := part.text; text != ""; {
			m := isoComponent.FindStringSubmatch(text)
			if m == nil {
				return 0, errors.Errorf("unexpected input %q", text)
			}
			text = text[len(m[0]):]

			d, err := duration.Parse(part.prefix + strings.Replace(m[2], ",", ".", 1) + m[3])
			if err != nil {
				return 0, err
			}
			if d.Years != 0 || d.Months != 0 || d.Weeks != 0 {
				return 0, errors.New("calendar components are not supported")
			}
			component := d.ToTimeDuration()
			if m[1] == "-" {
				component = -component
			}
			total += component
		}
	}
	if negative {
		total = -total
	}
	return total, nil
}

func unsupportedDuration(s string, cause error) error {
	return newFormatError(nameAvgRate,
		fmt.Sprintf("unsupported string format for duration: %q, expects iso string format", s), cause)
}

// wholeSeconds floors d to seconds, so -1.5s is -2.
func wholeSeconds(d time.Duration) int64 {
	secs := int64(d / time.Second)
	if d%time.Second < 0 {
		secs--
	}
	return secs
}
