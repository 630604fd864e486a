package functions

import (
	"strconv"
	"strings"
)

// FunctionName 规范函数名
type FunctionName int

const (
	// FunctionOther 未识别的函数名，走通用渲染（或旧式百分位改写）
	FunctionOther FunctionName = iota
	FunctionCount
	FunctionPercentile
	FunctionConcat
	FunctionAvgRate
)

const (
	nameCount      = "COUNT"
	namePercentile = "PERCENTILE"
	nameConcat     = "CONCAT"
	nameAvgRate    = "AVGRATE"
)

func (n FunctionName) String() string {
	switch n {
	case FunctionCount:
		return nameCount
	case FunctionPercentile:
		return namePercentile
	case FunctionConcat:
		return nameConcat
	case FunctionAvgRate:
		return nameAvgRate
	default:
		return "OTHER"
	}
}

// ParseFunctionName matches name case-insensitively against the canonical names.
func ParseFunctionName(name string) FunctionName {
	switch strings.ToUpper(name) {
	case nameCount:
		return FunctionCount
	case namePercentile:
		return FunctionPercentile
	case nameConcat:
		return FunctionConcat
	case nameAvgRate:
		return FunctionAvgRate
	default:
		return FunctionOther
	}
}

// percentileFromName extracts 95 from legacy names such as PERCENTILE95.
// Names with anything other than an int32 after the prefix are not legacy percentiles.
func percentileFromName(name string) (int32, bool) {
	upper := strings.ToUpper(name)
	if !strings.HasPrefix(upper, namePercentile) {
		return 0, false
	}
	v, err := strconv.ParseInt(upper[len(namePercentile):], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}
