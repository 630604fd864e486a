package types

import "fmt"

// ValueType 字面量的值类型
type ValueType int

const (
	ValueTypeNull ValueType = iota
	ValueTypeInt
	ValueTypeLong
	ValueTypeFloat
	ValueTypeDouble
	ValueTypeString
	ValueTypeBool
	ValueTypeBytes
	ValueTypeTimestamp
)

func (t ValueType) String() string {
	switch t {
	case ValueTypeNull:
		return "NULL"
	case ValueTypeInt:
		return "INT"
	case ValueTypeLong:
		return "LONG"
	case ValueTypeFloat:
		return "FLOAT"
	case ValueTypeDouble:
		return "DOUBLE"
	case ValueTypeString:
		return "STRING"
	case ValueTypeBool:
		return "BOOL"
	case ValueTypeBytes:
		return "BYTES"
	case ValueTypeTimestamp:
		return "TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

// Value is a tagged literal. Only the field selected by Type is meaningful.
type Value struct {
	Type      ValueType
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	String    string
	Bool      bool
	Bytes     []byte
	Timestamp int64 // epoch millis
}

func IntValue(v int32) Value       { return Value{Type: ValueTypeInt, Int: v} }
func LongValue(v int64) Value      { return Value{Type: ValueTypeLong, Long: v} }
func FloatValue(v float32) Value   { return Value{Type: ValueTypeFloat, Float: v} }
func DoubleValue(v float64) Value  { return Value{Type: ValueTypeDouble, Double: v} }
func StringValue(v string) Value   { return Value{Type: ValueTypeString, String: v} }
func BoolValue(v bool) Value       { return Value{Type: ValueTypeBool, Bool: v} }
func BytesValue(v []byte) Value    { return Value{Type: ValueTypeBytes, Bytes: v} }
func TimestampValue(v int64) Value { return Value{Type: ValueTypeTimestamp, Timestamp: v} }
func NullValue() Value             { return Value{Type: ValueTypeNull} }

// Interface returns the populated field, nil for NULL.
func (v Value) Interface() any {
	switch v.Type {
	case ValueTypeInt:
		return v.Int
	case ValueTypeLong:
		return v.Long
	case ValueTypeFloat:
		return v.Float
	case ValueTypeDouble:
		return v.Double
	case ValueTypeString:
		return v.String
	case ValueTypeBool:
		return v.Bool
	case ValueTypeBytes:
		return v.Bytes
	case ValueTypeTimestamp:
		return v.Timestamp
	default:
		return nil
	}
}

// GoString is used by %#v and in error messages.
func (v Value) GoString() string {
	if v.Type == ValueTypeNull {
		return "NULL"
	}
	if v.Type == ValueTypeString {
		return fmt.Sprintf("%s(%q)", v.Type, v.String)
	}
	return fmt.Sprintf("%s(%v)", v.Type, v.Interface())
}
