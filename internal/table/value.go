package table

import (
	"math"
	"strconv"
)

// Kind tags the active variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindFloat
	KindInteger
	KindBoolean
	KindDate
)

// Value represents one decoded cell. Only the field matching kind is meaningful;
// the rest stay at their zero values.
type Value struct {
	kind Kind
	s    string // KindString, KindDate
	f    float64
	i    int64
	b    bool
}

func Null() Value           { return Value{} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }
func Boolean(b bool) Value  { return Value{kind: KindBoolean, b: b} }
func Date(iso string) Value { return Value{kind: KindDate, s: iso} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) Str() string  { return v.s }
func (v Value) F64() float64 { return v.f }
func (v Value) I64() int64   { return v.i }
func (v Value) Bool() bool   { return v.b }

// String renders the natural textual form; Null renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindString, KindDate:
		return v.s
	case KindFloat:
		return formatFloat(v.f)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface returns the JSON-native form of the value. Null and non-finite
// floats map to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString, KindDate:
		return v.s
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil
		}
		return v.f
	case KindInteger:
		return v.i
	case KindBoolean:
		return v.b
	default:
		return nil
	}
}

// DataType names the variant, e.g. "integer".
func (v Value) DataType() string {
	switch v.kind {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return "null"
	}
}

// formatFloat uses the shortest representation that round-trips, without an
// exponent, so 2.0 prints as "2" and 0.1 as "0.1".
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
