package table

// DType is the semantic type of a column.
type DType uint8

const (
	IntegerType DType = iota
	FloatType
	StringType
	BooleanType
	// Reserved: never produced by inference.
	DateType
	DateTimeType
	NullType
)

// String is the name shown in reports; strings report as "Str".
func (d DType) String() string {
	switch d {
	case IntegerType:
		return "Integer"
	case FloatType:
		return "Float"
	case StringType:
		return "Str"
	case BooleanType:
		return "Boolean"
	case DateType:
		return "Date"
	case DateTimeType:
		return "DateTime"
	case NullType:
		return "Null"
	default:
		return "Unknown"
	}
}
