package table

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ArrowType maps a column type to its Arrow data type.
func ArrowType(d DType) (arrow.DataType, error) {
	switch d {
	case IntegerType:
		return arrow.PrimitiveTypes.Int64, nil
	case FloatType:
		return arrow.PrimitiveTypes.Float64, nil
	case StringType:
		return arrow.BinaryTypes.String, nil
	case BooleanType:
		return arrow.FixedWidthTypes.Boolean, nil
	}
	return nil, fmt.Errorf("no arrow type for %s columns", d)
}

// ArrowSchema describes the table as nullable Arrow fields named like
// ColumnName.
func (t *Table) ArrowSchema() (*arrow.Schema, error) {
	fields := make([]arrow.Field, len(t.columns))
	for j, c := range t.columns {
		dt, err := ArrowType(c.DType())
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", t.ColumnName(j), err)
		}
		fields[j] = arrow.Field{Name: t.ColumnName(j), Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}

// ToArrow copies the table into a single Arrow record. The caller must
// Release it.
func (t *Table) ToArrow(mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	schema, err := t.ArrowSchema()
	if err != nil {
		return nil, err
	}
	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()

	rows, _ := t.Shape()
	for j, c := range t.columns {
		fb := rb.Field(j)
		fb.Reserve(rows)
		for i := 0; i < rows; i++ {
			v := c.Get(i)
			if v.IsNull() {
				fb.AppendNull()
				continue
			}
			switch b := fb.(type) {
			case *array.Int64Builder:
				b.Append(v.I64())
			case *array.Float64Builder:
				b.Append(v.F64())
			case *array.StringBuilder:
				b.Append(v.Str())
			case *array.BooleanBuilder:
				b.Append(v.Bool())
			default:
				return nil, fmt.Errorf("column %q: unexpected builder %T", t.ColumnName(j), fb)
			}
		}
	}
	return rb.NewRecord(), nil
}
