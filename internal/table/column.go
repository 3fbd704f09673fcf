package table

import (
	"math"
	"slices"
)

// Column is a fixed-length, nullable, homogeneously typed sequence.
//
// Every column kind answers the same four aggregates. The boolean result is
// false when the aggregate has no meaning for the kind or its current state.
type Column interface {
	Len() int
	DType() DType
	// Get returns Null for a null slot or an out-of-range index.
	Get(i int) Value
	NullCount() int
	NonNullCount() int

	Sum() (float64, bool)
	Min() (float64, bool)
	Max() (float64, bool)
	Mean() (float64, bool)
}

// vector is the nullable storage shared by all column kinds.
type vector[T any] struct {
	values []T
	valid  []bool
}

// newVector copies values and valid; a nil mask means no nulls.
func newVector[T any](values []T, valid []bool) vector[T] {
	if valid == nil {
		valid = make([]bool, len(values))
		for i := range valid {
			valid[i] = true
		}
	} else {
		valid = slices.Clone(valid)
	}
	return vector[T]{values: slices.Clone(values), valid: valid}
}

func (v *vector[T]) Len() int { return len(v.values) }

func (v *vector[T]) NullCount() int {
	n := 0
	for _, ok := range v.valid {
		if !ok {
			n++
		}
	}
	return n
}

func (v *vector[T]) NonNullCount() int { return v.Len() - v.NullCount() }

func (v *vector[T]) at(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(v.values) || !v.valid[i] {
		return zero, false
	}
	return v.values[i], true
}

// each calls fn for every non-null value in order.
func (v *vector[T]) each(fn func(T)) {
	for i, x := range v.values {
		if v.valid[i] {
			fn(x)
		}
	}
}

// IntegerColumn holds nullable int64 values.
type IntegerColumn struct{ vector[int64] }

// FloatColumn holds nullable float64 values. NaN is a value, not a null.
type FloatColumn struct{ vector[float64] }

// StringColumn holds nullable strings.
type StringColumn struct{ vector[string] }

// BooleanColumn holds nullable booleans.
type BooleanColumn struct{ vector[bool] }

// NewIntegerColumn returns a column with no nulls.
func NewIntegerColumn(values []int64) *IntegerColumn {
	return &IntegerColumn{newVector(values, nil)}
}

// NewIntegerColumnNullable pairs values with a validity mask; valid[i] == false
// marks slot i as null. A nil mask means no nulls.
func NewIntegerColumnNullable(values []int64, valid []bool) (*IntegerColumn, error) {
	if err := checkMask(len(values), valid); err != nil {
		return nil, err
	}
	return &IntegerColumn{newVector(values, valid)}, nil
}

func NewFloatColumn(values []float64) *FloatColumn {
	return &FloatColumn{newVector(values, nil)}
}

func NewFloatColumnNullable(values []float64, valid []bool) (*FloatColumn, error) {
	if err := checkMask(len(values), valid); err != nil {
		return nil, err
	}
	return &FloatColumn{newVector(values, valid)}, nil
}

func NewStringColumn(values []string) *StringColumn {
	return &StringColumn{newVector(values, nil)}
}

func NewStringColumnNullable(values []string, valid []bool) (*StringColumn, error) {
	if err := checkMask(len(values), valid); err != nil {
		return nil, err
	}
	return &StringColumn{newVector(values, valid)}, nil
}

func NewBooleanColumn(values []bool) *BooleanColumn {
	return &BooleanColumn{newVector(values, nil)}
}

func NewBooleanColumnNullable(values []bool, valid []bool) (*BooleanColumn, error) {
	if err := checkMask(len(values), valid); err != nil {
		return nil, err
	}
	return &BooleanColumn{newVector(values, valid)}, nil
}

func checkMask(n int, valid []bool) error {
	if valid != nil && len(valid) != n {
		return &ShapeError{Kind: MaskLength, Expected: n, Actual: len(valid)}
	}
	return nil
}

// Integer

func (c *IntegerColumn) DType() DType { return IntegerType }

func (c *IntegerColumn) Get(i int) Value {
	if x, ok := c.at(i); ok {
		return Integer(x)
	}
	return Null()
}

// Sum adds in int64 and continues in float64 once the running total would
// overflow.
func (c *IntegerColumn) Sum() (float64, bool) {
	var (
		sum      int64
		wide     float64
		overflow bool
	)
	c.each(func(x int64) {
		if overflow {
			wide += float64(x)
			return
		}
		s := sum + x
		if (x > 0 && s < sum) || (x < 0 && s > sum) {
			overflow = true
			wide = float64(sum) + float64(x)
			return
		}
		sum = s
	})
	if overflow {
		return wide, true
	}
	return float64(sum), true
}

func (c *IntegerColumn) Min() (float64, bool) {
	var (
		m    int64
		seen bool
	)
	c.each(func(x int64) {
		if !seen || x < m {
			m, seen = x, true
		}
	})
	return float64(m), seen
}

func (c *IntegerColumn) Max() (float64, bool) {
	var (
		m    int64
		seen bool
	)
	c.each(func(x int64) {
		if !seen || x > m {
			m, seen = x, true
		}
	})
	return float64(m), seen
}

// Mean is 0 for a column without non-null values.
func (c *IntegerColumn) Mean() (float64, bool) {
	n := c.NonNullCount()
	if n == 0 {
		return 0, true
	}
	sum, _ := c.Sum()
	return sum / float64(n), true
}

// Float

func (c *FloatColumn) DType() DType { return FloatType }

func (c *FloatColumn) Get(i int) Value {
	if x, ok := c.at(i); ok {
		return Float(x)
	}
	return Null()
}

// finite calls fn for every non-null value that is not NaN.
func (c *FloatColumn) finite(fn func(float64)) {
	c.each(func(x float64) {
		if !math.IsNaN(x) {
			fn(x)
		}
	})
}

func (c *FloatColumn) Sum() (float64, bool) {
	var sum float64
	c.finite(func(x float64) { sum += x })
	return sum, true
}

func (c *FloatColumn) Min() (float64, bool) {
	m, seen := 0.0, false
	c.finite(func(x float64) {
		if !seen || x < m {
			m, seen = x, true
		}
	})
	return m, seen
}

func (c *FloatColumn) Max() (float64, bool) {
	m, seen := 0.0, false
	c.finite(func(x float64) {
		if !seen || x > m {
			m, seen = x, true
		}
	})
	return m, seen
}

// Mean ignores NaN and is 0 when nothing is left.
func (c *FloatColumn) Mean() (float64, bool) {
	var (
		sum float64
		n   int
	)
	c.finite(func(x float64) {
		sum += x
		n++
	})
	if n == 0 {
		return 0, true
	}
	return sum / float64(n), true
}

// String

func (c *StringColumn) DType() DType { return StringType }

func (c *StringColumn) Get(i int) Value {
	if s, ok := c.at(i); ok {
		return String(s)
	}
	return Null()
}

func (c *StringColumn) Sum() (float64, bool)  { return 0, false }
func (c *StringColumn) Min() (float64, bool)  { return 0, false }
func (c *StringColumn) Max() (float64, bool)  { return 0, false }
func (c *StringColumn) Mean() (float64, bool) { return 0, false }

// Boolean

func (c *BooleanColumn) DType() DType { return BooleanType }

func (c *BooleanColumn) Get(i int) Value {
	if b, ok := c.at(i); ok {
		return Boolean(b)
	}
	return Null()
}

// Sum counts true values.
func (c *BooleanColumn) Sum() (float64, bool) {
	n := 0
	c.each(func(b bool) {
		if b {
			n++
		}
	})
	return float64(n), true
}

// Min is 0 if any false is present (or the column is all null), else 1.
func (c *BooleanColumn) Min() (float64, bool) {
	if c.NonNullCount() == 0 {
		return 0, true
	}
	min := 1.0
	c.each(func(b bool) {
		if !b {
			min = 0
		}
	})
	return min, true
}

// Max is 1 if any true is present, else 0.
func (c *BooleanColumn) Max() (float64, bool) {
	max := 0.0
	c.each(func(b bool) {
		if b {
			max = 1
		}
	})
	return max, true
}

// Mean has no meaning for booleans.
func (c *BooleanColumn) Mean() (float64, bool) { return 0, false }
