package table

type builder[T any] struct {
	values []T
	valid  []bool
}

func (b *builder[T]) Append(v T) {
	b.values = append(b.values, v)
	b.valid = append(b.valid, true)
}

func (b *builder[T]) AppendNull() {
	var zero T
	b.values = append(b.values, zero)
	b.valid = append(b.valid, false)
}

func (b *builder[T]) Len() int { return len(b.values) }

func (b *builder[T]) vector() vector[T] {
	v := vector[T]{values: b.values, valid: b.valid}
	b.values, b.valid = nil, nil
	return v
}

func (b *builder[T]) reserve(n int) {
	b.values = make([]T, 0, n)
	b.valid = make([]bool, 0, n)
}

// IntegerBuilder accumulates values for an IntegerColumn. Build resets it.
type IntegerBuilder struct{ builder[int64] }

func (b *IntegerBuilder) Build() *IntegerColumn { return &IntegerColumn{b.vector()} }

type FloatBuilder struct{ builder[float64] }

func (b *FloatBuilder) Build() *FloatColumn { return &FloatColumn{b.vector()} }

type StringBuilder struct{ builder[string] }

func (b *StringBuilder) Build() *StringColumn { return &StringColumn{b.vector()} }

type BooleanBuilder struct{ builder[bool] }

func (b *BooleanBuilder) Build() *BooleanColumn { return &BooleanColumn{b.vector()} }
