package table

import (
	"errors"
	"fmt"
)

var (
	ErrHeadersColumnsMismatch = errors.New("headers and columns mismatch")
	ErrColumnLengthMismatch   = errors.New("column length mismatch")
	ErrRowLengthMismatch      = errors.New("row length mismatch")
	ErrMaskLengthMismatch     = errors.New("validity mask length mismatch")
)

// ShapeKind identifies which shape rule a ShapeError violates.
type ShapeKind int

const (
	HeadersColumns ShapeKind = iota
	ColumnLength
	RowLength
	MaskLength
)

// ShapeError reports a table or column whose dimensions do not line up.
// Column is set for ColumnLength, Row (1-based data row) for RowLength.
type ShapeError struct {
	Kind     ShapeKind
	Column   string
	Row      int
	Expected int
	Actual   int
}

func (e *ShapeError) Error() string {
	switch e.Kind {
	case HeadersColumns:
		return fmt.Sprintf("headers and columns have different size: headers=%d, columns=%d", e.Expected, e.Actual)
	case ColumnLength:
		return fmt.Sprintf("column '%s' has length %d but expected %d", e.Column, e.Actual, e.Expected)
	case RowLength:
		return fmt.Sprintf("row %d has %d columns but expected %d", e.Row, e.Actual, e.Expected)
	case MaskLength:
		return fmt.Sprintf("validity mask has length %d but expected %d", e.Actual, e.Expected)
	default:
		return "shape mismatch"
	}
}

func (e *ShapeError) Unwrap() error {
	switch e.Kind {
	case HeadersColumns:
		return ErrHeadersColumnsMismatch
	case ColumnLength:
		return ErrColumnLengthMismatch
	case RowLength:
		return ErrRowLengthMismatch
	case MaskLength:
		return ErrMaskLengthMismatch
	}
	return nil
}
