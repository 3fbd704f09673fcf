// Package table holds the typed column store: cell values, column inference,
// the Table type with its shape rules, and its text, JSON and Arrow forms.
package table

import "strconv"

// Table is an ordered set of equal-length typed columns with optional header
// names. It is never mutated after construction and may be shared freely.
type Table struct {
	headers []string
	columns []Column
}

// Empty returns a table with no headers and no columns.
func Empty() *Table { return &Table{} }

// New builds a table from pre-typed columns. A nil or empty headers slice
// means the table has no header names.
func New(headers []string, columns []Column) (*Table, error) {
	if len(headers) > 0 && len(columns) > 0 && len(headers) != len(columns) {
		return nil, &ShapeError{Kind: HeadersColumns, Expected: len(headers), Actual: len(columns)}
	}
	t := &Table{headers: clone(headers), columns: append([]Column(nil), columns...)}
	if len(columns) > 0 {
		want := columns[0].Len()
		for i, c := range columns {
			if c.Len() != want {
				return nil, &ShapeError{Kind: ColumnLength, Column: t.ColumnName(i), Expected: want, Actual: c.Len()}
			}
		}
	}
	return t, nil
}

// FromColumns infers a type for each column-major slice of raw cells.
func FromColumns(headers []string, raw [][]string) (*Table, error) {
	cols := make([]Column, len(raw))
	for i, cells := range raw {
		cols[i] = InferColumn(cells)
	}
	return New(headers, cols)
}

// FromRows transposes row-major records, as produced by a record reader, and
// infers column types. Every row must have len(headers) cells. Headers with no
// rows yield zero-length columns.
func FromRows(headers []string, rows [][]string) (*Table, error) {
	width := len(headers)
	if width == 0 && len(rows) > 0 {
		width = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{Kind: RowLength, Row: i + 1, Expected: width, Actual: len(row)}
		}
	}
	raw := make([][]string, width)
	for j := range raw {
		col := make([]string, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		raw[j] = col
	}
	return FromColumns(headers, raw)
}

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) {
	if len(t.columns) == 0 {
		return 0, 0
	}
	return t.columns[0].Len(), len(t.columns)
}

func (t *Table) Headers() []string { return clone(t.headers) }

func (t *Table) Columns() []Column { return append([]Column(nil), t.columns...) }

// Column returns the column at i, or nil when i is out of range.
func (t *Table) Column(i int) Column {
	if i < 0 || i >= len(t.columns) {
		return nil
	}
	return t.columns[i]
}

// ColumnByName returns the first column whose header equals name.
func (t *Table) ColumnByName(name string) (Column, bool) {
	for i, h := range t.headers {
		if h == name && i < len(t.columns) {
			return t.columns[i], true
		}
	}
	return nil, false
}

// ColumnName returns the header of column i, or Column_<i> when the table has
// no header for it.
func (t *Table) ColumnName(i int) string {
	if i >= 0 && i < len(t.headers) {
		return t.headers[i]
	}
	return "Column_" + strconv.Itoa(i)
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
