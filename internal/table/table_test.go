package table_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabloom-cli/internal/table"
)

func TestFromColumnsShape(t *testing.T) {
	tb, err := table.FromColumns([]string{"a", "b"}, [][]string{
		{"a1", "a2", "a3"},
		{"b1", "b2", "b3"},
	})
	require.NoError(t, err)
	rows, cols := tb.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []string{"a", "b"}, tb.Headers())
}

func TestEmptyColumnsShape(t *testing.T) {
	tb, err := table.FromColumns(nil, [][]string{{}, {}})
	require.NoError(t, err)
	rows, cols := tb.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 2, cols)
}

func TestEmptyTable(t *testing.T) {
	rows, cols := table.Empty().Shape()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
	assert.Nil(t, table.Empty().Column(0))
}

func TestHeadersColumnsMismatch(t *testing.T) {
	_, err := table.New([]string{"a"}, []table.Column{
		table.NewIntegerColumn([]int64{1}),
		table.NewIntegerColumn([]int64{2}),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, table.ErrHeadersColumnsMismatch))
	assert.EqualError(t, err, "headers and columns have different size: headers=1, columns=2")

	// Headers without columns and columns without headers are both fine.
	_, err = table.New([]string{"a", "b"}, nil)
	require.NoError(t, err)
	_, err = table.New(nil, []table.Column{table.NewIntegerColumn([]int64{1})})
	require.NoError(t, err)
}

func TestColumnLengthMismatch(t *testing.T) {
	_, err := table.FromColumns([]string{"a", "b", "c"}, [][]string{
		{"1", "2"},
		{"1", "2"},
		{"1"},
	})
	require.Error(t, err)
	var se *table.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, table.ColumnLength, se.Kind)
	assert.Equal(t, "c", se.Column)
	assert.Equal(t, 2, se.Expected)
	assert.Equal(t, 1, se.Actual)
	assert.True(t, errors.Is(err, table.ErrColumnLengthMismatch))
}

func TestHeaderCheckRunsBeforeLengthCheck(t *testing.T) {
	_, err := table.FromColumns([]string{"a"}, [][]string{{"1"}, {"1", "2"}})
	assert.True(t, errors.Is(err, table.ErrHeadersColumnsMismatch))
}

func TestFromRows(t *testing.T) {
	tb, err := table.FromRows([]string{"id", "name", "ok"}, [][]string{
		{"1", "ann", "yes"},
		{"2", "", "no"},
	})
	require.NoError(t, err)
	rows, cols := tb.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, table.IntegerType, tb.Column(0).DType())
	assert.Equal(t, table.StringType, tb.Column(1).DType())
	assert.Equal(t, table.BooleanType, tb.Column(2).DType())
	assert.Equal(t, 1, tb.Column(1).NullCount())

	col, ok := tb.ColumnByName("ok")
	require.True(t, ok)
	assert.Equal(t, table.BooleanType, col.DType())
	_, ok = tb.ColumnByName("missing")
	assert.False(t, ok)
}

func TestFromRowsRowLength(t *testing.T) {
	_, err := table.FromRows([]string{"a", "b"}, [][]string{
		{"1", "2"},
		{"3"},
	})
	var se *table.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, table.RowLength, se.Kind)
	assert.Equal(t, 2, se.Row)
	assert.Equal(t, 2, se.Expected)
	assert.Equal(t, 1, se.Actual)
	assert.True(t, errors.Is(err, table.ErrRowLengthMismatch))
}

func TestFromRowsHeadersOnly(t *testing.T) {
	tb, err := table.FromRows([]string{"a", "b"}, nil)
	require.NoError(t, err)
	rows, cols := tb.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 2, cols)
}

func TestColumnName(t *testing.T) {
	tb, err := table.New(nil, []table.Column{table.NewStringColumn([]string{"x"})})
	require.NoError(t, err)
	assert.Equal(t, "Column_0", tb.ColumnName(0))
	assert.Nil(t, tb.Column(1))
	assert.Nil(t, tb.Column(-1))
}

func TestTableDoesNotAliasInputs(t *testing.T) {
	headers := []string{"a"}
	tb, err := table.New(headers, []table.Column{table.NewIntegerColumn([]int64{1})})
	require.NoError(t, err)
	headers[0] = "changed"
	assert.Equal(t, "a", tb.ColumnName(0))

	got := tb.Headers()
	got[0] = "again"
	assert.Equal(t, "a", tb.ColumnName(0))
}

func TestColumnDataDoesNotAliasInputs(t *testing.T) {
	vals := []int64{1, 2, 3}
	valid := []bool{true, true, true}
	nullable, err := table.NewIntegerColumnNullable(vals, valid)
	require.NoError(t, err)
	tb, err := table.New([]string{"n", "m"}, []table.Column{table.NewIntegerColumn(vals), nullable})
	require.NoError(t, err)

	vals[0] = 100
	valid[1] = false
	for j := 0; j < 2; j++ {
		sum, ok := tb.Column(j).Sum()
		require.True(t, ok)
		assert.Equal(t, 6.0, sum)
		assert.Equal(t, 0, tb.Column(j).NullCount())
	}

	words := []string{"a", "b"}
	s := table.NewStringColumn(words)
	words[0] = "z"
	assert.Equal(t, "a", s.Get(0).Str())
}
