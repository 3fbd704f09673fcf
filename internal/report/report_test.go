package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabloom-cli/internal/report"
	"github.com/KaramelBytes/tabloom-cli/internal/table"
)

func sample(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.FromRows([]string{"qty", "price", "name", "paid"}, [][]string{
		{"1", "1.5", "ann", "yes"},
		{"2", "NaN", "", "no"},
		{"3", "2.5", "cy", "yes"},
	})
	require.NoError(t, err)
	return tb
}

func column(t *testing.T, tb *table.Table, i int) []string {
	t.Helper()
	c := tb.Column(i)
	require.NotNil(t, c)
	out := make([]string, c.Len())
	for r := range out {
		out[r] = c.Get(r).String()
	}
	return out
}

func TestWide(t *testing.T) {
	out, err := report.Wide(sample(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"Metric", "qty", "price", "name", "paid"}, out.Headers())
	assert.Equal(t, []string{"mean", "max", "min", "sum"}, column(t, out, 0))
	assert.Equal(t, []string{"2.00", "3.00", "1.00", "6.00"}, column(t, out, 1))
	assert.Equal(t, []string{"2.00", "2.50", "1.50", "4.00"}, column(t, out, 2))
	assert.Equal(t, []string{"N/A", "N/A", "N/A", "N/A"}, column(t, out, 3))
	assert.Equal(t, []string{"N/A", "1.00", "0.00", "2.00"}, column(t, out, 4))
}

func TestLong(t *testing.T) {
	out, err := report.Long(sample(t))
	require.NoError(t, err)

	rows, cols := out.Shape()
	assert.Equal(t, 16, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []string{"Column", "Metric", "Value"}, out.Headers())

	names := column(t, out, 0)
	metrics := column(t, out, 1)
	values := column(t, out, 2)
	assert.Equal(t, "qty", names[0])
	assert.Equal(t, "mean", metrics[0])
	assert.Equal(t, "2.00", values[0])
	assert.Equal(t, "paid", names[15])
	assert.Equal(t, "sum", metrics[15])
	assert.Equal(t, "2.00", values[15])
	assert.Equal(t, "N/A", values[8])
}

func TestPrecision(t *testing.T) {
	tb, err := table.FromColumns([]string{"x"}, [][]string{{"1", "2"}})
	require.NoError(t, err)
	out, err := report.Options{Precision: 0}.Wide(tb)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "2", "1", "3"}, column(t, out, 1))
}

func TestInfo(t *testing.T) {
	out, err := report.Info(sample(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"column", "mean", "sum", "min", "max", "null_count", "dtype"}, out.Headers())
	assert.Equal(t, []string{"qty", "price", "name", "paid"}, column(t, out, 0))
	assert.Equal(t, []string{"Integer", "Float", "Str", "Boolean"}, column(t, out, 6))

	mean := out.Column(1)
	assert.Equal(t, table.FloatType, mean.DType())
	assert.Equal(t, 2.0, mean.Get(0).F64())
	assert.True(t, mean.Get(2).IsNull())
	assert.True(t, mean.Get(3).IsNull())

	nulls := out.Column(5)
	assert.Equal(t, table.IntegerType, nulls.DType())
	assert.Equal(t, int64(1), nulls.Get(2).I64())
	assert.Equal(t, int64(0), nulls.Get(1).I64())
}

func TestNA(t *testing.T) {
	out, err := report.NA(sample(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"column", "null_count"}, out.Headers())
	assert.Equal(t, []string{"0", "0", "1", "0"}, column(t, out, 1))
}

func TestHeaderlessNames(t *testing.T) {
	tb, err := table.FromColumns(nil, [][]string{{"1"}, {"a"}})
	require.NoError(t, err)
	out, err := report.NA(tb)
	require.NoError(t, err)
	assert.Equal(t, []string{"Column_0", "Column_1"}, column(t, out, 0))
}

func TestEmptySource(t *testing.T) {
	out, err := report.Long(table.Empty())
	require.NoError(t, err)
	rows, cols := out.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 3, cols)

	wide, err := report.Wide(table.Empty())
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric"}, wide.Headers())
}

func TestGenerate(t *testing.T) {
	opts := report.DefaultOptions()
	for _, k := range []report.Kind{report.KindInfo, report.KindNA, report.KindWide, report.KindLong} {
		out, err := opts.Generate(k, sample(t))
		require.NoError(t, err, k)
		require.NotNil(t, out)
	}
	_, err := opts.Generate("bogus", sample(t))
	assert.Error(t, err)
}
