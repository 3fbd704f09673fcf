// Package report derives summary tables from a loaded table: wide and long
// statistics layouts for display, and info/NA reports for programmatic use.
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KaramelBytes/tabloom-cli/internal/table"
)

// Placeholder is printed where an aggregate does not apply to a column.
const Placeholder = "N/A"

// Metric is one aggregate of the column contract.
type Metric struct {
	Name string
	Eval func(table.Column) (float64, bool)
}

// Metrics lists the aggregates in report order.
var Metrics = []Metric{
	{"mean", table.Column.Mean},
	{"max", table.Column.Max},
	{"min", table.Column.Min},
	{"sum", table.Column.Sum},
}

// Options controls how the display layouts format numbers.
type Options struct {
	Precision int `mapstructure:"report_precision"`
}

func DefaultOptions() Options { return Options{Precision: 2} }

// Wide returns one row per metric and one column per source column, led by a
// "Metric" column.
func Wide(t *table.Table) (*table.Table, error) { return DefaultOptions().Wide(t) }

// Long returns one (Column, Metric, Value) row per source column and metric.
func Long(t *table.Table) (*table.Table, error) { return DefaultOptions().Long(t) }

func (o Options) Wide(t *table.Table) (*table.Table, error) {
	_, n := t.Shape()
	headers := make([]string, 0, n+1)
	cols := make([]table.Column, 0, n+1)

	names := make([]string, len(Metrics))
	for i, m := range Metrics {
		names[i] = m.Name
	}
	headers = append(headers, "Metric")
	cols = append(cols, table.NewStringColumn(names))

	for j := 0; j < n; j++ {
		c := t.Column(j)
		cells := make([]string, len(Metrics))
		for i, m := range Metrics {
			cells[i] = o.format(m.Eval(c))
		}
		headers = append(headers, t.ColumnName(j))
		cols = append(cols, table.NewStringColumn(cells))
	}
	out, err := table.New(headers, cols)
	if err != nil {
		return nil, fmt.Errorf("wide report: %w", err)
	}
	return out, nil
}

func (o Options) Long(t *table.Table) (*table.Table, error) {
	_, n := t.Shape()
	var names, metrics, values table.StringBuilder
	for j := 0; j < n; j++ {
		c := t.Column(j)
		for _, m := range Metrics {
			names.Append(t.ColumnName(j))
			metrics.Append(m.Name)
			values.Append(o.format(m.Eval(c)))
		}
	}
	out, err := table.New(
		[]string{"Column", "Metric", "Value"},
		[]table.Column{names.Build(), metrics.Build(), values.Build()},
	)
	if err != nil {
		return nil, fmt.Errorf("long report: %w", err)
	}
	return out, nil
}

func (o Options) format(v float64, ok bool) string {
	if !ok {
		return Placeholder
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return table.Float(v).String()
	}
	prec := o.Precision
	if prec < 0 {
		prec = DefaultOptions().Precision
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Info returns one row per source column with the columns
// column, mean, sum, min, max, null_count and dtype. Aggregates stay numeric;
// absent ones are null.
func Info(t *table.Table) (*table.Table, error) {
	_, n := t.Shape()
	var (
		names, dtypes     table.StringBuilder
		mean, sum, lo, hi optionalFloats
		nulls             table.IntegerBuilder
	)
	for j := 0; j < n; j++ {
		c := t.Column(j)
		names.Append(t.ColumnName(j))
		mean.add(c.Mean())
		sum.add(c.Sum())
		lo.add(c.Min())
		hi.add(c.Max())
		nulls.Append(int64(c.NullCount()))
		dtypes.Append(c.DType().String())
	}
	out, err := table.New(
		[]string{"column", "mean", "sum", "min", "max", "null_count", "dtype"},
		[]table.Column{names.Build(), mean.Build(), sum.Build(), lo.Build(), hi.Build(), nulls.Build(), dtypes.Build()},
	)
	if err != nil {
		return nil, fmt.Errorf("info report: %w", err)
	}
	return out, nil
}

type optionalFloats struct{ table.FloatBuilder }

func (b *optionalFloats) add(v float64, ok bool) {
	if ok {
		b.Append(v)
		return
	}
	b.AppendNull()
}

// NA returns the null count of every source column.
func NA(t *table.Table) (*table.Table, error) {
	_, n := t.Shape()
	var (
		names table.StringBuilder
		nulls table.IntegerBuilder
	)
	for j := 0; j < n; j++ {
		names.Append(t.ColumnName(j))
		nulls.Append(int64(t.Column(j).NullCount()))
	}
	out, err := table.New([]string{"column", "null_count"}, []table.Column{names.Build(), nulls.Build()})
	if err != nil {
		return nil, fmt.Errorf("na report: %w", err)
	}
	return out, nil
}

// Kind names a report layout, as accepted on the command line.
type Kind string

const (
	KindInfo Kind = "info"
	KindNA   Kind = "na"
	KindWide Kind = "wide"
	KindLong Kind = "long"
)

// Generate dispatches to the report named by kind.
func (o Options) Generate(kind Kind, t *table.Table) (*table.Table, error) {
	switch kind {
	case KindInfo:
		return Info(t)
	case KindNA:
		return NA(t)
	case KindWide:
		return o.Wide(t)
	case KindLong:
		return o.Long(t)
	}
	return nil, fmt.Errorf("unknown report %q (want info, na, wide or long)", kind)
}
