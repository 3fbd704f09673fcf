package table

import (
	"fmt"

	"github.com/goccy/go-json"
)

type jsonTable struct {
	Headers []string `json:"headers"`
	Columns [][]any  `json:"columns"`
}

// ToJSON encodes the table as {"headers": [...], "columns": [[...], ...]}
// with one array per column. Nulls, NaN and infinities encode as null.
func (t *Table) ToJSON() ([]byte, error) {
	out := jsonTable{Headers: t.headers, Columns: make([][]any, len(t.columns))}
	if out.Headers == nil {
		out.Headers = []string{}
	}
	for j, c := range t.columns {
		cells := make([]any, c.Len())
		for i := range cells {
			cells[i] = c.Get(i).Interface()
		}
		out.Columns[j] = cells
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode table: %w", err)
	}
	return b, nil
}
