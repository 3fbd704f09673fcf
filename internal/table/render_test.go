package table_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabloom-cli/internal/table"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "0 rows × 0 columns\n(empty)", table.Empty().String())
}

func TestRenderSmall(t *testing.T) {
	s, err := table.NewStringColumnNullable([]string{"x", ""}, []bool{true, false})
	require.NoError(t, err)
	tb, err := table.New([]string{"a", "b"}, []table.Column{table.NewIntegerColumn([]int64{1, 2}), s})
	require.NoError(t, err)

	want := "┌──────────┬──────────┐\n" +
		"│    a     │    b     │\n" +
		"├──────────┼──────────┤\n" +
		"│    1     │    x     │\n" +
		"│    2     │   null   │\n" +
		"└──────────┴──────────┘\n" +
		"2 rows × 2 columns"
	assert.Equal(t, want, tb.String())
}

func TestRenderTruncatesLongText(t *testing.T) {
	long := strings.Repeat("abcdefghij", 3)
	tb, err := table.FromColumns([]string{"text"}, [][]string{{long}})
	require.NoError(t, err)

	out := tb.String()
	assert.Contains(t, out, "abcdefghijabcdefghi…")
	assert.NotContains(t, out, long)
	// 20 runes of text plus one space on each side.
	assert.Contains(t, out, "┌"+strings.Repeat("─", 22)+"┐")
}

func TestRenderHeadTail(t *testing.T) {
	raw := make([]string, 25)
	for i := range raw {
		raw[i] = "r" + string(rune('A'+i))
	}
	tb, err := table.FromColumns([]string{"id"}, [][]string{raw})
	require.NoError(t, err)

	out := tb.String()
	lines := strings.Split(out, "\n")
	// top, header, rule, 9 rows, gap, last, bottom, footer
	require.Len(t, lines, 3+9+2+1+1)
	assert.Contains(t, lines[3], "rA")
	assert.Contains(t, lines[11], "rI")
	assert.Contains(t, lines[12], "⋮")
	assert.Contains(t, lines[13], "rY")
	assert.NotContains(t, out, "rJ")
	assert.Equal(t, "25 rows × 1 columns", lines[len(lines)-1])
}

func TestRenderExactlyMaxRowsShowsAll(t *testing.T) {
	raw := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	tb, err := table.FromColumns([]string{"n"}, [][]string{raw})
	require.NoError(t, err)
	assert.NotContains(t, tb.String(), "⋮")
}

func TestRenderOptions(t *testing.T) {
	tb, err := table.FromColumns([]string{"n"}, [][]string{{"1", "2", "3", "4"}})
	require.NoError(t, err)

	out := tb.Render(table.RenderOptions{MaxRows: 2, MinWidth: 4, MaxWidth: 6})
	lines := strings.Split(out, "\n")
	assert.Equal(t, "┌──────┐", lines[0])
	assert.Contains(t, out, "⋮")
	assert.Contains(t, lines[5], "4")
}

func TestRenderHeaderlessAndWideRunes(t *testing.T) {
	tb, err := table.FromColumns(nil, [][]string{{"héllo wörld ünïcode ëxtra"}})
	require.NoError(t, err)
	out := tb.String()
	assert.Contains(t, out, "Column_0")
	assert.Contains(t, out, "héllo wörld ünïcode…")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", table.Truncate("abc", 3))
	assert.Equal(t, "ab…", table.Truncate("abcd", 3))
	assert.Equal(t, "…", table.Truncate("abcd", 1))
}
