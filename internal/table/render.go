package table

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Box drawing glyphs and markers used by Render.
const (
	glyphTopLeft     = "┌"
	glyphTopMid      = "┬"
	glyphTopRight    = "┐"
	glyphMidLeft     = "├"
	glyphMidMid      = "┼"
	glyphMidRight    = "┤"
	glyphBottomLeft  = "└"
	glyphBottomMid   = "┴"
	glyphBottomRight = "┘"
	glyphHorizontal  = "─"
	glyphVertical    = "│"

	Ellipsis    = "…"
	GapMarker   = "⋮"
	NullMarker  = "null"
	EmptyMarker = "(empty)"
)

const (
	DefaultMaxRows  = 10
	DefaultMinWidth = 8
	DefaultMaxWidth = 20
)

// RenderOptions controls the box display. Tables with more than MaxRows rows
// show the first MaxRows-1 rows, a gap row, then the last row. Column widths
// are clamped to [MinWidth, MaxWidth] runes.
type RenderOptions struct {
	MaxRows  int `mapstructure:"display_max_rows"`
	MinWidth int `mapstructure:"display_min_width"`
	MaxWidth int `mapstructure:"display_max_width"`
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{MaxRows: DefaultMaxRows, MinWidth: DefaultMinWidth, MaxWidth: DefaultMaxWidth}
}

func (o RenderOptions) normalized() RenderOptions {
	d := DefaultRenderOptions()
	if o.MaxRows <= 0 {
		o.MaxRows = d.MaxRows
	}
	if o.MinWidth <= 0 {
		o.MinWidth = d.MinWidth
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = d.MaxWidth
	}
	if o.MaxWidth < o.MinWidth {
		o.MaxWidth = o.MinWidth
	}
	return o
}

// String renders the table with DefaultRenderOptions.
func (t *Table) String() string { return t.Render(DefaultRenderOptions()) }

// Render draws the table as a fixed-width box followed by a
// "N rows × M columns" footer.
func (t *Table) Render(opt RenderOptions) string {
	opt = opt.normalized()
	rows, cols := t.Shape()
	if cols == 0 {
		return fmt.Sprintf("0 rows × 0 columns\n%s", EmptyMarker)
	}

	// Row indices to print; -1 marks the gap row.
	shown := make([]int, 0, opt.MaxRows+1)
	if rows > opt.MaxRows {
		for i := 0; i < opt.MaxRows-1; i++ {
			shown = append(shown, i)
		}
		shown = append(shown, -1, rows-1)
	} else {
		for i := 0; i < rows; i++ {
			shown = append(shown, i)
		}
	}

	widths := make([]int, cols)
	for j := range widths {
		w := utf8.RuneCountInString(t.ColumnName(j))
		for _, i := range shown {
			if i < 0 {
				continue
			}
			w = max(w, utf8.RuneCountInString(t.cellText(i, j)))
		}
		widths[j] = min(max(w, opt.MinWidth), opt.MaxWidth)
	}

	var b strings.Builder
	rule(&b, widths, glyphTopLeft, glyphTopMid, glyphTopRight)
	line(&b, widths, func(j int) string { return t.ColumnName(j) })
	rule(&b, widths, glyphMidLeft, glyphMidMid, glyphMidRight)
	for _, i := range shown {
		if i < 0 {
			line(&b, widths, func(int) string { return GapMarker })
			continue
		}
		line(&b, widths, func(j int) string { return t.cellText(i, j) })
	}
	rule(&b, widths, glyphBottomLeft, glyphBottomMid, glyphBottomRight)
	fmt.Fprintf(&b, "%d rows × %d columns", rows, cols)
	return b.String()
}

func (t *Table) cellText(i, j int) string {
	v := t.columns[j].Get(i)
	if v.IsNull() {
		return NullMarker
	}
	return v.String()
}

func rule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for j, w := range widths {
		if j > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat(glyphHorizontal, w+2))
	}
	b.WriteString(right)
	b.WriteByte('\n')
}

func line(b *strings.Builder, widths []int, text func(int) string) {
	b.WriteString(glyphVertical)
	for j, w := range widths {
		b.WriteByte(' ')
		b.WriteString(center(Truncate(text(j), w), w))
		b.WriteByte(' ')
		b.WriteString(glyphVertical)
	}
	b.WriteByte('\n')
}

// Truncate shortens s to width runes, replacing the tail with an ellipsis.
func Truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 1 {
		return Ellipsis
	}
	r := []rune(s)
	return string(r[:width-1]) + Ellipsis
}

// center pads s to width runes, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
