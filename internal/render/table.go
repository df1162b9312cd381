// Package render formats query results for terminal output with
// unicode-aware column alignment.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxColumnWidth caps a column so one long title doesn't blow up the
// whole table.
const maxColumnWidth = 48

// Table accumulates rows and renders them as aligned columns.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row. Missing cells render empty; extra cells are
// dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table: header line, separator, then rows.
func (t *Table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = columnWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := columnWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(cells)-1 {
				// Last column is left ragged; padding it only adds
				// trailing whitespace.
				b.WriteString(padToWidth(cell, 0))
			} else {
				b.WriteString(padToWidth(cell, widths[i]))
			}
		}
		b.WriteString("\n")
	}

	writeRow(t.headers)

	sep := make([]string, len(t.headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(sep)

	for _, row := range t.rows {
		writeRow(row)
	}
	return b.String()
}

// columnWidth is the display width a cell will occupy after capping.
func columnWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, text longer than maxColumnWidth is still truncated.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		if runewidth.StringWidth(text) > maxColumnWidth {
			return truncate(text, maxColumnWidth)
		}
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		return truncate(text, width)
	}
	if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}
	return text
}

// truncate shortens text to exactly width display columns with an
// ellipsis suffix, padding with spaces when a wide rune leaves a gap.
func truncate(text string, width int) string {
	ellipsis := "..."
	ellipsisWidth := runewidth.StringWidth(ellipsis)

	if width <= ellipsisWidth {
		return runewidth.Truncate(ellipsis, width, "")
	}

	result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

	resultWidth := runewidth.StringWidth(result)
	if resultWidth < width {
		return result + strings.Repeat(" ", width-resultWidth)
	}
	if resultWidth > width {
		return runewidth.Truncate(result, width, "")
	}
	return result
}
