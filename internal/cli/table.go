package cli

import (
	"strings"
)

// Table represents a simple table formatter with dynamic column widths.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2, // 2 spaces between columns
		rightAlign: make(map[int]bool),
	}
}

// AlignRight right-aligns a column, e.g. for numbers.
func (t *Table) AlignRight(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string. The last column is not
// padded, so it may hold text whose printed width differs from its length.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], len(cell))
		}
	}

	var result strings.Builder
	t.writeLine(&result, t.headers, colWidths)

	sep := make([]string, len(t.headers))
	for i, w := range colWidths {
		sep[i] = strings.Repeat("-", w)
	}
	t.writeLine(&result, sep, colWidths)

	for _, row := range t.rows {
		t.writeLine(&result, row, colWidths)
	}

	return result.String()
}

func (t *Table) writeLine(sb *strings.Builder, cells []string, widths []int) {
	last := len(cells) - 1
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", t.padding))
		}
		switch {
		case t.rightAlign[i]:
			sb.WriteString(padLeft(cell, widths[i]))
		case i == last:
			sb.WriteString(cell)
		default:
			sb.WriteString(padRight(cell, widths[i]))
		}
	}
	sb.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string with spaces on the left to reach the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
