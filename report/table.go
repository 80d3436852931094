package report

import (
	"fmt"
	"io"
	"strings"
)

// ColumnSpec defines a column's properties
type ColumnSpec struct {
	Header     string
	MinWidth   int  // Minimum column width
	AlignRight bool // Right-align values, for numbers
}

// Table represents a formatted table
type Table struct {
	columns []ColumnSpec
	rows    [][]string
	widths  []int
	indent  string
}

// NewTable creates a new table with the given column specifications
func NewTable(cols ...ColumnSpec) *Table {
	t := &Table{
		columns: cols,
		rows:    make([][]string, 0),
		widths:  make([]int, len(cols)),
	}

	// Initialize widths with header lengths or minimum widths
	for i, col := range cols {
		t.widths[i] = max(col.MinWidth, len(col.Header))
	}

	return t
}

// WithIndent prefixes every rendered line with indent
func (t *Table) WithIndent(indent string) *Table {
	t.indent = indent
	return t
}

// AddRow adds a row of data to the table, missing cells are left empty
func (t *Table) AddRow(data ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(data) {
			row[i] = data[i]
		}

		// Update width using visible length (accounts for ANSI codes)
		if visLen := visibleLength(row[i]); visLen > t.widths[i] {
			t.widths[i] = visLen
		}
	}

	t.rows = append(t.rows, row)
}

// Render writes the table to the given writer
func (t *Table) Render(w io.Writer) error {
	headers := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
		sep[i] = strings.Repeat("-", t.widths[i])
	}
	if err := t.writeLine(w, headers); err != nil {
		return err
	}
	if err := t.writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := t.writeLine(w, row); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) writeLine(w io.Writer, cells []string) error {
	formatted := make([]string, len(cells))
	for i, val := range cells {
		col := t.columns[i]
		// The last column is never padded on the right
		if i == len(cells)-1 && !col.AlignRight {
			formatted[i] = val
			continue
		}
		formatted[i] = pad(val, t.widths[i], col.AlignRight)
	}

	_, err := fmt.Fprintln(w, t.indent+strings.Join(formatted, "  "))
	return err
}

// pad pads a string to the given width
func pad(s string, width int, right bool) string {
	visibleLen := visibleLength(s)
	if visibleLen >= width {
		return s
	}
	if right {
		return strings.Repeat(" ", width-visibleLen) + s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

// visibleLength calculates the visible length of a string, skipping ANSI escape sequences
func visibleLength(s string) int {
	length := 0
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			length++
		}
	}
	return length
}
