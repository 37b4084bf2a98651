package sheet

import (
	"strconv"
	"strings"

	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/normalize"
)

// Cell is one cell of a data row. Text holds the formatted value, Raw the
// stored one (date cells keep their serial number there). The zero Cell is
// the explicit absent marker.
type Cell struct {
	Text  string
	Raw   string
	found bool
}

// Present reports whether the cell exists in the row and is non-blank.
func (c Cell) Present() bool {
	return c.found && (strings.TrimSpace(c.Text) != "" || strings.TrimSpace(c.Raw) != "")
}

// Value returns the trimmed formatted text, "" when absent.
func (c Cell) Value() string {
	return normalize.Text(c.Text)
}

// DateValue returns the cell's ISO date, "" when it holds none.
func (c Cell) DateValue() string {
	return normalize.ParseDate(c.Text, c.Raw)
}

// NumberText prefers the stored raw value so styled numbers parse cleanly.
func (c Cell) NumberText() string {
	raw := strings.TrimSpace(c.Raw)
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return raw
	}
	return strings.TrimSpace(c.Text)
}

// Row is one fixed-width data row. Access past the source row's length reads
// as an absent cell, never an out-of-bounds fault.
type Row struct {
	cells []Cell
	blank bool
}

func newRow(formatted, raw []string, width int) Row {
	cells := make([]Cell, width)
	blank := true
	for i := range cells {
		c := Cell{found: true}
		if i < len(formatted) {
			c.Text = formatted[i]
		}
		if i < len(raw) {
			c.Raw = raw[i]
		}
		cells[i] = c
		if c.Present() {
			blank = false
		}
	}
	// data spilling past the header width has no addressable column but
	// still counts against blankness
	for i := width; i < len(formatted); i++ {
		if strings.TrimSpace(formatted[i]) != "" {
			blank = false
		}
	}
	return Row{cells: cells, blank: blank}
}

// Cell returns the cell at column idx, absent when out of range.
func (r Row) Cell(idx int) Cell {
	if idx < 0 || idx >= len(r.cells) {
		return Cell{}
	}
	return r.cells[idx]
}

// Blank reports whether every cell of the source row is blank.
func (r Row) Blank() bool { return r.blank }
