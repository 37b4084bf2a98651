package sheet

import (
	"strings"
)

// Sheet is one worksheet: a header lookup plus fixed-width data rows. The
// first source row is always the header row.
type Sheet struct {
	Name    string
	headers map[string]int
	columns []string
	rows    []Row
}

func newSheet(name string, formatted, raw [][]string) *Sheet {
	s := &Sheet{Name: name, headers: map[string]int{}}
	if len(formatted) == 0 {
		return s
	}
	s.columns = formatted[0]
	for i, h := range s.columns {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		// duplicate header text keeps the last occurrence's position
		s.headers[key] = i
	}
	width := len(s.columns)
	for r := 1; r < len(formatted); r++ {
		s.rows = append(s.rows, newRow(formatted[r], rowAt(raw, r), width))
	}
	return s
}

func rowAt(m [][]string, i int) []string {
	if i < len(m) {
		return m[i]
	}
	return nil
}

// Columns returns the raw header cells in column order.
func (s *Sheet) Columns() []string { return s.columns }

// Rows returns the data rows (everything below the header row).
func (s *Sheet) Rows() []Row { return s.rows }

// Field returns the cell at the first candidate header found in this sheet,
// trying names in order, most specific first. Candidates whose column falls
// outside the row are skipped; no candidate matching yields an absent cell.
func (s *Sheet) Field(row Row, names ...string) Cell {
	for _, n := range names {
		if idx, ok := s.headers[strings.ToLower(strings.TrimSpace(n))]; ok && idx < len(row.cells) {
			return row.cells[idx]
		}
	}
	return Cell{}
}
