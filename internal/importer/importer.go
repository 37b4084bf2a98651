// Package importer turns worksheet rows into typed import records. Each
// importer keeps its own sequence counter; ids are stable only within one
// run, given identical input ordering.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/normalize"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

func importID(prefix string, n int) string {
	return fmt.Sprintf("%s_import_%d", prefix, n)
}

func importAudit() entity.Audit {
	return entity.Audit{CreatedBy: constants.ImportUserID, CreatedAt: 0}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// rowExtras captures every non-blank cell of the row under its slugified
// header, named and unnamed fields alike.
func rowExtras(s *sheet.Sheet, row sheet.Row) entity.Extras {
	extras := entity.Extras{}
	for i, h := range s.Columns() {
		key := normalize.SlugKey(h)
		if key == "" {
			continue
		}
		c := row.Cell(i)
		if !c.Present() {
			continue
		}
		extras[key] = extraValue(c)
	}
	return extras
}

// extraValue keeps the cell's scalar type: date-styled cells become ISO date
// strings, numeric cells JSON numbers, everything else trimmed text.
func extraValue(c sheet.Cell) entity.ExtraValue {
	if iso, ok := normalize.SerialDate(c.Text, c.Raw); ok {
		return entity.DateExtra(iso)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(c.Raw), 64); err == nil {
		return entity.NumberExtra(f)
	}
	return entity.StringExtra(c.Value())
}
