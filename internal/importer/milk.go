package importer

import (
	"log/slog"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/normalize"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

// ImportMilk reads the daily-milking sheet. A row needs a parseable date and
// a resolvable animal or it is dropped. Volumes that fail to parse coerce to
// zero rather than failing the row.
func ImportMilk(s *sheet.Sheet, res *AnimalResolver, logger *slog.Logger) []entity.MilkRecord {
	var out []entity.MilkRecord
	n := 0
	for _, row := range s.Rows() {
		dateCell := s.Field(row, "fecha")
		morningCell := s.Field(row, "litros mañana", "litros manana", "mañana", "manana")
		eveningCell := s.Field(row, "litros tarde", "tarde")
		if !dateCell.Present() && !morningCell.Present() && !eveningCell.Present() {
			continue
		}

		date := dateCell.DateValue()
		if date == "" {
			logger.Debug("milk row dropped, unparseable date", "sheet", s.Name, "value", dateCell.Value())
			continue
		}
		animalID := res.ResolveAny(
			s.Field(row, "arete").Value(),
			s.Field(row, "nombre", "nombre/arete").Value(),
		)
		if animalID == "" {
			logger.Debug("milk row dropped, unresolved animal", "sheet", s.Name, "date", date)
			continue
		}

		m := normalize.Float(morningCell.NumberText())
		t := normalize.Float(eveningCell.NumberText())

		n++
		out = append(out, entity.MilkRecord{
			ID:       importID(constants.PrefixMilk, n),
			Date:     date,
			AnimalID: animalID,
			Morning:  m,
			Evening:  t,
			Total:    m + t,
			Audit:    importAudit(),
		})
	}
	logger.Debug("milk imported", "sheet", s.Name, "count", n)
	return out
}
