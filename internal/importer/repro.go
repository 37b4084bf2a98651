package importer

import (
	"log/slog"
	"strings"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

// ImportRepro reads the reproduction-tracking sheet. Rows must resolve to a
// registered animal or they are dropped. The three dates parse independently
// and leniently; the pregnancy diagnosis stays free text, upper-cased.
func ImportRepro(s *sheet.Sheet, res *AnimalResolver, logger *slog.Logger) []entity.ReproRecord {
	var out []entity.ReproRecord
	n := 0
	for _, row := range s.Rows() {
		tagCell := s.Field(row, "arete")
		nameCell := s.Field(row, "nombre", "nombre/arete")
		calvingCell := s.Field(row, "fecha último parto", "fecha ultimo parto", "ultimo parto", "parto")
		heatCell := s.Field(row, "fecha último celo", "fecha ultimo celo", "ultimo celo", "celo")
		insemCell := s.Field(row, "fecha inseminación", "fecha inseminacion", "inseminacion")
		pregCell := s.Field(row, "diagnóstico preñez (si/no)", "diagnostico preñez (si/no)", "preñez", "prenhez")

		if !tagCell.Present() && !nameCell.Present() && !calvingCell.Present() &&
			!heatCell.Present() && !insemCell.Present() && !pregCell.Present() {
			continue
		}

		animalID := res.ResolveAny(tagCell.Value(), nameCell.Value())
		if animalID == "" {
			logger.Debug("repro row dropped, unresolved animal", "sheet", s.Name, "ref", tagCell.Value())
			continue
		}

		n++
		out = append(out, entity.ReproRecord{
			ID:           importID(constants.PrefixRepro, n),
			AnimalID:     animalID,
			LastCalving:  calvingCell.DateValue(),
			LastHeat:     heatCell.DateValue(),
			Insemination: insemCell.DateValue(),
			Pregnancy:    strings.ToUpper(pregCell.Value()),
			Audit:        importAudit(),
		})
	}
	logger.Debug("repro imported", "sheet", s.Name, "count", n)
	return out
}
