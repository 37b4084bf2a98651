package importer

import (
	"log/slog"
	"regexp"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

var digitsOnlyRe = regexp.MustCompile(`^\d+$`)

// ImportAnimals reads the active-cattle registry. Rows missing both tag and
// name are skipped. A purely numeric name with a blank tag column is a
// common data-entry shortcut for the tag itself, so it moves over and the
// name clears. Sex defaults to female when absent.
func ImportAnimals(s *sheet.Sheet, logger *slog.Logger) []entity.Animal {
	var out []entity.Animal
	n := 0
	for _, row := range s.Rows() {
		tagCell := s.Field(row, "arete")
		nameCell := s.Field(row, "nombre/arete", "nombre")
		if !tagCell.Present() && !nameCell.Present() {
			continue
		}

		tag := tagCell.Value()
		name := nameCell.Value()
		if tag == "" && digitsOnlyRe.MatchString(name) {
			tag = name
			name = ""
		}
		if tag == "" && name == "" {
			continue
		}

		n++
		out = append(out, entity.Animal{
			ID:     importID(constants.PrefixAnimal, n),
			Tag:    tag,
			Name:   name,
			Farm:   s.Field(row, "finca").Value(),
			Sex:    firstNonEmpty(s.Field(row, "sexo").Value(), constants.DefaultSex),
			Breed:  s.Field(row, "raza").Value(),
			Extras: rowExtras(s, row),
			Audit:  importAudit(),
		})
	}
	logger.Debug("animals imported", "sheet", s.Name, "count", n)
	return out
}

// ImportRawAnimals reads the untriaged-cattle sheet. Only fully-blank rows
// are skipped; everything else is kept verbatim as a holding area for later
// triage, so there is no tag/name requirement here.
func ImportRawAnimals(s *sheet.Sheet, logger *slog.Logger) []entity.RawAnimal {
	var out []entity.RawAnimal
	n := 0
	for _, row := range s.Rows() {
		if row.Blank() {
			continue
		}
		n++
		out = append(out, entity.RawAnimal{
			ID:         importID(constants.PrefixRawAnimal, n),
			NameOrTag:  s.Field(row, "nombre/arete", "nombre", "arete").Value(),
			StatusNote: s.Field(row, "estado", "estado_nota", "nota", "observacion").Value(),
			Age:        s.Field(row, "edad", "edad_meses", "meses").Value(),
			Weight:     s.Field(row, "peso", "peso_kg", "kg").Value(),
			Extras:     rowExtras(s, row),
			Audit:      importAudit(),
		})
	}
	logger.Debug("raw animals imported", "sheet", s.Name, "count", n)
	return out
}
