package importer

import (
	"log/slog"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/normalize"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

// ImportMedications reads the medications sheet. Every row with any identity
// or content field yields a medication record, unresolved animal reference
// included (animalId stays "" for manual reconciliation). Rows whose animal
// does resolve additionally yield one health event, plus one pending booster
// per date mentioned in the plan/procedure free text.
func ImportMedications(s *sheet.Sheet, res *AnimalResolver, logger *slog.Logger) ([]entity.Medication, []entity.HealthEvent, []entity.Booster) {
	var meds []entity.Medication
	var events []entity.HealthEvent
	var boosters []entity.Booster
	medN, booN := 0, 0

	for _, row := range s.Rows() {
		tagCell := s.Field(row, "arete", "id", "codigo")
		nameCell := s.Field(row, "nombre", "nombre/arete")
		dateCell := s.Field(row, "fecha", "fecha_aplicacion", "dia")
		procCell := s.Field(row, "medicamento/procedimiento", "procedimiento", "medicamento", "tratamiento")
		planCell := s.Field(row, "plan", "dosis", "detalle")

		if !tagCell.Present() && !nameCell.Present() &&
			!procCell.Present() && !planCell.Present() && !dateCell.Present() {
			continue
		}

		date := dateCell.DateValue()
		proc := procCell.Value()
		plan := planCell.Value()
		farm := s.Field(row, "finca").Value()
		animalID := res.ResolveAny(tagCell.Value(), nameCell.Value())

		medN++
		meds = append(meds, entity.Medication{
			ID:          importID(constants.PrefixMedication, medN),
			AnimalID:    animalID,
			Name:        nameCell.Value(),
			Date:        date,
			Procedure:   proc,
			Responsible: s.Field(row, "responsable", "veterinario", "aplico").Value(),
			Plan:        plan,
			Cost:        s.Field(row, "costo", "valor", "precio").Value(),
			Notes:       s.Field(row, "notas", "observacion", "obs").Value(),
			Farm:        farm,
			Audit:       importAudit(),
		})

		if animalID == "" {
			continue
		}

		// health event ids share the medication counter, so they are not
		// contiguous when some rows fail to resolve
		eventID := importID(constants.PrefixHealthEvent, medN)
		events = append(events, entity.HealthEvent{
			ID:        eventID,
			AnimalID:  animalID,
			Procedure: firstNonEmpty(proc, plan, constants.FallbackEventProcedure),
			Date:      date,
			Audit:     importAudit(),
		})

		for _, ref := range normalize.DatesIn(plan + " " + proc) {
			booN++
			boosters = append(boosters, entity.Booster{
				ID:        importID(constants.PrefixBooster, booN),
				EventID:   eventID,
				AnimalID:  animalID,
				Procedure: firstNonEmpty(proc, constants.FallbackBoosterProcedure),
				RefDate:   ref,
				Farm:      farm,
				Status:    constants.BoosterStatusPending,
				Audit:     importAudit(),
			})
		}
	}
	logger.Debug("medications imported",
		"sheet", s.Name, "meds", medN, "health_events", len(events), "boosters", booN)
	return meds, events, boosters
}
