package entity

// Medication is one treatment row. AnimalID may be empty when the animal
// reference could not be resolved; the record is kept for manual reconciliation.
type Medication struct {
	ID          string `json:"id"`
	AnimalID    string `json:"animalId"`
	Name        string `json:"nombre"`
	Date        string `json:"fecha"`
	Procedure   string `json:"procedimiento"`
	Responsible string `json:"responsable"`
	Plan        string `json:"plan"`
	Cost        string `json:"costo"`
	Notes       string `json:"notas"`
	Farm        string `json:"finca"`
	Audit
}

// HealthEvent is derived 1:1 from a medication row whose animal resolved.
type HealthEvent struct {
	ID        string `json:"id"`
	AnimalID  string `json:"animalId"`
	Procedure string `json:"procedure"`
	Date      string `json:"date"`
	Audit
}

// Booster is a follow-up reminder, one per date found inside the medication's
// plan/procedure text, referencing the health event it came from.
type Booster struct {
	ID        string `json:"id"`
	EventID   string `json:"eventId"`
	AnimalID  string `json:"animalId"`
	Procedure string `json:"procedure"`
	RefDate   string `json:"refDate"`
	Farm      string `json:"finca"`
	Status    string `json:"status"`
	Audit
}
