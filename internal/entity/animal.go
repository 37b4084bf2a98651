package entity

// Audit carries the fixed ownership placeholders every imported record gets.
// The PWA importer assigns real timestamps and owners later.
type Audit struct {
	CreatedBy string `json:"createdBy"`
	CreatedAt int64  `json:"createdAt"`
}

// Animal is one row of the active-cattle registry. Tag (arete) is the primary
// cross-sheet key; records from other sheets reference it through ID.
type Animal struct {
	ID     string `json:"id"`
	Tag    string `json:"arete"`
	Name   string `json:"name"`
	Farm   string `json:"finca"`
	Sex    string `json:"sexo"`
	Breed  string `json:"raza"`
	Extras Extras `json:"extras"`
	Audit
}

// RawAnimal is an untriaged cattle entry. It is never cross-referenced; the
// row is kept as a holding area for later manual registration.
type RawAnimal struct {
	ID         string `json:"id"`
	NameOrTag  string `json:"nombreArete"`
	StatusNote string `json:"estadoNota"`
	Age        string `json:"edad"`
	Weight     string `json:"peso"`
	Extras     Extras `json:"extras"`
	Audit
}
