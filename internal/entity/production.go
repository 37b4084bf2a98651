package entity

// MilkRecord is one milking-day row for a resolved animal.
type MilkRecord struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	AnimalID string  `json:"animalId"`
	Morning  float64 `json:"m"`
	Evening  float64 `json:"t"`
	Total    float64 `json:"total"`
	Audit
}

// ReproRecord tracks reproduction dates for a resolved animal. The pregnancy
// flag is free text, upper-cased verbatim.
type ReproRecord struct {
	ID           string `json:"id"`
	AnimalID     string `json:"animalId"`
	LastCalving  string `json:"parto"`
	LastHeat     string `json:"celo"`
	Insemination string `json:"insem"`
	Pregnancy    string `json:"pre"`
	Audit
}
