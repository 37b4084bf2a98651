package entity

import "github.com/clinicasansebastianips-ship-it/ganaderia/constants"

// User is the synthetic owner every imported record points at.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Meta identifies one converter run.
type Meta struct {
	BatchID string `json:"batchId"`
}

// DataSet holds every record category of one run. All slices are always
// present in the output, possibly empty.
type DataSet struct {
	Users         []User          `json:"users"`
	Animals       []Animal        `json:"animals"`
	RawAnimals    []RawAnimal     `json:"brutos"`
	Medications   []Medication    `json:"meds"`
	Milk          []MilkRecord    `json:"milk"`
	HealthEvents  []HealthEvent   `json:"healthEvents"`
	Boosters      []Booster       `json:"boosters"`
	Repro         []ReproRecord   `json:"repro"`
	CheeseSales   []CheeseSale    `json:"salesCheese"`
	MilkPurchases []MilkPurchase  `json:"buyMilk"`
	MilkTransport []MilkTransport `json:"transMilk"`
	FixedCosts    []FixedCost     `json:"fixedCosts"`
}

// Counts reports the record count per category key.
func (d DataSet) Counts() map[constants.Category]int {
	return map[constants.Category]int{
		constants.CategoryUsers:         len(d.Users),
		constants.CategoryAnimals:       len(d.Animals),
		constants.CategoryRawAnimals:    len(d.RawAnimals),
		constants.CategoryMedications:   len(d.Medications),
		constants.CategoryMilk:          len(d.Milk),
		constants.CategoryHealthEvents:  len(d.HealthEvents),
		constants.CategoryBoosters:      len(d.Boosters),
		constants.CategoryRepro:         len(d.Repro),
		constants.CategoryCheeseSales:   len(d.CheeseSales),
		constants.CategoryMilkPurchases: len(d.MilkPurchases),
		constants.CategoryMilkTransport: len(d.MilkTransport),
		constants.CategoryFixedCosts:    len(d.FixedCosts),
	}
}

// Document is the full export file consumed by the offline app.
type Document struct {
	ExportedAt string  `json:"exportedAt"`
	Meta       Meta    `json:"meta"`
	Data       DataSet `json:"data"`
}
