package entity

// CheeseSale is one row of the cheese-sales ledger.
type CheeseSale struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Client string  `json:"client"`
	Pounds float64 `json:"lbs"`
	Price  float64 `json:"price"`
	Total  float64 `json:"total"`
	Audit
}

// MilkPurchase is one row of the milk-purchases ledger, keyed by free-text
// period rather than a date.
type MilkPurchase struct {
	ID            string  `json:"id"`
	Period        string  `json:"period"`
	Liters        float64 `json:"liters"`
	ValuePerLiter float64 `json:"vl"`
	Total         float64 `json:"total"`
	Audit
}

// MilkTransport is one row of the milk-transport ledger.
type MilkTransport struct {
	ID       string  `json:"id"`
	Period   string  `json:"period"`
	Value    float64 `json:"value"`
	Quantity float64 `json:"qty"`
	Total    float64 `json:"total"`
	Audit
}

// FixedCost is one monthly fixed-cost row.
type FixedCost struct {
	ID      string  `json:"id"`
	Concept string  `json:"concept"`
	Value   float64 `json:"value"`
	Audit
}
