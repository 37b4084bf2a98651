package constants

// Record id prefixes. Ids have the form "<prefix>_import_<n>" with a
// per-category counter starting at 1, stable only within one run.
const (
	PrefixAnimal        = "ani"
	PrefixRawAnimal     = "bru"
	PrefixMedication    = "med"
	PrefixMilk          = "milk"
	PrefixHealthEvent   = "hev"
	PrefixBooster       = "boo"
	PrefixRepro         = "rep"
	PrefixCheeseSale    = "sale"
	PrefixMilkPurchase  = "buy"
	PrefixMilkTransport = "tm"
	PrefixFixedCost     = "fx"
)

// Literal defaults expected by the PWA importer.
const (
	ImportUserID   = "user_import"
	ImportUserName = "Importado"

	DefaultSex = "Hembra"

	BoosterStatusPending = "pending"

	// Fallback procedure labels when the source row leaves them blank.
	FallbackEventProcedure   = "Medicamento"
	FallbackBoosterProcedure = "Refuerzo"

	DefaultOutputFile = "ganaderia_import.json"
)
