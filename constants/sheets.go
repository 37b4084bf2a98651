package constants

// Workbook sheet names recognized by the converter. Every sheet is optional;
// a missing sheet yields zero records for its category.
const (
	SheetAnimals       = "Bovinos_Activos"
	SheetRawAnimals    = "Bovinos_Bruto"
	SheetMilk          = "Ordeño"
	SheetMedications   = "Medicamentos"
	SheetRepro         = "Reproduccion"
	SheetCheeseSales   = "Venta_Queso"
	SheetMilkPurchases = "Compra_Leche"
	SheetMilkTransport = "Transporte_Leche"
	SheetFixedCosts    = "Gastos_Fijos"
)

// Category is a record category key in the export document's data block.
type Category string

// Stable values (the PWA importer looks these exact keys up).
const (
	CategoryUsers         Category = "users"
	CategoryAnimals       Category = "animals"
	CategoryRawAnimals    Category = "brutos"
	CategoryMedications   Category = "meds"
	CategoryMilk          Category = "milk"
	CategoryHealthEvents  Category = "healthEvents"
	CategoryBoosters      Category = "boosters"
	CategoryRepro         Category = "repro"
	CategoryCheeseSales   Category = "salesCheese"
	CategoryMilkPurchases Category = "buyMilk"
	CategoryMilkTransport Category = "transMilk"
	CategoryFixedCosts    Category = "fixedCosts"
)
