package importer

import (
	"testing"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
)

func TestImportMilk(t *testing.T) {
	s := sheetFixture(t, constants.SheetMilk, [][]any{
		{"Fecha", "Arete", "Nombre", "Litros Mañana", "Litros Tarde"},
		{"05/03/24", "045", nil, 8, 6},
		{"06/03/24", nil, "Bella", 7.5, nil},
	})
	milk := ImportMilk(s, testResolver(), testLogger())

	if len(milk) != 2 {
		t.Fatalf("milk = %d, want 2", len(milk))
	}
	m := milk[0]
	if m.ID != "milk_import_1" || m.Date != "2024-03-05" || m.AnimalID != "ani_import_1" {
		t.Errorf("unexpected first record: %+v", m)
	}
	if m.Morning != 8 || m.Evening != 6 || m.Total != 14 {
		t.Errorf("volumes = %v/%v/%v, want 8/6/14", m.Morning, m.Evening, m.Total)
	}
	// blank evening volume coerces to zero, resolution falls back to name
	if milk[1].AnimalID != "ani_import_1" || milk[1].Evening != 0 || milk[1].Total != 7.5 {
		t.Errorf("unexpected second record: %+v", milk[1])
	}
}

func TestImportMilkDropsUnresolvedAnimal(t *testing.T) {
	s := sheetFixture(t, constants.SheetMilk, [][]any{
		{"Fecha", "Arete", "Litros Mañana", "Litros Tarde"},
		{"05/03/24", "9999", 8, 6},
	})
	milk := ImportMilk(s, testResolver(), testLogger())
	if len(milk) != 0 {
		t.Fatalf("milk = %d, want 0 for unresolved animal", len(milk))
	}
}

func TestImportMilkDropsUnparseableDate(t *testing.T) {
	s := sheetFixture(t, constants.SheetMilk, [][]any{
		{"Fecha", "Arete", "Litros Mañana", "Litros Tarde"},
		{"proximamente", "045", 8, 6},
		{"05/03/24", "045", "mucho", 6},
	})
	milk := ImportMilk(s, testResolver(), testLogger())

	if len(milk) != 1 {
		t.Fatalf("milk = %d, want 1", len(milk))
	}
	// the surviving row keeps its own sequence number
	if milk[0].ID != "milk_import_1" {
		t.Errorf("id = %q, want milk_import_1", milk[0].ID)
	}
	// non-numeric volume coerces to zero instead of dropping the row
	if milk[0].Morning != 0 || milk[0].Total != 6 {
		t.Errorf("coerced volumes = %v/%v, want 0/6", milk[0].Morning, milk[0].Total)
	}
}

func TestImportMilkSkipsEmptyRows(t *testing.T) {
	s := sheetFixture(t, constants.SheetMilk, [][]any{
		{"Fecha", "Arete", "Litros Mañana", "Litros Tarde", "Notas"},
		{nil, "045", nil, nil, "fila sin datos de ordeño"},
	})
	milk := ImportMilk(s, testResolver(), testLogger())
	if len(milk) != 0 {
		t.Fatalf("milk = %d, want 0 when date and volumes are all absent", len(milk))
	}
}
