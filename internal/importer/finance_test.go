package importer

import (
	"errors"
	"testing"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/common"
)

func TestImportCheeseSales(t *testing.T) {
	s := sheetFixture(t, constants.SheetCheeseSales, [][]any{
		{"Fecha", "Cliente", "Libras", "Precio (COP)", "Total (COP)"},
		{"05/03/24", "Don Pedro", 10, 2000, nil},
		{"sin fecha", "Doña Rosa", 5, 1000, nil},
		{"06/03/24", "Doña Rosa", 10, 2000, 25000},
	})
	sales, err := ImportCheeseSales(s, testLogger())
	if err != nil {
		t.Fatalf("ImportCheeseSales: %v", err)
	}

	if len(sales) != 2 {
		t.Fatalf("sales = %d, want 2", len(sales))
	}
	// blank total falls back to quantity x unit price
	if sales[0].Total != 20000 {
		t.Errorf("computed total = %v, want 20000", sales[0].Total)
	}
	// the sheet's own total wins even when it disagrees with the product
	if sales[1].Total != 25000 {
		t.Errorf("sheet total = %v, want 25000", sales[1].Total)
	}
	// dropped rows still consume their sequence number
	if sales[0].ID != "sale_import_1" || sales[1].ID != "sale_import_3" {
		t.Errorf("ids = %q/%q, want sale_import_1/sale_import_3", sales[0].ID, sales[1].ID)
	}
	if sales[0].Client != "Don Pedro" || sales[0].Date != "2024-03-05" {
		t.Errorf("unexpected first sale: %+v", sales[0])
	}
}

func TestImportCheeseSalesRejectsMalformedNumber(t *testing.T) {
	s := sheetFixture(t, constants.SheetCheeseSales, [][]any{
		{"Fecha", "Libras", "Precio"},
		{"05/03/24", "diez", 2000},
	})
	_, err := ImportCheeseSales(s, testLogger())
	if err == nil {
		t.Fatal("expected a hard failure for a non-numeric finance cell")
	}
	if !errors.Is(err, common.ErrBadNumber) {
		t.Errorf("error = %v, want ErrBadNumber", err)
	}
}

func TestImportMilkPurchases(t *testing.T) {
	s := sheetFixture(t, constants.SheetMilkPurchases, [][]any{
		{"Periodo", "Litros", "Valor/Litro (COP)", "Total (COP)"},
		{"2024-03", 100, 1800, nil},
		{nil, nil, nil, nil},
		{"2024-04", 50, 1800, 95000},
	})
	buys, err := ImportMilkPurchases(s, testLogger())
	if err != nil {
		t.Fatalf("ImportMilkPurchases: %v", err)
	}

	if len(buys) != 2 {
		t.Fatalf("purchases = %d, want 2", len(buys))
	}
	if buys[0].Period != "2024-03" || buys[0].Total != 180000 {
		t.Errorf("unexpected first purchase: %+v", buys[0])
	}
	if buys[1].Total != 95000 {
		t.Errorf("sheet total = %v, want 95000", buys[1].Total)
	}
}

func TestImportMilkTransport(t *testing.T) {
	s := sheetFixture(t, constants.SheetMilkTransport, [][]any{
		{"Periodo", "Valor Transporte (COP)", "Cantidad", "Total (COP)"},
		{"2024-03", 5000, 4, nil},
	})
	trans, err := ImportMilkTransport(s, testLogger())
	if err != nil {
		t.Fatalf("ImportMilkTransport: %v", err)
	}

	if len(trans) != 1 {
		t.Fatalf("transport = %d, want 1", len(trans))
	}
	tr := trans[0]
	if tr.ID != "tm_import_1" || tr.Value != 5000 || tr.Quantity != 4 || tr.Total != 20000 {
		t.Errorf("unexpected record: %+v", tr)
	}
}

func TestImportFixedCosts(t *testing.T) {
	s := sheetFixture(t, constants.SheetFixedCosts, [][]any{
		{"Concepto", "Valor Mensual (COP)", "Notas"},
		{"Electricidad", 250000, "finca principal"},
		{nil, nil, "fila sin concepto ni valor"},
	})
	costs, err := ImportFixedCosts(s, testLogger())
	if err != nil {
		t.Fatalf("ImportFixedCosts: %v", err)
	}

	if len(costs) != 1 {
		t.Fatalf("fixed costs = %d, want 1", len(costs))
	}
	if costs[0].ID != "fx_import_1" || costs[0].Concept != "Electricidad" || costs[0].Value != 250000 {
		t.Errorf("unexpected record: %+v", costs[0])
	}
}
