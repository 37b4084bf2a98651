package importer

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sheetFixture writes rows into a single-sheet workbook and reads it back
// through the sheet package, so importers see exactly what production sees.
func sheetFixture(t *testing.T, name string, rows [][]any) *sheet.Sheet {
	t.Helper()
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for r, cells := range rows {
		for c, v := range cells {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				t.Fatalf("set cell %s: %v", cell, err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	_ = f.Close()

	wb, err := sheet.Open(path, testLogger())
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { _ = wb.Close() })
	s, ok, err := wb.Sheet(name)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if !ok {
		t.Fatalf("sheet %s not found", name)
	}
	return s
}
