package sheet

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an open XLSX file.
type Workbook struct {
	f      *excelize.File
	logger *slog.Logger
}

// Open loads the workbook at path.
func Open(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f, logger: logger}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheet reads the named sheet. ok is false when the workbook has no sheet
// with that name. The sheet is read twice: once formatted for display values
// and once raw so date cells keep their serial numbers.
func (w *Workbook) Sheet(name string) (*Sheet, bool, error) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil || idx == -1 {
		return nil, false, nil
	}
	formatted, err := w.f.GetRows(name)
	if err != nil {
		return nil, true, fmt.Errorf("read sheet %s: %w", name, err)
	}
	raw, err := w.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, true, fmt.Errorf("read sheet %s: %w", name, err)
	}
	w.logger.Debug("sheet loaded", "sheet", name, "rows", len(formatted))
	return newSheet(name, formatted, raw), true, nil
}
