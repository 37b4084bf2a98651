package pipeline

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/export"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/importer"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

// Pipeline runs the whole conversion: a single synchronous pass over the
// workbook in fixed sheet order. The animal registry always runs first so
// every later importer can resolve animal references.
type Pipeline struct {
	logger   *slog.Logger
	exporter *export.Service
}

func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, exporter: export.NewService(logger)}
}

// Run converts the workbook at workbookPath and writes the export document
// to outputPath. Missing sheets silently yield empty categories.
func (p *Pipeline) Run(workbookPath, outputPath string) (*entity.Document, error) {
	batchID := uuid.NewString()
	logger := p.logger.With("batch_id", batchID)
	logger.Info("starting import", "workbook", workbookPath)

	wb, err := sheet.Open(workbookPath, logger)
	if err != nil {
		return nil, err
	}
	defer func() { _ = wb.Close() }()

	var ds entity.DataSet

	s, ok, err := wb.Sheet(constants.SheetAnimals)
	if err != nil {
		return nil, err
	}
	if ok {
		ds.Animals = importer.ImportAnimals(s, logger)
	}
	res := importer.NewAnimalResolver(ds.Animals)

	if s, ok, err = wb.Sheet(constants.SheetRawAnimals); err != nil {
		return nil, err
	} else if ok {
		ds.RawAnimals = importer.ImportRawAnimals(s, logger)
	}

	if s, ok, err = wb.Sheet(constants.SheetMilk); err != nil {
		return nil, err
	} else if ok {
		ds.Milk = importer.ImportMilk(s, res, logger)
	}

	if s, ok, err = wb.Sheet(constants.SheetMedications); err != nil {
		return nil, err
	} else if ok {
		ds.Medications, ds.HealthEvents, ds.Boosters = importer.ImportMedications(s, res, logger)
	}

	if s, ok, err = wb.Sheet(constants.SheetRepro); err != nil {
		return nil, err
	} else if ok {
		ds.Repro = importer.ImportRepro(s, res, logger)
	}

	if s, ok, err = wb.Sheet(constants.SheetCheeseSales); err != nil {
		return nil, err
	} else if ok {
		if ds.CheeseSales, err = importer.ImportCheeseSales(s, logger); err != nil {
			return nil, err
		}
	}

	if s, ok, err = wb.Sheet(constants.SheetMilkPurchases); err != nil {
		return nil, err
	} else if ok {
		if ds.MilkPurchases, err = importer.ImportMilkPurchases(s, logger); err != nil {
			return nil, err
		}
	}

	if s, ok, err = wb.Sheet(constants.SheetMilkTransport); err != nil {
		return nil, err
	} else if ok {
		if ds.MilkTransport, err = importer.ImportMilkTransport(s, logger); err != nil {
			return nil, err
		}
	}

	if s, ok, err = wb.Sheet(constants.SheetFixedCosts); err != nil {
		return nil, err
	} else if ok {
		if ds.FixedCosts, err = importer.ImportFixedCosts(s, logger); err != nil {
			return nil, err
		}
	}

	doc := p.exporter.Assemble(ds, batchID, time.Now())
	if err := p.exporter.Write(doc, outputPath); err != nil {
		return nil, err
	}

	logger.Info("import complete", "output", outputPath, "counts", doc.Data.Counts())
	return doc, nil
}
