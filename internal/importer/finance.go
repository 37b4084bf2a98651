package importer

import (
	"fmt"
	"log/slog"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/common"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/normalize"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/sheet"
)

// Finance ledgers count every non-blank row against their id sequence, even
// rows dropped afterwards, and expect their figures well-formed: a
// non-numeric amount aborts the whole run instead of coercing to zero.

// ImportCheeseSales reads the cheese-sales ledger. Rows without a parseable
// date are dropped.
func ImportCheeseSales(s *sheet.Sheet, logger *slog.Logger) ([]entity.CheeseSale, error) {
	var out []entity.CheeseSale
	n := 0
	for _, row := range s.Rows() {
		if row.Blank() {
			continue
		}
		n++
		date := s.Field(row, "fecha").DateValue()
		if date == "" {
			continue
		}
		lbs, err := financeNumber(s, row, "libras")
		if err != nil {
			return nil, err
		}
		price, err := financeNumber(s, row, "precio (cop)", "precio")
		if err != nil {
			return nil, err
		}
		total, err := financeTotal(s, row, lbs*price, "total (cop)", "total")
		if err != nil {
			return nil, err
		}
		out = append(out, entity.CheeseSale{
			ID:     importID(constants.PrefixCheeseSale, n),
			Date:   date,
			Client: s.Field(row, "cliente").Value(),
			Pounds: lbs,
			Price:  price,
			Total:  total,
			Audit:  importAudit(),
		})
	}
	logger.Debug("cheese sales imported", "sheet", s.Name, "count", len(out))
	return out, nil
}

// ImportMilkPurchases reads the milk-purchases ledger, keyed by free-text
// period.
func ImportMilkPurchases(s *sheet.Sheet, logger *slog.Logger) ([]entity.MilkPurchase, error) {
	var out []entity.MilkPurchase
	n := 0
	for _, row := range s.Rows() {
		if row.Blank() {
			continue
		}
		n++
		period := s.Field(row, "periodo").Value()
		litersCell := s.Field(row, "litros")
		if period == "" && !litersCell.Present() {
			continue
		}
		liters, err := financeNumber(s, row, "litros")
		if err != nil {
			return nil, err
		}
		vl, err := financeNumber(s, row, "valor/litro (cop)", "valor/litro")
		if err != nil {
			return nil, err
		}
		total, err := financeTotal(s, row, liters*vl, "total (cop)", "total")
		if err != nil {
			return nil, err
		}
		out = append(out, entity.MilkPurchase{
			ID:            importID(constants.PrefixMilkPurchase, n),
			Period:        period,
			Liters:        liters,
			ValuePerLiter: vl,
			Total:         total,
			Audit:         importAudit(),
		})
	}
	logger.Debug("milk purchases imported", "sheet", s.Name, "count", len(out))
	return out, nil
}

// ImportMilkTransport reads the milk-transport ledger.
func ImportMilkTransport(s *sheet.Sheet, logger *slog.Logger) ([]entity.MilkTransport, error) {
	var out []entity.MilkTransport
	n := 0
	for _, row := range s.Rows() {
		if row.Blank() {
			continue
		}
		n++
		period := s.Field(row, "periodo").Value()
		valueCell := s.Field(row, "valor transporte (cop)", "valor transporte")
		if period == "" && !valueCell.Present() {
			continue
		}
		value, err := financeNumber(s, row, "valor transporte (cop)", "valor transporte")
		if err != nil {
			return nil, err
		}
		qty, err := financeNumber(s, row, "cantidad")
		if err != nil {
			return nil, err
		}
		total, err := financeTotal(s, row, value*qty, "total (cop)", "total")
		if err != nil {
			return nil, err
		}
		out = append(out, entity.MilkTransport{
			ID:       importID(constants.PrefixMilkTransport, n),
			Period:   period,
			Value:    value,
			Quantity: qty,
			Total:    total,
			Audit:    importAudit(),
		})
	}
	logger.Debug("milk transport imported", "sheet", s.Name, "count", len(out))
	return out, nil
}

// ImportFixedCosts reads the monthly fixed-costs ledger.
func ImportFixedCosts(s *sheet.Sheet, logger *slog.Logger) ([]entity.FixedCost, error) {
	var out []entity.FixedCost
	n := 0
	for _, row := range s.Rows() {
		if row.Blank() {
			continue
		}
		n++
		concept := s.Field(row, "concepto").Value()
		valueCell := s.Field(row, "valor mensual (cop)", "valor mensual")
		if concept == "" && !valueCell.Present() {
			continue
		}
		value, err := financeNumber(s, row, "valor mensual (cop)", "valor mensual")
		if err != nil {
			return nil, err
		}
		out = append(out, entity.FixedCost{
			ID:      importID(constants.PrefixFixedCost, n),
			Concept: concept,
			Value:   value,
			Audit:   importAudit(),
		})
	}
	logger.Debug("fixed costs imported", "sheet", s.Name, "count", len(out))
	return out, nil
}

// financeNumber parses a ledger amount. Blank reads as zero.
func financeNumber(s *sheet.Sheet, row sheet.Row, names ...string) (float64, error) {
	c := s.Field(row, names...)
	if !c.Present() {
		return 0, nil
	}
	f, err := normalize.StrictFloat(c.NumberText())
	if err != nil {
		return 0, common.NewAppError("BAD_NUMBER",
			fmt.Sprintf("sheet %s, column %q: %v", s.Name, names[0], err), common.ErrBadNumber)
	}
	return f, nil
}

// financeTotal keeps the sheet's own total when present, even if it
// disagrees with the computed product; a blank total falls back to product.
func financeTotal(s *sheet.Sheet, row sheet.Row, product float64, names ...string) (float64, error) {
	c := s.Field(row, names...)
	if !c.Present() {
		return product, nil
	}
	f, err := normalize.StrictFloat(c.NumberText())
	if err != nil {
		return 0, common.NewAppError("BAD_NUMBER",
			fmt.Sprintf("sheet %s, column %q: %v", s.Name, names[0], err), common.ErrBadNumber)
	}
	return f, nil
}
