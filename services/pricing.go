package services

import "github.com/yeremiapane/resto-admin/models"

// DefaultTaxRate is applied when no TAX_PERCENT is configured.
const DefaultTaxRate = 0.1

// Selection is one requested (menu, quantity) pair.
type Selection struct {
	MenuID uint
	Qty    int
}

// PricedLine is a selection priced against the current catalog.
type PricedLine struct {
	MenuID    uint
	Qty       int
	LineTotal float64
}

// PricingEngine computes line totals, aggregates and tax. All arithmetic
// is plain float64 and nothing is ever rounded; totals may carry
// fractional cents.
type PricingEngine struct {
	TaxRate float64
}

func NewPricingEngine(taxRate float64) *PricingEngine {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &PricingEngine{TaxRate: taxRate}
}

// ComputeLineTotals prices every selection against the catalog. If any
// selected menu is missing the whole computation fails, no partial
// result is returned.
func (p *PricingEngine) ComputeLineTotals(selections []Selection, catalog map[uint]models.Menu) ([]PricedLine, error) {
	lines := make([]PricedLine, 0, len(selections))
	for _, sel := range selections {
		menu, ok := catalog[sel.MenuID]
		if !ok {
			return nil, &NotFoundError{Message: "selected menu not found in the database"}
		}
		lines = append(lines, PricedLine{
			MenuID:    sel.MenuID,
			Qty:       sel.Qty,
			LineTotal: float64(menu.Price) * float64(sel.Qty),
		})
	}
	return lines, nil
}

// Aggregate sums quantities and line totals.
func Aggregate(lines []PricedLine) (totalItems int, totalPrice float64) {
	for _, line := range lines {
		totalItems += line.Qty
		totalPrice += line.LineTotal
	}
	return totalItems, totalPrice
}

// ApplyTax returns the price including tax.
func (p *PricingEngine) ApplyTax(totalPrice float64) float64 {
	return totalPrice + totalPrice*p.TaxRate
}
