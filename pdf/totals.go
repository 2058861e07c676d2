package pdf

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount is a document-level discount: a flat Amount, or a Percent of the
// subtotal when Amount is zero.
type Discount struct {
	Amount  float64
	Percent float64
}

// Totals are derived from line items at render time.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxRate        float64
	TaxAmount      float64
	GrandTotal     float64
}

// HasDiscount reports whether a discount line applies.
func (t Totals) HasDiscount() bool { return t.DiscountAmount > 0 }

// ComputeTotals sums the line totals, applies the discount (capped at the
// subtotal) and taxes the discounted base.
func ComputeTotals(items []LineItem, d Discount, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.normalized().lineTotal())
	}

	discount := decimal.Zero
	switch {
	case finitePositive(d.Amount):
		discount = decimal.NewFromFloat(d.Amount)
	case finitePositive(d.Percent):
		discount = subtotal.Mul(decimal.NewFromFloat(clampPercent(d.Percent))).Div(hundred)
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	if !finitePositive(taxRate) {
		taxRate = 0
	}
	base := subtotal.Sub(discount)
	tax := base.Mul(decimal.NewFromFloat(taxRate))
	grand := base.Add(tax)

	return Totals{
		Subtotal:       subtotal.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		TaxRate:        taxRate,
		TaxAmount:      tax.InexactFloat64(),
		GrandTotal:     grand.InexactFloat64(),
	}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
