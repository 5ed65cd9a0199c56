package billing

import "math"

// TaxConfig is the slice of the bill settings the calculator needs.
type TaxConfig struct {
	Enabled     bool
	RatePercent float64
	Inclusive   bool
}

// Totals is the output of a bill computation. All amounts are whole rupees.
type Totals struct {
	TaxAmount  int64 `json:"tax_amount"`
	GrandTotal int64 `json:"grand_total"`
}

// Round rounds a currency amount to the nearest whole rupee.
// Fractional paisa are never stored or displayed.
func Round(v float64) int64 {
	return int64(math.Round(v))
}

// ComputeTotals derives the tax amount and grand total for a bill.
//
// subtotal is the sum of line item extended prices, discount is a flat
// POS discount, shipping is the web order delivery fee. With inclusive
// tax the displayed prices already contain tax, so it is back-calculated
// for display and never added to the total. Rates outside [0,100] are
// computed as-is; clamping is the settings form's job, not ours.
func ComputeTotals(subtotal, discount, shipping int64, tax TaxConfig) Totals {
	base := subtotal - discount

	if !tax.Enabled {
		return Totals{TaxAmount: 0, GrandTotal: base + shipping}
	}

	if tax.Inclusive {
		included := Round(float64(base) - float64(base)/(1+tax.RatePercent/100))
		return Totals{TaxAmount: included, GrandTotal: base + shipping}
	}

	added := Round(float64(base) * tax.RatePercent / 100)
	return Totals{TaxAmount: added, GrandTotal: base + added + shipping}
}
