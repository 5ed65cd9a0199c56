package billing

// Constituent is one product inside a deal bundle.
type Constituent struct {
	Quantity      int
	UnitListPrice int64
}

// ProratedShare is the price a constituent carries after the bundle
// discount has been spread across it.
type ProratedShare struct {
	OriginalSubtotal   int64 `json:"original_subtotal"`
	DiscountedSubtotal int64 `json:"discounted_subtotal"`
}

// DealRatio returns dealPrice/originalPrice, the discount ratio every
// constituent absorbs. A zero or negative original price clamps the
// ratio to 1 (no discount) instead of dividing by zero.
func DealRatio(originalPrice, dealPrice int64) float64 {
	if originalPrice <= 0 {
		return 1
	}
	return float64(dealPrice) / float64(originalPrice)
}

// Prorate distributes a bundle's discounted total proportionally across
// its constituents. Each share rounds independently, so the sum of
// discounted subtotals can drift from dealPrice by up to one rupee per
// item. The drift is deliberate and is not reconciled here.
func Prorate(originalPrice, dealPrice int64, items []Constituent) []ProratedShare {
	ratio := DealRatio(originalPrice, dealPrice)

	shares := make([]ProratedShare, len(items))
	for i, item := range items {
		original := item.UnitListPrice * int64(item.Quantity)
		shares[i] = ProratedShare{
			OriginalSubtotal:   original,
			DiscountedSubtotal: Round(float64(original) * ratio),
		}
	}
	return shares
}
