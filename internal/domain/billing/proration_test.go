package billing

import "testing"

func TestProrateSpreadsDiscountRatio(t *testing.T) {
	// Deal: 5500 list, sold at 5000 (ratio ~0.909).
	shares := Prorate(5500, 5000, []Constituent{
		{Quantity: 1, UnitListPrice: 3000},
		{Quantity: 1, UnitListPrice: 2500},
	})

	if shares[0].OriginalSubtotal != 3000 {
		t.Fatalf("expected original subtotal 3000, got %d", shares[0].OriginalSubtotal)
	}
	if shares[0].DiscountedSubtotal != 2727 {
		t.Fatalf("expected discounted subtotal 2727, got %d", shares[0].DiscountedSubtotal)
	}
	if shares[1].DiscountedSubtotal != 2273 {
		t.Fatalf("expected discounted subtotal 2273, got %d", shares[1].DiscountedSubtotal)
	}
}

func TestProrateQuantityMultiplies(t *testing.T) {
	shares := Prorate(2000, 1500, []Constituent{{Quantity: 4, UnitListPrice: 500}})
	if shares[0].OriginalSubtotal != 2000 {
		t.Fatalf("expected original subtotal 2000, got %d", shares[0].OriginalSubtotal)
	}
	if shares[0].DiscountedSubtotal != 1500 {
		t.Fatalf("expected discounted subtotal 1500, got %d", shares[0].DiscountedSubtotal)
	}
}

func TestProrateZeroOriginalPriceClampsToNoDiscount(t *testing.T) {
	shares := Prorate(0, 500, []Constituent{{Quantity: 2, UnitListPrice: 750}})
	if shares[0].DiscountedSubtotal != 1500 {
		t.Fatalf("zero original price must pass items through undiscounted, got %d", shares[0].DiscountedSubtotal)
	}
}

func TestProrateNegativeOriginalPriceClampsToNoDiscount(t *testing.T) {
	if r := DealRatio(-100, 50); r != 1 {
		t.Fatalf("expected ratio clamp to 1, got %v", r)
	}
}

func TestProrateDriftStaysWithinItemCount(t *testing.T) {
	// Per-item rounding drift against the advertised deal price is
	// bounded by one rupee per constituent.
	items := []Constituent{
		{Quantity: 1, UnitListPrice: 333},
		{Quantity: 2, UnitListPrice: 777},
		{Quantity: 3, UnitListPrice: 199},
		{Quantity: 1, UnitListPrice: 1249},
	}
	var original int64
	for _, it := range items {
		original += it.UnitListPrice * int64(it.Quantity)
	}
	dealPrice := original - 500

	shares := Prorate(original, dealPrice, items)
	var sum int64
	for _, s := range shares {
		sum += s.DiscountedSubtotal
	}

	drift := sum - dealPrice
	if drift < 0 {
		drift = -drift
	}
	if drift > int64(len(items)) {
		t.Fatalf("drift %d exceeds item count %d", drift, len(items))
	}
}

func TestProrateEmptyBundle(t *testing.T) {
	shares := Prorate(1000, 800, nil)
	if len(shares) != 0 {
		t.Fatalf("expected no shares, got %d", len(shares))
	}
}
