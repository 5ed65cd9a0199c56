package billing

import "testing"

func TestComputeTotalsTaxDisabled(t *testing.T) {
	got := ComputeTotals(1000, 0, 0, TaxConfig{})
	if got.TaxAmount != 0 {
		t.Fatalf("expected zero tax, got %d", got.TaxAmount)
	}
	if got.GrandTotal != 1000 {
		t.Fatalf("expected total 1000, got %d", got.GrandTotal)
	}
}

func TestComputeTotalsTaxDisabledWithDiscountAndShipping(t *testing.T) {
	got := ComputeTotals(5000, 500, 200, TaxConfig{})
	if got.GrandTotal != 4700 {
		t.Fatalf("expected total 4700, got %d", got.GrandTotal)
	}
}

func TestComputeTotalsExclusiveTax(t *testing.T) {
	got := ComputeTotals(5000, 500, 0, TaxConfig{Enabled: true, RatePercent: 17})
	if got.TaxAmount != 765 {
		t.Fatalf("expected tax 765, got %d", got.TaxAmount)
	}
	if got.GrandTotal != 5265 {
		t.Fatalf("expected total 5265, got %d", got.GrandTotal)
	}
}

func TestComputeTotalsInclusiveTax(t *testing.T) {
	got := ComputeTotals(1000, 0, 0, TaxConfig{Enabled: true, RatePercent: 17, Inclusive: true})
	if got.TaxAmount != 145 {
		t.Fatalf("expected tax 145, got %d", got.TaxAmount)
	}
	if got.GrandTotal != 1000 {
		t.Fatalf("inclusive tax must not change the total, got %d", got.GrandTotal)
	}
}

func TestComputeTotalsInclusiveTaxWithShipping(t *testing.T) {
	got := ComputeTotals(1000, 0, 150, TaxConfig{Enabled: true, RatePercent: 17, Inclusive: true})
	if got.GrandTotal != 1150 {
		t.Fatalf("expected total 1150, got %d", got.GrandTotal)
	}
}

func TestComputeTotalsZeroRate(t *testing.T) {
	got := ComputeTotals(2500, 0, 0, TaxConfig{Enabled: true, RatePercent: 0})
	if got.TaxAmount != 0 || got.GrandTotal != 2500 {
		t.Fatalf("zero rate should be a no-op, got tax=%d total=%d", got.TaxAmount, got.GrandTotal)
	}
}

func TestComputeTotalsOutOfRangeRate(t *testing.T) {
	// Rates outside [0,100] are computed via the same formula, never rejected.
	got := ComputeTotals(1000, 0, 0, TaxConfig{Enabled: true, RatePercent: 150})
	if got.TaxAmount != 1500 {
		t.Fatalf("expected tax 1500 at 150%%, got %d", got.TaxAmount)
	}
	if got.GrandTotal != 2500 {
		t.Fatalf("expected total 2500, got %d", got.GrandTotal)
	}
}

func TestComputeTotalsExclusiveProperty(t *testing.T) {
	cases := []struct {
		subtotal, discount, shipping int64
		rate                         float64
	}{
		{1000, 0, 0, 17},
		{5000, 500, 0, 17},
		{9999, 999, 150, 5},
		{100, 100, 0, 16},
		{75300, 5000, 250, 12.5},
	}
	for _, c := range cases {
		got := ComputeTotals(c.subtotal, c.discount, c.shipping, TaxConfig{Enabled: true, RatePercent: c.rate})
		base := c.subtotal - c.discount
		wantTax := Round(float64(base) * c.rate / 100)
		wantTotal := base + wantTax + c.shipping
		if got.TaxAmount != wantTax || got.GrandTotal != wantTotal {
			t.Fatalf("S=%d D=%d F=%d R=%v: got tax=%d total=%d, want tax=%d total=%d",
				c.subtotal, c.discount, c.shipping, c.rate, got.TaxAmount, got.GrandTotal, wantTax, wantTotal)
		}
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	cfg := TaxConfig{Enabled: true, RatePercent: 17, Inclusive: true}
	first := ComputeTotals(4321, 321, 100, cfg)
	second := ComputeTotals(4321, 321, 100, cfg)
	if first != second {
		t.Fatalf("recomputing the same inputs must yield the same totals: %+v vs %+v", first, second)
	}
}
