package renderer

import (
	"strings"
	"testing"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "Doctor Planet",
			Address:   "Shop 12, Medical Market, Lahore",
			Phone:     "+92 300 1234567",
		},
		ReceiptNo: "POS-4F2A91C3",
		Date:      "2026-03-15 14:32",
		Cashier:   "Bilal",
		Payment:   "Cash",
		Items: []entity.ReceiptItem{
			{Name: "Scrub Top V-Neck", Quantity: 2, UnitPrice: 1200, Total: 2400, Size: "M", Color: "Teal"},
			{Name: "Lab Coat", Quantity: 1, UnitPrice: 2500, Total: 2500},
		},
		SubTotal:     4900,
		Discount:     400,
		TaxName:      "GST",
		TaxAmount:    765,
		ShowTaxLine:  true,
		GrandTotal:   5265,
		CashReceived: 6000,
		ChangeDue:    735,
		FooterText:   "Thank you for shopping with us!",
		PoweredBy:    "Powered by Doctor Planet POS",
		PaperWidth:   enum.PaperWidth80mm,
		FontSize:     enum.FontSizeNormal,
	}
}

func TestRenderContainsAllBlocks(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	html, err := r.Render(sampleReceipt())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"Doctor Planet",
		"POS-4F2A91C3",
		"Cashier: Bilal",
		"2x Scrub Top V-Neck",
		"Size: M",
		"Color: Teal",
		"Rs 2,400",
		"Discount",
		"GST",
		"Rs 765",
		"Rs 5,265",
		"Change",
		"Powered by Doctor Planet POS",
		"width:80mm",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered receipt missing %q:\n%s", want, html)
		}
	}
}

func TestRenderOmitsToggledOffBlocks(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	rec := sampleReceipt()
	rec.Header.Address = ""
	rec.Header.Phone = ""
	rec.Discount = 0
	rec.ShowTaxLine = false
	rec.CashReceived = 0

	html, err := r.Render(rec)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, absent := range []string{"Medical Market", "Discount", "GST", "Change"} {
		if strings.Contains(html, absent) {
			t.Fatalf("rendered receipt should not contain %q:\n%s", absent, html)
		}
	}
}

func TestRenderIsByteIdentical(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	rec := sampleReceipt()
	first, err := r.Render(rec)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := r.Render(rec)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if first != second {
		t.Fatalf("rendering the same receipt twice must be byte-identical")
	}
}

func TestRenderOnlineOrderBadge(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	rec := sampleReceipt()
	rec.Cashier = ""
	rec.OnlineOrder = true
	rec.ShippingFee = 150

	html, err := r.Render(rec)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "ONLINE ORDER") {
		t.Fatalf("expected online order badge")
	}
	if !strings.Contains(html, "Shipping") {
		t.Fatalf("expected shipping line")
	}
}

func TestFormatMoney(t *testing.T) {
	cases := map[int64]string{
		0:       "Rs 0",
		999:     "Rs 999",
		1000:    "Rs 1,000",
		5265:    "Rs 5,265",
		1234567: "Rs 1,234,567",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Fatalf("FormatMoney(%d) = %q, want %q", in, got, want)
		}
	}
}
