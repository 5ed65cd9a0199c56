package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/infrastructure/cache"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/printer"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/renderer"
)

type receiptFixture struct {
	svc      *ReceiptService
	sales    *stubSaleRepo
	orders   *stubOrderRepo
	settings *stubSettingsRepo
}

func newReceiptFixture(t *testing.T) *receiptFixture {
	t.Helper()
	sales := newStubSaleRepo()
	orders := newStubOrderRepo()
	settingsRepo := &stubSettingsRepo{settings: entity.DefaultBillSettings()}
	settingsSvc := NewSettingsService(settingsRepo, cache.NewNoopSettingsCache())

	r, err := renderer.New()
	if err != nil {
		t.Fatalf("renderer.New failed: %v", err)
	}

	return &receiptFixture{
		svc:      NewReceiptService(sales, orders, settingsSvc, r, printer.NewNullPrinter(), "none"),
		sales:    sales,
		orders:   orders,
		settings: settingsRepo,
	}
}

func seedSale(f *receiptFixture) *entity.Sale {
	sale := &entity.Sale{
		ReceiptNo:      "POS-TEST01",
		SubTotal:       3000,
		Discount:       200,
		TaxAmount:      476,
		Total:          2800,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 3000,
		ChangeDue:      200,
		SaleDate:       time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC),
		User:           entity.User{Name: "Asad"},
		Items: []entity.SaleItem{
			{Name: "Scrub Top", Quantity: 2, UnitPrice: 1500, Total: 3000},
		},
	}
	_ = f.sales.Create(context.Background(), sale, nil, nil)
	return sale
}

func TestBuildSaleReceiptAppliesToggles(t *testing.T) {
	f := newReceiptFixture(t)
	f.settings.settings.StoreAddress = "Shop 12, Saddar, Karachi"
	f.settings.settings.ShowAddress = false
	f.settings.settings.ShowBarcode = true
	sale := seedSale(f)

	receipt, err := f.svc.BuildSaleReceipt(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("BuildSaleReceipt failed: %v", err)
	}
	if receipt.Header.StoreName != "Doctor Planet" {
		t.Fatalf("expected store name on receipt, got %q", receipt.Header.StoreName)
	}
	if receipt.Header.Address != "" {
		t.Fatal("address must be absent when the toggle is off")
	}
	if receipt.Barcode != sale.ReceiptNo {
		t.Fatalf("expected barcode %q, got %q", sale.ReceiptNo, receipt.Barcode)
	}
	if receipt.Cashier != "Asad" {
		t.Fatalf("expected cashier Asad, got %q", receipt.Cashier)
	}
	if receipt.CashReceived != 3000 || receipt.ChangeDue != 200 {
		t.Fatalf("expected cash 3000 / change 200, got %d / %d", receipt.CashReceived, receipt.ChangeDue)
	}
	if receipt.PoweredBy == "" {
		t.Fatal("powered-by line must always be present")
	}
}

func TestBuildSaleReceiptHidesTaxLineWhenDisabled(t *testing.T) {
	f := newReceiptFixture(t)
	f.settings.settings.TaxEnabled = false
	sale := seedSale(f)

	receipt, err := f.svc.BuildSaleReceipt(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("BuildSaleReceipt failed: %v", err)
	}
	if receipt.ShowTaxLine {
		t.Fatal("tax line must be hidden when tax is disabled")
	}
	if receipt.TaxName != "" {
		t.Fatalf("tax name must be absent when tax is disabled, got %q", receipt.TaxName)
	}
}

func TestBuildSaleReceiptFailsWithoutSettings(t *testing.T) {
	f := newReceiptFixture(t)
	sale := seedSale(f)
	f.settings.fail = errors.New("connection refused")

	_, err := f.svc.BuildSaleReceipt(context.Background(), sale.ID)
	if err != apperror.ErrSettingsUnavailable {
		t.Fatalf("expected ErrSettingsUnavailable, got %v", err)
	}
}

func TestBuildOrderReceiptMarksOnlineOrder(t *testing.T) {
	f := newReceiptFixture(t)
	f.settings.settings.ShowBarcode = true
	order := &entity.Order{
		OrderNo:     "DP-WEB001",
		ContactName: "Hina Qureshi",
		SubTotal:    2500,
		ShippingFee: 250,
		Total:       2750,
		OrderDate:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{Name: "Lab Coat", Quantity: 1, UnitPrice: 2500, Total: 2500},
		},
	}
	_ = f.orders.Create(context.Background(), order)

	receipt, err := f.svc.BuildOrderReceipt(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("BuildOrderReceipt failed: %v", err)
	}
	if !receipt.OnlineOrder {
		t.Fatal("order receipt must be marked as an online order")
	}
	if receipt.Customer != "Hina Qureshi" {
		t.Fatalf("expected contact name on receipt, got %q", receipt.Customer)
	}
	if receipt.ShippingFee != 250 {
		t.Fatalf("expected shipping fee 250, got %d", receipt.ShippingFee)
	}
	if receipt.Barcode != "DP-WEB001" {
		t.Fatalf("expected order number barcode, got %q", receipt.Barcode)
	}
}

func TestPrintReceiptRejectsA4(t *testing.T) {
	f := newReceiptFixture(t)
	sale := seedSale(f)

	receipt, err := f.svc.BuildSaleReceipt(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("BuildSaleReceipt failed: %v", err)
	}
	receipt.PaperWidth = enum.PaperWidthA4

	if err := f.svc.PrintReceipt(receipt); err == nil {
		t.Fatal("expected error printing an A4 bill to the thermal printer")
	}
}

func TestFormatReceiptEmitsEscposDocument(t *testing.T) {
	f := newReceiptFixture(t)
	f.settings.settings.ShowBarcode = true
	sale := seedSale(f)

	receipt, err := f.svc.BuildSaleReceipt(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("BuildSaleReceipt failed: %v", err)
	}

	data := FormatReceipt(receipt)
	if !bytes.Contains(data, []byte("Doctor Planet")) {
		t.Fatal("formatted receipt must contain the store name")
	}
	if !bytes.Contains(data, []byte("Scrub Top")) {
		t.Fatal("formatted receipt must contain the line item")
	}
	if !bytes.Contains(data, []byte(poweredByLine)) {
		t.Fatal("formatted receipt must contain the powered-by line")
	}
	// ESC @ initialize must lead the byte stream.
	if len(data) < 2 || data[0] != 0x1B || data[1] != '@' {
		t.Fatal("formatted receipt must start with the ESC/POS init sequence")
	}
}

func TestFormatReceiptTotalsOrderMatchesHTML(t *testing.T) {
	f := newReceiptFixture(t)
	f.settings.settings.TaxEnabled = true
	order := &entity.Order{
		OrderNo:     "DP-WEB002",
		ContactName: "Hina Qureshi",
		SubTotal:    2500,
		ShippingFee: 250,
		TaxAmount:   425,
		Total:       3175,
		OrderDate:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{Name: "Lab Coat", Quantity: 1, UnitPrice: 2500, Total: 2500},
		},
	}
	_ = f.orders.Create(context.Background(), order)

	receipt, err := f.svc.BuildOrderReceipt(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("BuildOrderReceipt failed: %v", err)
	}
	if !receipt.ShowTaxLine {
		t.Fatal("tax line must be shown when tax is enabled with breakdown")
	}

	// Both renderings list tax before shipping
	data := FormatReceipt(receipt)
	taxAt := bytes.Index(data, []byte(receipt.TaxName+":"))
	shippingAt := bytes.Index(data, []byte("Shipping:"))
	if taxAt < 0 || shippingAt < 0 {
		t.Fatalf("expected tax and shipping lines on the thermal receipt (tax %d, shipping %d)", taxAt, shippingAt)
	}
	if taxAt > shippingAt {
		t.Fatal("thermal receipt must list tax before shipping")
	}

	html, err := f.svc.RenderHTML(receipt)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	htmlTaxAt := strings.Index(html, receipt.TaxName)
	htmlShippingAt := strings.Index(html, "Shipping")
	if htmlTaxAt < 0 || htmlShippingAt < 0 {
		t.Fatalf("expected tax and shipping lines in the HTML bill (tax %d, shipping %d)", htmlTaxAt, htmlShippingAt)
	}
	if htmlTaxAt > htmlShippingAt {
		t.Fatal("HTML bill must list tax before shipping")
	}
}

func TestRenderHTMLContainsReceiptContent(t *testing.T) {
	f := newReceiptFixture(t)
	sale := seedSale(f)

	receipt, err := f.svc.BuildSaleReceipt(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("BuildSaleReceipt failed: %v", err)
	}

	html, err := f.svc.RenderHTML(receipt)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if !strings.Contains(html, "Doctor Planet") {
		t.Fatal("rendered HTML must contain the store name")
	}
	if !strings.Contains(html, "Scrub Top") {
		t.Fatal("rendered HTML must contain the line item")
	}
}
