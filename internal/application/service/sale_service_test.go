package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/infrastructure/cache"
)

type saleFixture struct {
	svc       *SaleService
	products  *stubProductRepo
	customers *stubCustomerRepo
	udhars    *stubUdharRepo
	sales     *stubSaleRepo
	settings  *stubSettingsRepo
}

func newSaleFixture() *saleFixture {
	products := newStubProductRepo()
	customers := newStubCustomerRepo()
	udhars := newStubUdharRepo()
	sales := newStubSaleRepo()
	sales.udhars = udhars
	deals := newStubDealRepo()
	settingsRepo := &stubSettingsRepo{settings: entity.DefaultBillSettings()}

	settingsSvc := NewSettingsService(settingsRepo, cache.NewNoopSettingsCache())
	dealSvc := NewDealService(deals, products)

	return &saleFixture{
		svc:       NewSaleService(sales, products, customers, settingsSvc, dealSvc),
		products:  products,
		customers: customers,
		udhars:    udhars,
		sales:     sales,
		settings:  settingsRepo,
	}
}

func TestCreateSaleCashComputesChange(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true})

	sale, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 2}},
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 3500,
	})
	if err != nil {
		t.Fatalf("CreateSale failed: %v", err)
	}
	if sale.Total != 3000 {
		t.Fatalf("expected total 3000, got %d", sale.Total)
	}
	if sale.ChangeDue != 500 {
		t.Fatalf("expected change 500, got %d", sale.ChangeDue)
	}
	if sale.ReceiptNo == "" {
		t.Fatal("expected a generated receipt number")
	}
	if f.products.products[scrub.ID].Quantity != 8 {
		t.Fatalf("expected stock 8 after sale, got %d", f.products.products[scrub.ID].Quantity)
	}
}

func TestCreateSaleCashRejectsShortPayment(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true})

	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 2}},
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 2000,
	})
	if err == nil {
		t.Fatal("expected error for cash below the total")
	}
	// Stock was restored after the rejected payment.
	if f.products.products[scrub.ID].Quantity != 10 {
		t.Fatalf("expected stock restored to 10, got %d", f.products.products[scrub.ID].Quantity)
	}
}

func TestCreateSaleRejectsInsufficientStock(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 1, Active: true})

	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 5}},
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 10000,
	})
	if err == nil {
		t.Fatal("expected error for insufficient stock")
	}
	if f.products.products[scrub.ID].Quantity != 1 {
		t.Fatalf("stock must be untouched, got %d", f.products.products[scrub.ID].Quantity)
	}
}

func TestCreateSaleRejectsUnknownVariant(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{
		Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true,
		Sizes: entity.StringList{"S", "M", "L"},
	})

	size := "XXL"
	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 1, Size: &size}},
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 2000,
	})
	if err == nil {
		t.Fatal("expected error for an unlisted size")
	}
}

func TestCreateSaleUdharOpensLedger(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true})
	customer := f.customers.add(&entity.Customer{Name: "Dr. Saeed"})
	due := time.Now().Add(14 * 24 * time.Hour)

	sale, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID:     &customer.ID,
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 2}},
		PaymentMethod:  enum.PaymentMethodUdhar,
		AmountReceived: 1000,
		UdharDueDate:   &due,
	})
	if err != nil {
		t.Fatalf("CreateSale failed: %v", err)
	}

	var ledger *entity.UdharTransaction
	for _, u := range f.udhars.udhars {
		ledger = u
	}
	if ledger == nil {
		t.Fatal("expected a ledger entry for the udhar sale")
	}
	if ledger.SaleID == nil || *ledger.SaleID != sale.ID {
		t.Fatal("ledger must reference the sale")
	}
	if ledger.Total != 3000 || ledger.Paid != 1000 {
		t.Fatalf("expected ledger 3000 total / 1000 paid, got %d / %d", ledger.Total, ledger.Paid)
	}
	if ledger.Status != enum.UdharStatusPartial {
		t.Fatalf("expected PARTIAL ledger status, got %v", ledger.Status)
	}

	// The upfront 1000 must exist as a payment record, not just a counter
	payments := f.udhars.payments[ledger.ID]
	var sum int64
	for _, p := range payments {
		sum += p.Amount
	}
	if sum != ledger.Paid {
		t.Fatalf("payments sum %d must equal paid %d", sum, ledger.Paid)
	}
	if len(payments) != 1 || payments[0].Method != enum.PaymentMethodCash {
		t.Fatalf("expected one cash payment record, got %+v", payments)
	}
}

func TestCreateSaleUdharFailureRestoresStock(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true})
	customer := f.customers.add(&entity.Customer{Name: "Dr. Saeed"})
	due := time.Now().Add(14 * 24 * time.Hour)
	f.sales.failCreate = errors.New("connection reset")

	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID:     &customer.ID,
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 2}},
		PaymentMethod:  enum.PaymentMethodUdhar,
		AmountReceived: 1000,
		UdharDueDate:   &due,
	})
	if err == nil {
		t.Fatal("expected an error when the sale cannot be persisted")
	}
	if len(f.sales.sales) != 0 {
		t.Fatal("no sale row may survive a failed create")
	}
	if len(f.udhars.udhars) != 0 {
		t.Fatal("no ledger may survive a failed create")
	}
	if f.products.products[scrub.ID].Quantity != 10 {
		t.Fatalf("expected stock restored to 10, got %d", f.products.products[scrub.ID].Quantity)
	}
}

func TestCreateSaleUdharMustLeaveBalance(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true})
	customer := f.customers.add(&entity.Customer{Name: "Dr. Saeed"})
	due := time.Now().Add(14 * 24 * time.Hour)

	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID:     &customer.ID,
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 1}},
		PaymentMethod:  enum.PaymentMethodUdhar,
		AmountReceived: 1500,
		UdharDueDate:   &due,
	})
	if err == nil {
		t.Fatal("expected error for a fully paid udhar sale")
	}
}

func TestCreateSaleUdharRequiresCustomer(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true})
	due := time.Now().Add(14 * 24 * time.Hour)

	_, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: scrub.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentMethodUdhar,
		UdharDueDate:  &due,
	})
	if err == nil {
		t.Fatal("expected error for an udhar sale without a customer")
	}
}

func TestCreateSaleAppliesExclusiveTax(t *testing.T) {
	f := newSaleFixture()
	f.settings.settings.TaxEnabled = true
	f.settings.settings.TaxRate = 17
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1000, Quantity: 10, Active: true})

	sale, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		Items:          []SaleItemInput{{ProductID: scrub.ID, Quantity: 1}},
		PaymentMethod:  enum.PaymentMethodCard,
	})
	if err != nil {
		t.Fatalf("CreateSale failed: %v", err)
	}
	if sale.TaxAmount != 170 {
		t.Fatalf("expected tax 170, got %d", sale.TaxAmount)
	}
	if sale.Total != 1170 {
		t.Fatalf("expected total 1170, got %d", sale.Total)
	}
	// Card payments are recorded as exact.
	if sale.AmountReceived != 1170 {
		t.Fatalf("expected received 1170, got %d", sale.AmountReceived)
	}
}

func TestCreateSaleExpandsDeal(t *testing.T) {
	f := newSaleFixture()
	scrub := f.products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 10, Active: true})
	coat := f.products.add(&entity.Product{Name: "Lab Coat", Price: 2500, Quantity: 10, Active: true})

	dealSvc := f.svc.deals
	deal, err := dealSvc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Ward Kit",
		DealPrice: 3600,
		Items: []DealItemInput{
			{ProductID: scrub.ID, Quantity: 1},
			{ProductID: coat.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}

	sale, err := f.svc.CreateSale(context.Background(), &CreateSaleInput{
		DealIDs:        []uuid.UUID{deal.ID},
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 3600,
	})
	if err != nil {
		t.Fatalf("CreateSale failed: %v", err)
	}
	if sale.Total != 3600 {
		t.Fatalf("expected total 3600, got %d", sale.Total)
	}
	items := sale.Items
	if len(items) != 2 {
		t.Fatalf("expected 2 expanded lines, got %d", len(items))
	}
	if items[0].BundleID == nil || items[1].BundleID == nil || *items[0].BundleID != *items[1].BundleID {
		t.Fatal("expanded lines must share a bundle ID")
	}
	if f.products.products[scrub.ID].Quantity != 9 || f.products.products[coat.ID].Quantity != 9 {
		t.Fatal("deal constituents must decrement stock")
	}
}
