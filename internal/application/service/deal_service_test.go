package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
)

func newDealServiceForTest() (*DealService, *stubProductRepo, *stubDealRepo) {
	products := newStubProductRepo()
	deals := newStubDealRepo()
	return NewDealService(deals, products), products, deals
}

func TestCreateDealComputesOriginalPrice(t *testing.T) {
	svc, products, _ := newDealServiceForTest()
	scrub := products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 50, Active: true})
	coat := products.add(&entity.Product{Name: "Lab Coat", Price: 2000, Quantity: 20, Active: true})

	deal, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Clinic Starter",
		DealPrice: 4500,
		Items: []DealItemInput{
			{ProductID: scrub.ID, Quantity: 2},
			{ProductID: coat.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}
	if deal.OriginalPrice != 5000 {
		t.Fatalf("expected original price 5000, got %d", deal.OriginalPrice)
	}
	if len(deal.Items) != 2 {
		t.Fatalf("expected 2 constituents, got %d", len(deal.Items))
	}
	for _, item := range deal.Items {
		if item.UnitListPrice == 0 {
			t.Fatalf("constituent %s missing list price snapshot", item.ProductID)
		}
	}
}

func TestUpdateDealRejectedPriceKeepsConstituents(t *testing.T) {
	svc, products, deals := newDealServiceForTest()
	scrub := products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 50, Active: true})
	coat := products.add(&entity.Product{Name: "Lab Coat", Price: 2000, Quantity: 20, Active: true})
	surgicalCap := products.add(&entity.Product{Name: "Surgical Cap", Price: 100, Quantity: 80, Active: true})

	deal, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Clinic Starter",
		DealPrice: 4000,
		Items: []DealItemInput{
			{ProductID: scrub.ID, Quantity: 2},
			{ProductID: coat.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}

	// New constituents sum to 100, far below the kept deal price of 4000
	_, err = svc.UpdateDeal(context.Background(), deal.ID, &UpdateDealInput{
		Items: []DealItemInput{{ProductID: surgicalCap.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected error when the deal price exceeds the new list total")
	}

	stored := deals.deals[deal.ID]
	if stored.OriginalPrice != 5000 {
		t.Fatalf("rejected update must not touch original price, got %d", stored.OriginalPrice)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("rejected update must keep 2 constituents, got %d", len(stored.Items))
	}
	for _, item := range stored.Items {
		if item.ProductID == surgicalCap.ID {
			t.Fatal("rejected update must not replace constituents")
		}
	}
}

func TestCreateDealRejectsPriceAboveOriginal(t *testing.T) {
	svc, products, _ := newDealServiceForTest()
	scrub := products.add(&entity.Product{Name: "Scrub Top", Price: 1500, Quantity: 50, Active: true})

	_, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Bad Deal",
		DealPrice: 2000,
		Items:     []DealItemInput{{ProductID: scrub.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected error for deal price above original price")
	}
	appErr, ok := err.(*apperror.AppError)
	if !ok || appErr.Code != 400 {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestCreateDealRejectsEmptyItems(t *testing.T) {
	svc, _, _ := newDealServiceForTest()

	_, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Empty",
		DealPrice: 100,
	})
	if err == nil {
		t.Fatal("expected error for deal without constituents")
	}
}

func TestCreateDealRejectsUnknownProduct(t *testing.T) {
	svc, _, _ := newDealServiceForTest()

	_, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Ghost",
		DealPrice: 100,
		Items:     []DealItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestExpandToCartProratesDealPrice(t *testing.T) {
	svc, products, _ := newDealServiceForTest()
	scrub := products.add(&entity.Product{Name: "Scrub Top", Price: 100, Quantity: 50, Active: true})
	coat := products.add(&entity.Product{Name: "Lab Coat", Price: 200, Quantity: 20, Active: true})

	deal, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Rounding Deal",
		DealPrice: 499,
		Items: []DealItemInput{
			{ProductID: scrub.ID, Quantity: 3},
			{ProductID: coat.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}

	lines, err := svc.ExpandToCart(context.Background(), deal.ID)
	if err != nil {
		t.Fatalf("ExpandToCart failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(lines))
	}

	// 499 * 300/500 rounds to 299, 499 * 200/500 rounds to 200.
	byProduct := map[uuid.UUID]int64{}
	for _, line := range lines {
		byProduct[line.ProductID] = line.Total
	}
	if byProduct[scrub.ID] != 299 {
		t.Fatalf("expected scrub share 299, got %d", byProduct[scrub.ID])
	}
	if byProduct[coat.ID] != 200 {
		t.Fatalf("expected coat share 200, got %d", byProduct[coat.ID])
	}
	if lines[0].BundleID != lines[1].BundleID {
		t.Fatal("lines from one expansion must share a bundle ID")
	}
}

func TestExpandToCartFreshBundleIDPerExpansion(t *testing.T) {
	svc, products, _ := newDealServiceForTest()
	scrub := products.add(&entity.Product{Name: "Scrub Top", Price: 100, Quantity: 50, Active: true})

	deal, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Repeat Deal",
		DealPrice: 90,
		Items:     []DealItemInput{{ProductID: scrub.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}

	first, err := svc.ExpandToCart(context.Background(), deal.ID)
	if err != nil {
		t.Fatalf("first expansion failed: %v", err)
	}
	second, err := svc.ExpandToCart(context.Background(), deal.ID)
	if err != nil {
		t.Fatalf("second expansion failed: %v", err)
	}
	if first[0].BundleID == second[0].BundleID {
		t.Fatal("two expansions of the same deal must get distinct bundle IDs")
	}
}

func TestExpandToCartRejectsInactiveDeal(t *testing.T) {
	svc, products, deals := newDealServiceForTest()
	scrub := products.add(&entity.Product{Name: "Scrub Top", Price: 100, Quantity: 50, Active: true})

	deal, err := svc.CreateDeal(context.Background(), &CreateDealInput{
		Name:      "Retired Deal",
		DealPrice: 90,
		Items:     []DealItemInput{{ProductID: scrub.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}
	deals.deals[deal.ID].Active = false

	_, err = svc.ExpandToCart(context.Background(), deal.ID)
	if err == nil {
		t.Fatal("expected error expanding an inactive deal")
	}
}
