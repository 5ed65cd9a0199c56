package service

import (
	"context"
	"testing"
	"time"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

func newUdharServiceForTest() (*UdharService, *stubCustomerRepo, *stubUdharRepo) {
	customers := newStubCustomerRepo()
	udhars := newStubUdharRepo()
	return NewUdharService(udhars, customers, nil), customers, udhars
}

func TestCreateUdharDerivesStatus(t *testing.T) {
	svc, customers, _ := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	udhar, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      5000,
		Paid:       2000,
		DueDate:    time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateUdhar failed: %v", err)
	}
	if udhar.Status != enum.UdharStatusPartial {
		t.Fatalf("expected PARTIAL status, got %v", udhar.Status)
	}
	if udhar.Remaining() != 3000 {
		t.Fatalf("expected remaining 3000, got %d", udhar.Remaining())
	}
}

func TestCreateUdharRecordsUpfrontPayment(t *testing.T) {
	svc, customers, _ := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	created, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      1000,
		Paid:       200,
		DueDate:    time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateUdhar failed: %v", err)
	}

	udhar, err := svc.GetUdhar(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUdhar failed: %v", err)
	}
	var sum int64
	for _, p := range udhar.Payments {
		sum += p.Amount
	}
	if sum != udhar.Paid {
		t.Fatalf("payments sum %d must equal paid %d", sum, udhar.Paid)
	}
	if len(udhar.Payments) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(udhar.Payments))
	}
	if udhar.Payments[0].Method != enum.PaymentMethodCash {
		t.Fatalf("expected cash payment record, got %v", udhar.Payments[0].Method)
	}
}

func TestCreateUdharWithoutUpfrontHasNoPayments(t *testing.T) {
	svc, customers, _ := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	created, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      1000,
		Paid:       0,
		DueDate:    time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateUdhar failed: %v", err)
	}

	udhar, err := svc.GetUdhar(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUdhar failed: %v", err)
	}
	if len(udhar.Payments) != 0 {
		t.Fatalf("expected no payment records, got %d", len(udhar.Payments))
	}
}

func TestCreateUdharRejectsFullyPaid(t *testing.T) {
	svc, customers, _ := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	_, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      5000,
		Paid:       5000,
		DueDate:    time.Now().Add(7 * 24 * time.Hour),
	})
	if err == nil {
		t.Fatal("expected error when paid equals total")
	}
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, customers, _ := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	udhar, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      5000,
		Paid:       2000,
		DueDate:    time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateUdhar failed: %v", err)
	}

	_, err = svc.RecordPayment(context.Background(), udhar.ID, &RecordPaymentInput{
		Amount: 3001,
		Method: enum.PaymentMethodCash,
	})
	if err == nil {
		t.Fatal("expected error for payment above the remaining balance")
	}
}

func TestRecordPaymentRejectsUdharMethod(t *testing.T) {
	svc, customers, _ := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	udhar, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      5000,
		Paid:       0,
		DueDate:    time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateUdhar failed: %v", err)
	}

	_, err = svc.RecordPayment(context.Background(), udhar.ID, &RecordPaymentInput{
		Amount: 1000,
		Method: enum.PaymentMethodUdhar,
	})
	if err == nil {
		t.Fatal("expected error paying a ledger with more credit")
	}
}

func TestRecordPaymentSettlesLedger(t *testing.T) {
	svc, customers, udhars := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	udhar, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      5000,
		Paid:       2000,
		DueDate:    time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateUdhar failed: %v", err)
	}

	updated, err := svc.RecordPayment(context.Background(), udhar.ID, &RecordPaymentInput{
		Amount: 3000,
		Method: enum.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if updated.Status != enum.UdharStatusPaid {
		t.Fatalf("expected PAID status, got %v", updated.Status)
	}
	if updated.Remaining() != 0 {
		t.Fatalf("expected zero remaining, got %d", updated.Remaining())
	}
	// One row for the upfront 2000 at open, one for the settling 3000
	if len(udhars.payments[udhar.ID]) != 2 {
		t.Fatalf("expected 2 payment rows, got %d", len(udhars.payments[udhar.ID]))
	}
	var sum int64
	for _, p := range udhars.payments[udhar.ID] {
		sum += p.Amount
	}
	if sum != updated.Paid {
		t.Fatalf("payments sum %d must equal paid %d", sum, updated.Paid)
	}
}

func TestGetUdharRefreshesOverdueStatus(t *testing.T) {
	svc, customers, _ := newUdharServiceForTest()
	customer := customers.add(&entity.Customer{Name: "Dr. Saeed"})

	udhar, err := svc.CreateUdhar(context.Background(), &CreateUdharInput{
		CustomerID: customer.ID,
		Total:      5000,
		Paid:       0,
		DueDate:    time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateUdhar failed: %v", err)
	}
	if udhar.Status != enum.UdharStatusUnpaid {
		t.Fatalf("expected UNPAID status, got %v", udhar.Status)
	}

	// Push the due date into the past; the next read should flip it.
	udhar.DueDate = time.Now().Add(-24 * time.Hour)

	fetched, err := svc.GetUdhar(context.Background(), udhar.ID)
	if err != nil {
		t.Fatalf("GetUdhar failed: %v", err)
	}
	if fetched.Status != enum.UdharStatusOverdue {
		t.Fatalf("expected OVERDUE status, got %v", fetched.Status)
	}
}
