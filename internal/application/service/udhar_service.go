package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/email"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/renderer"
)

// UdharService manages shop credit ledgers
type UdharService struct {
	udharRepo    repository.UdharRepository
	customerRepo repository.CustomerRepository
	mailer       *email.EmailService // nil when email is disabled
}

// NewUdharService creates a new udhar service
func NewUdharService(
	udharRepo repository.UdharRepository,
	customerRepo repository.CustomerRepository,
	mailer *email.EmailService,
) *UdharService {
	return &UdharService{
		udharRepo:    udharRepo,
		customerRepo: customerRepo,
		mailer:       mailer,
	}
}

// CreateUdharInput opens a ledger entry not tied to a register sale,
// for credit extended informally over the counter.
type CreateUdharInput struct {
	CustomerID uuid.UUID
	Total      int64
	Paid       int64
	DueDate    time.Time
	Notes      *string
}

// CreateUdhar opens a manual credit ledger for a customer
func (s *UdharService) CreateUdhar(ctx context.Context, input *CreateUdharInput) (*entity.UdharTransaction, error) {
	if input.Total <= 0 {
		return nil, apperror.NewBadRequestError("Udhar total must be positive")
	}
	if input.Paid < 0 {
		return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
	}
	if input.Paid >= input.Total {
		return nil, apperror.NewBadRequestError("Paid amount must be less than the total")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	udhar := &entity.UdharTransaction{
		CustomerID: input.CustomerID,
		Total:      input.Total,
		Paid:       input.Paid,
		DueDate:    input.DueDate,
		Notes:      input.Notes,
	}
	udhar.Status = udhar.DeriveStatus(time.Now())

	// Money taken at the counter when the ledger opens is a payment
	// record like any other; paid always equals the sum of payments.
	if input.Paid > 0 {
		udhar.Payments = []entity.UdharPayment{{
			Amount: input.Paid,
			Method: enum.PaymentMethodCash,
			PaidAt: time.Now(),
		}}
	}

	if err := s.udharRepo.Create(ctx, udhar); err != nil {
		return nil, err
	}

	return udhar, nil
}

// GetUdhar retrieves a ledger with its payment history. The stored
// status is refreshed against the clock so an entry that slipped past
// its due date reads OVERDUE without waiting for a write.
func (s *UdharService) GetUdhar(ctx context.Context, id uuid.UUID) (*entity.UdharTransaction, error) {
	udhar, err := s.udharRepo.GetWithPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	if udhar == nil {
		return nil, apperror.NewNotFoundError("Udhar")
	}

	if derived := udhar.DeriveStatus(time.Now()); derived != udhar.Status {
		udhar.Status = derived
		if err := s.udharRepo.Update(ctx, udhar); err != nil {
			return nil, err
		}
	}

	return udhar, nil
}

// ListUdhars lists ledgers with filtering
func (s *UdharService) ListUdhars(ctx context.Context, params *repository.UdharFilterParams) (*pagination.PaginatedResult[entity.UdharTransaction], error) {
	udhars, total, err := s.udharRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(udhars, pag), nil
}

// RecordPaymentInput represents a repayment against a ledger
type RecordPaymentInput struct {
	Amount int64
	Method enum.PaymentMethod
}

// RecordPayment applies a repayment. Overpayment is rejected rather
// than carried as store credit.
func (s *UdharService) RecordPayment(ctx context.Context, udharID uuid.UUID, input *RecordPaymentInput) (*entity.UdharTransaction, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}
	if input.Method == enum.PaymentMethodUdhar {
		return nil, apperror.NewBadRequestError("A ledger cannot be repaid with more credit")
	}

	udhar, err := s.udharRepo.GetByID(ctx, udharID)
	if err != nil {
		return nil, err
	}
	if udhar == nil {
		return nil, apperror.NewNotFoundError("Udhar")
	}

	if input.Amount > udhar.Remaining() {
		return nil, apperror.NewBadRequestError("Payment exceeds the remaining balance")
	}

	payment := &entity.UdharPayment{
		UdharID: udharID,
		Amount:  input.Amount,
		Method:  input.Method,
		PaidAt:  time.Now(),
	}

	if err := s.udharRepo.AddPayment(ctx, payment); err != nil {
		return nil, err
	}

	udhar.Paid += input.Amount
	udhar.Status = udhar.DeriveStatus(time.Now())
	if err := s.udharRepo.Update(ctx, udhar); err != nil {
		return nil, err
	}

	return s.udharRepo.GetWithPayments(ctx, udharID)
}

// SendOverdueReminders emails every customer holding an overdue ledger.
// Returns the number of reminders sent.
func (s *UdharService) SendOverdueReminders(ctx context.Context) (int, error) {
	overdue, err := s.udharRepo.ListOverdue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range overdue {
		udhar := &overdue[i]

		if udhar.Status != enum.UdharStatusOverdue {
			udhar.Status = enum.UdharStatusOverdue
			if err := s.udharRepo.Update(ctx, udhar); err != nil {
				return sent, err
			}
		}

		if s.mailer == nil || udhar.Customer.Email == nil || *udhar.Customer.Email == "" {
			continue
		}

		err := s.mailer.SendUdharReminder(*udhar.Customer.Email, email.UdharReminderData{
			CustomerName: udhar.Customer.Name,
			Remaining:    renderer.FormatMoney(udhar.Remaining()),
			DueDate:      udhar.DueDate.Format("02 Jan 2006"),
		})
		if err != nil {
			log.Printf("Warning: udhar reminder email failed for %s: %v", udhar.Customer.Name, err)
			continue
		}
		sent++
	}

	return sent, nil
}
