package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/billing"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/utils"
)

// SaleService handles register checkout operations
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	settings     *SettingsService
	deals        *DealService
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	settings *SettingsService,
	deals *DealService,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		settings:     settings,
		deals:        deals,
	}
}

// SaleItemInput represents one scanned item at the register
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Size      *string
	Color     *string
}

// CreateSaleInput represents the register checkout input
type CreateSaleInput struct {
	UserID         uuid.UUID
	CustomerID     *uuid.UUID
	Items          []SaleItemInput
	DealIDs        []uuid.UUID
	Discount       int64
	PaymentMethod  enum.PaymentMethod
	AmountReceived int64
	UdharDueDate   *time.Time
}

// CreateSale rings up a register sale: deals expand to prorated lines,
// stock decrements atomically, tax comes from the store settings, and a
// credit sale opens a ledger entry for the customer.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 && len(input.DealIDs) == 0 {
		return nil, apperror.NewBadRequestError("A sale needs at least one item")
	}
	if input.Discount < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	if input.PaymentMethod == enum.PaymentMethodUdhar {
		if input.CustomerID == nil {
			return nil, apperror.NewBadRequestError("Udhar sales require a customer")
		}
		if input.UdharDueDate == nil {
			return nil, apperror.NewBadRequestError("Udhar sales require a due date")
		}
	}

	// Batch fetch all directly scanned products in one query
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subTotal int64
	var totalItems int
	saleItems := make([]entity.SaleItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if item.Size != nil && !product.HasSize(*item.Size) {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %s has no size %s", product.Name, *item.Size))
		}
		if item.Color != nil && !product.HasColor(*item.Color) {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %s has no color %s", product.Name, *item.Color))
		}

		itemTotal := product.Price * int64(item.Quantity)
		subTotal += itemTotal
		totalItems += item.Quantity

		saleItems = append(saleItems, entity.SaleItem{
			ProductID: item.ProductID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Total:     itemTotal,
			Size:      item.Size,
			Color:     item.Color,
		})

		stockDecrements[product.ID] += item.Quantity
	}

	// Expand each deal into prorated constituent lines
	for _, dealID := range input.DealIDs {
		lines, err := s.deals.ExpandToCart(ctx, dealID)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			bundleID := line.BundleID
			subTotal += line.Total
			totalItems += line.Quantity
			saleItems = append(saleItems, entity.SaleItem{
				ProductID: line.ProductID,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Total:     line.Total,
				BundleID:  &bundleID,
			})
			stockDecrements[line.ProductID] += line.Quantity
		}
	}

	if input.Discount > subTotal {
		return nil, apperror.NewBadRequestError("Discount cannot exceed the subtotal")
	}

	// Atomically decrement stock - race-condition safe across registers
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if product, exists := productMap[id]; exists {
				failedNames = append(failedNames, product.Name)
			} else {
				failedNames = append(failedNames, id.String())
			}
		}
		return nil, apperror.NewInsufficientStockError(failedNames)
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	totals := billing.ComputeTotals(subTotal, input.Discount, 0, settings.TaxConfig())

	var amountReceived, changeDue int64
	switch input.PaymentMethod {
	case enum.PaymentMethodCash:
		if input.AmountReceived < totals.GrandTotal {
			_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
			return nil, apperror.NewBadRequestError("Cash received is less than the total")
		}
		amountReceived = input.AmountReceived
		changeDue = input.AmountReceived - totals.GrandTotal
	case enum.PaymentMethodCard:
		amountReceived = totals.GrandTotal
	case enum.PaymentMethodUdhar:
		// An upfront partial payment is allowed; the rest goes on the ledger.
		if input.AmountReceived >= totals.GrandTotal {
			_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
			return nil, apperror.NewBadRequestError("Udhar sales must leave a balance; use cash instead")
		}
		amountReceived = input.AmountReceived
	}

	sale := &entity.Sale{
		ReceiptNo:      utils.GenerateReceiptNo(),
		UserID:         input.UserID,
		CustomerID:     input.CustomerID,
		SubTotal:       subTotal,
		Discount:       input.Discount,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.GrandTotal,
		PaymentMethod:  input.PaymentMethod,
		AmountReceived: amountReceived,
		ChangeDue:      changeDue,
		TotalItems:     totalItems,
		SaleDate:       time.Now(),
	}

	var udhar *entity.UdharTransaction
	if input.PaymentMethod == enum.PaymentMethodUdhar {
		udhar = &entity.UdharTransaction{
			CustomerID: *input.CustomerID,
			Total:      totals.GrandTotal,
			Paid:       amountReceived,
			DueDate:    *input.UdharDueDate,
		}
		udhar.Status = udhar.DeriveStatus(time.Now())
		// An upfront partial payment is a real payment record; the
		// ledger's paid amount always equals the sum of its payments.
		if amountReceived > 0 {
			udhar.Payments = []entity.UdharPayment{{
				Amount: amountReceived,
				Method: enum.PaymentMethodCash,
				PaidAt: time.Now(),
			}}
		}
	}

	// Sale, line items, and the credit ledger land in one transaction
	if err := s.saleRepo.Create(ctx, sale, saleItems, udhar); err != nil {
		// Stock was already decremented - restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// GetSale retrieves a sale with its line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// DeleteSale voids a sale and restores the stock it consumed.
// Admin only; the handler enforces the role.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	increments := make(map[uuid.UUID]int)
	for _, item := range sale.Items {
		increments[item.ProductID] += item.Quantity
	}

	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.productRepo.AtomicIncrementBatch(ctx, increments)
}
