package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/billing"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/email"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/renderer"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/utils"
)

// OrderService handles web storefront order operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	settings      *SettingsService
	deals         *DealService
	mailer        *email.EmailService // nil when email is disabled
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	settings *SettingsService,
	deals *DealService,
	mailer *email.EmailService,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		settings:      settings,
		deals:         deals,
		mailer:        mailer,
	}
}

// OrderItemInput represents one storefront cart line
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Size      *string
	Color     *string
}

// CreateOrderInput represents the web checkout input
type CreateOrderInput struct {
	CustomerID   *uuid.UUID
	ContactName  string
	ContactPhone string
	ContactEmail string
	ShipAddress  string
	Items        []OrderItemInput
	DealIDs      []uuid.UUID
	ShippingFee  int64
}

// CreateOrder places a web order. Contact details are snapshotted onto
// the order so a later customer edit doesn't rewrite shipping history.
// Stock is reserved at checkout and released if the order is cancelled.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 && len(input.DealIDs) == 0 {
		return nil, apperror.NewBadRequestError("An order needs at least one item")
	}
	if input.ContactName == "" {
		return nil, apperror.NewBadRequestError("Contact name is required")
	}
	if input.ShipAddress == "" {
		return nil, apperror.NewBadRequestError("Shipping address is required")
	}
	if input.ShippingFee < 0 {
		return nil, apperror.NewBadRequestError("Shipping fee cannot be negative")
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
	orderItems := make([]entity.OrderItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if !product.Active {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %s is not available", product.Name))
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

		orderItems = append(orderItems, entity.OrderItem{
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

	for _, dealID := range input.DealIDs {
		lines, err := s.deals.ExpandToCart(ctx, dealID)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			bundleID := line.BundleID
			subTotal += line.Total
			totalItems += line.Quantity
			orderItems = append(orderItems, entity.OrderItem{
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

	totals := billing.ComputeTotals(subTotal, 0, input.ShippingFee, settings.TaxConfig())

	order := &entity.Order{
		OrderNo:      utils.GenerateOrderNo(),
		CustomerID:   input.CustomerID,
		Status:       enum.OrderStatusPending,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		ShipAddress:  input.ShipAddress,
		SubTotal:     subTotal,
		ShippingFee:  input.ShippingFee,
		TaxAmount:    totals.TaxAmount,
		Total:        totals.GrandTotal,
		TotalItems:   totalItems,
		OrderDate:    time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
	}

	if err := s.orderItemRepo.CreateBatch(ctx, orderItems); err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	if s.mailer != nil && order.ContactEmail != "" {
		go func(o entity.Order) {
			err := s.mailer.SendOrderConfirmation(o.ContactEmail, email.OrderEmailData{
				CustomerName: o.ContactName,
				OrderNo:      o.OrderNo,
				Total:        renderer.FormatMoney(o.Total),
			})
			if err != nil {
				log.Printf("Warning: order confirmation email failed for %s: %v", o.OrderNo, err)
			}
		}(*order)
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// TrackOrder looks an order up by its public order number, the
// storefront's order tracking path. No auth required.
func (s *OrderService) TrackOrder(ctx context.Context, orderNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersWithCursor lists orders with cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateOrderStatus advances an order through its lifecycle. Orders move
// strictly forward; cancellation is allowed from any non-terminal state
// and restores the reserved stock.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Cannot move order from %s to %s", order.Status, status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	if status == enum.OrderStatusCancelled {
		increments := make(map[uuid.UUID]int)
		for _, item := range order.Items {
			increments[item.ProductID] += item.Quantity
		}
		if err := s.productRepo.AtomicIncrementBatch(ctx, increments); err != nil {
			return nil, err
		}
	}

	if s.mailer != nil && order.ContactEmail != "" {
		go func(o entity.Order) {
			err := s.mailer.SendOrderStatusUpdate(o.ContactEmail, email.OrderEmailData{
				CustomerName: o.ContactName,
				OrderNo:      o.OrderNo,
				Status:       o.Status.String(),
				Total:        renderer.FormatMoney(o.Total),
			})
			if err != nil {
				log.Printf("Warning: order status email failed for %s: %v", o.OrderNo, err)
			}
		}(*order)
	}

	return order, nil
}
