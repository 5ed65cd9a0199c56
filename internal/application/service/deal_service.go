package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/billing"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
)

// DealService handles deal bundle operations
type DealService struct {
	dealRepo    repository.DealRepository
	productRepo repository.ProductRepository
}

// NewDealService creates a new deal service
func NewDealService(dealRepo repository.DealRepository, productRepo repository.ProductRepository) *DealService {
	return &DealService{
		dealRepo:    dealRepo,
		productRepo: productRepo,
	}
}

// DealItemInput is one constituent of a bundle
type DealItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateDealInput represents the create deal input
type CreateDealInput struct {
	Name        string
	Description *string
	DealPrice   int64
	Items       []DealItemInput
}

// CreateDeal creates a bundle. The original price is the sum of the
// constituents' list prices at creation time, snapshotted onto each
// constituent row so later catalog edits don't reprice old bundles.
func (s *DealService) CreateDeal(ctx context.Context, input *CreateDealInput) (*entity.Deal, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Deal name is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A deal needs at least one product")
	}

	items, originalPrice, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	if input.DealPrice <= 0 {
		return nil, apperror.NewBadRequestError("Deal price must be positive")
	}
	if input.DealPrice > originalPrice {
		return nil, apperror.NewBadRequestError("Deal price cannot exceed the sum of list prices")
	}

	deal := &entity.Deal{
		Name:          input.Name,
		Description:   input.Description,
		OriginalPrice: originalPrice,
		DealPrice:     input.DealPrice,
		Active:        true,
		Items:         items,
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, err
	}

	return s.dealRepo.GetWithItems(ctx, deal.ID)
}

// UpdateDealInput represents the update deal input
type UpdateDealInput struct {
	Name        *string
	Description *string
	DealPrice   *int64
	Active      *bool
	Items       []DealItemInput // nil means leave constituents alone
}

// UpdateDeal applies a partial update. When constituents change, the
// original price is recomputed from current list prices.
func (s *DealService) UpdateDeal(ctx context.Context, id uuid.UUID, input *UpdateDealInput) (*entity.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperror.NewNotFoundError("Deal")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Deal name cannot be empty")
		}
		deal.Name = *input.Name
	}
	if input.Description != nil {
		deal.Description = input.Description
	}
	if input.Active != nil {
		deal.Active = *input.Active
	}

	var newItems []entity.DealItem
	if input.Items != nil {
		if len(input.Items) == 0 {
			return nil, apperror.NewBadRequestError("A deal needs at least one product")
		}
		items, originalPrice, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		deal.OriginalPrice = originalPrice
		newItems = items
	}

	if input.DealPrice != nil {
		if *input.DealPrice <= 0 {
			return nil, apperror.NewBadRequestError("Deal price must be positive")
		}
		deal.DealPrice = *input.DealPrice
	}

	// Validate before anything is written so a rejected update leaves
	// both the deal row and its constituents untouched.
	if deal.DealPrice > deal.OriginalPrice {
		return nil, apperror.NewBadRequestError("Deal price cannot exceed the sum of list prices")
	}

	if newItems != nil {
		if err := s.dealRepo.ReplaceItems(ctx, deal.ID, newItems); err != nil {
			return nil, err
		}
	}

	// Items association has already been replaced; clear it so Save
	// doesn't re-create constituent rows.
	deal.Items = nil
	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, err
	}

	return s.dealRepo.GetWithItems(ctx, deal.ID)
}

func (s *DealService) buildItems(ctx context.Context, inputs []DealItemInput) ([]entity.DealItem, int64, error) {
	productIDs := make([]uuid.UUID, len(inputs))
	for i, item := range inputs {
		if item.Quantity <= 0 {
			return nil, 0, apperror.NewBadRequestError("Constituent quantity must be positive")
		}
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, 0, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var originalPrice int64
	items := make([]entity.DealItem, 0, len(inputs))
	for _, item := range inputs {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, 0, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		originalPrice += product.Price * int64(item.Quantity)
		items = append(items, entity.DealItem{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			UnitListPrice: product.Price,
		})
	}

	return items, originalPrice, nil
}

// GetDeal retrieves a deal with its constituents
func (s *DealService) GetDeal(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	deal, err := s.dealRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperror.NewNotFoundError("Deal")
	}
	return deal, nil
}

// ListDeals lists deals with filtering
func (s *DealService) ListDeals(ctx context.Context, params *repository.DealFilterParams) (*pagination.PaginatedResult[entity.Deal], error) {
	deals, total, err := s.dealRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(deals, pag), nil
}

// DeleteDeal removes a deal and its constituent rows
func (s *DealService) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if deal == nil {
		return apperror.NewNotFoundError("Deal")
	}
	return s.dealRepo.Delete(ctx, id)
}

// ExpandedLine is one cart line produced by expanding a bundle: the
// constituent product at its prorated share of the deal price.
type ExpandedLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice int64 // list price snapshot
	Total     int64 // prorated share of the deal price
	BundleID  uuid.UUID
}

// ExpandToCart flattens an active deal into individual cart lines. Each
// expansion gets a fresh bundle instance ID so two of the same deal in
// one cart stay distinguishable.
func (s *DealService) ExpandToCart(ctx context.Context, dealID uuid.UUID) ([]ExpandedLine, error) {
	deal, err := s.dealRepo.GetWithItems(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperror.NewNotFoundError("Deal")
	}
	if !deal.Active {
		return nil, apperror.NewBadRequestError("Deal is not active")
	}

	constituents := make([]billing.Constituent, len(deal.Items))
	for i, item := range deal.Items {
		constituents[i] = billing.Constituent{
			Quantity:      item.Quantity,
			UnitListPrice: item.UnitListPrice,
		}
	}

	shares := billing.Prorate(deal.OriginalPrice, deal.DealPrice, constituents)

	bundleID := uuid.New()
	lines := make([]ExpandedLine, len(deal.Items))
	for i, item := range deal.Items {
		name := item.Product.Name
		if name == "" {
			name = deal.Name
		}
		lines[i] = ExpandedLine{
			ProductID: item.ProductID,
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitListPrice,
			Total:     shares[i].DiscountedSubtotal,
			BundleID:  bundleID,
		}
	}

	return lines, nil
}
