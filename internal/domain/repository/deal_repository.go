package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
)

// DealRepository defines the interface for deal bundle data operations
type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Deal, error)
	Update(ctx context.Context, deal *entity.Deal) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DealFilterParams) ([]entity.Deal, int64, error)
	ReplaceItems(ctx context.Context, dealID uuid.UUID, items []entity.DealItem) error
}

// DealFilterParams contains filtering parameters for deal queries
type DealFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
}
