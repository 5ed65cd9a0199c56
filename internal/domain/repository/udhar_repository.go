package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
)

// UdharRepository defines the interface for shop credit ledger operations
type UdharRepository interface {
	Create(ctx context.Context, udhar *entity.UdharTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UdharTransaction, error)
	GetWithPayments(ctx context.Context, id uuid.UUID) (*entity.UdharTransaction, error)
	Update(ctx context.Context, udhar *entity.UdharTransaction) error
	List(ctx context.Context, params *UdharFilterParams) ([]entity.UdharTransaction, int64, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]entity.UdharTransaction, error)
	AddPayment(ctx context.Context, payment *entity.UdharPayment) error
}

// UdharFilterParams contains filtering parameters for ledger queries
type UdharFilterParams struct {
	Pagination *pagination.PaginationParams
	CustomerID *uuid.UUID
	Status     *enum.UdharStatus
	SortBy     string
	SortOrder  string
}
