package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
)

// SaleRepository defines the interface for POS sale data operations
type SaleRepository interface {
	// Create persists the sale, its line items, and the credit ledger
	// opened by an udhar sale (nil otherwise) in one transaction.
	Create(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, udhar *entity.UdharTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	UserID        *uuid.UUID
	CustomerID    *uuid.UUID
	PaymentMethod *enum.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
