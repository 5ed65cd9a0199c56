package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	domainRepo "github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
)

type udharRepository struct {
	db *gorm.DB
}

// NewUdharRepository creates a new shop credit ledger repository
func NewUdharRepository(db *gorm.DB) domainRepo.UdharRepository {
	return &udharRepository{db: db}
}

func (r *udharRepository) Create(ctx context.Context, udhar *entity.UdharTransaction) error {
	return r.db.WithContext(ctx).Create(udhar).Error
}

func (r *udharRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UdharTransaction, error) {
	var udhar entity.UdharTransaction
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&udhar, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &udhar, err
}

func (r *udharRepository) GetWithPayments(ctx context.Context, id uuid.UUID) (*entity.UdharTransaction, error) {
	var udhar entity.UdharTransaction
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("paid_at ASC")
		}).
		First(&udhar, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &udhar, err
}

func (r *udharRepository) Update(ctx context.Context, udhar *entity.UdharTransaction) error {
	return r.db.WithContext(ctx).Save(udhar).Error
}

func (r *udharRepository) List(ctx context.Context, params *domainRepo.UdharFilterParams) ([]entity.UdharTransaction, int64, error) {
	var udhars []entity.UdharTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.UdharTransaction{})

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "due_date"
	sortOrder := "ASC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&udhars).Error

	return udhars, total, err
}

// ListOverdue returns unsettled ledgers whose due date has passed.
func (r *udharRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]entity.UdharTransaction, error) {
	var udhars []entity.UdharTransaction
	err := r.db.WithContext(ctx).
		Where("due_date < ? AND status <> ?", asOf, enum.UdharStatusPaid).
		Preload("Customer").
		Order("due_date ASC").
		Find(&udhars).Error
	return udhars, err
}

func (r *udharRepository) AddPayment(ctx context.Context, payment *entity.UdharPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}
