package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	domainRepo "github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
)

type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) domainRepo.DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

func (r *dealRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var deal entity.Deal
	err := r.db.WithContext(ctx).First(&deal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &deal, err
}

func (r *dealRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var deal entity.Deal
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		First(&deal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &deal, err
}

func (r *dealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	return r.db.WithContext(ctx).Save(deal).Error
}

func (r *dealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.DealItem{}, "deal_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Deal{}, "id = ?", id).Error
	})
}

func (r *dealRepository) List(ctx context.Context, params *domainRepo.DealFilterParams) ([]entity.Deal, int64, error) {
	var deals []entity.Deal
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Deal{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.ActiveOnly {
		query = query.Where("active = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&deals).Error

	return deals, total, err
}

// ReplaceItems swaps the constituent rows of a deal in one transaction.
func (r *dealRepository) ReplaceItems(ctx context.Context, dealID uuid.UUID, items []entity.DealItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.DealItem{}, "deal_id = ?", dealID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].DealID = dealID
		}
		return tx.Create(&items).Error
	})
}
