package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	domainRepo "github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.barcode as barcode,
			COALESCE(SUM(li.quantity), 0) as quantity_sold,
			COALESCE(SUM(li.total), 0) as revenue
		FROM (
			SELECT si.product_id, si.quantity, si.total
			FROM sale_items si
			JOIN sales s ON s.id = si.sale_id
			WHERE s.deleted_at IS NULL
			UNION ALL
			SELECT oi.product_id, oi.quantity, oi.total
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.status = 3 AND o.deleted_at IS NULL
		) li
		JOIN products p ON p.id = li.product_id
		GROUP BY p.id, p.name, p.barcode
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	// Generate dates for the last N days and get register revenue for each
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue sql.NullInt64
			Sales   sql.NullInt64
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0) as revenue, COUNT(*) as sales
			FROM sales
			WHERE deleted_at IS NULL
			AND sale_date >= ? AND sale_date < ?
		`, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:    startOfDay,
			Revenue: row.Revenue.Int64,
			Sales:   int(row.Sales.Int64),
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetRevenueSince(ctx context.Context, t time.Time) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE deleted_at IS NULL AND sale_date >= ?
	`, t).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) CountOrdersByStatus(ctx context.Context, status int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE deleted_at IS NULL AND status = ?
	`, status).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) CountLowStockProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM products
		WHERE deleted_at IS NULL AND active = true AND quantity <= quantity_alert
	`).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) SumOutstandingUdhar(ctx context.Context) (int64, error) {
	var outstanding int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total - paid), 0)
		FROM udhar_transactions
		WHERE deleted_at IS NULL AND status <> 2
	`).Scan(&outstanding).Error

	return outstanding, err
}
