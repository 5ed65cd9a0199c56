package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopProductResult represents a product's sales performance
type TopProductResult struct {
	ProductID    uuid.UUID
	ProductName  string
	Barcode      string
	QuantitySold int
	Revenue      int64
}

// DailySalesResult represents register revenue for a single day
type DailySalesResult struct {
	Date    time.Time
	Revenue int64
	Sales   int
}

// AnalyticsRepository defines the interface for aggregation queries that
// back the admin dashboard.
type AnalyticsRepository interface {
	// GetTopProducts returns the top selling products by revenue across
	// POS sales and delivered web orders
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetDailySales returns per-day POS revenue for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetRevenueSince returns total POS revenue recorded at or after t
	GetRevenueSince(ctx context.Context, t time.Time) (int64, error)

	// CountOrdersByStatus returns the number of web orders in a status
	CountOrdersByStatus(ctx context.Context, status int) (int64, error)

	// CountLowStockProducts returns products at or below their alert level
	CountLowStockProducts(ctx context.Context) (int64, error)

	// SumOutstandingUdhar returns the total unpaid credit across ledgers
	SumOutstandingUdhar(ctx context.Context) (int64, error)
}
