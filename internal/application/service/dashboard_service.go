package service

import (
	"context"
	"time"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
)

// DashboardService provides the back-office overview numbers
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats represents the admin dashboard numbers
type DashboardStats struct {
	TodayRevenue     int64             `json:"today_revenue"`
	MonthRevenue     int64             `json:"month_revenue"`
	PendingOrders    int64             `json:"pending_orders"`
	LowStockCount    int64             `json:"low_stock_count"`
	OutstandingUdhar int64             `json:"outstanding_udhar"`
	DailySalesData   []DailySalesPoint `json:"daily_sales_data"`
	TopProducts      []TopProductPoint `json:"top_products"`
}

// DailySalesPoint represents a daily register revenue data point
type DailySalesPoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Sales   int    `json:"sales"`
}

// TopProductPoint represents one top-selling product
type TopProductPoint struct {
	Name         string `json:"name"`
	Barcode      string `json:"barcode"`
	QuantitySold int    `json:"quantity_sold"`
	Revenue      int64  `json:"revenue"`
}

// GetDashboardStats returns the admin dashboard numbers
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := time.Now()

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayRevenue, err := s.analyticsRepo.GetRevenueSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	stats.TodayRevenue = todayRevenue

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthRevenue, err := s.analyticsRepo.GetRevenueSince(ctx, startOfMonth)
	if err != nil {
		return nil, err
	}
	stats.MonthRevenue = monthRevenue

	pendingOrders, err := s.analyticsRepo.CountOrdersByStatus(ctx, int(enum.OrderStatusPending))
	if err != nil {
		return nil, err
	}
	stats.PendingOrders = pendingOrders

	lowStock, err := s.analyticsRepo.CountLowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = lowStock

	outstanding, err := s.analyticsRepo.SumOutstandingUdhar(ctx)
	if err != nil {
		return nil, err
	}
	stats.OutstandingUdhar = outstanding

	daily, err := s.analyticsRepo.GetDailySales(ctx, 14)
	if err != nil {
		return nil, err
	}
	for _, d := range daily {
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:    d.Date.Format("2006-01-02"),
			Revenue: d.Revenue,
			Sales:   d.Sales,
		})
	}

	top, err := s.analyticsRepo.GetTopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}
	for _, t := range top {
		stats.TopProducts = append(stats.TopProducts, TopProductPoint{
			Name:         t.ProductName,
			Barcode:      t.Barcode,
			QuantitySold: t.QuantitySold,
			Revenue:      t.Revenue,
		})
	}

	return stats, nil
}
