package request

import (
	"time"

	"github.com/google/uuid"
)

// SaleItemRequest is one scanned line at the register
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Size      *string   `json:"size"`
	Color     *string   `json:"color"`
}

// CreateSaleRequest represents a register checkout request
type CreateSaleRequest struct {
	CustomerID     *uuid.UUID        `json:"customer_id"`
	Items          []SaleItemRequest `json:"items" binding:"omitempty,dive"`
	DealIDs        []uuid.UUID       `json:"deal_ids"`
	Discount       int64             `json:"discount" binding:"min=0"`
	PaymentMethod  string            `json:"payment_method" binding:"required,oneof=cash card udhar"`
	AmountReceived int64             `json:"amount_received" binding:"min=0"`
	UdharDueDate   *time.Time        `json:"udhar_due_date"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Search        string `form:"search"`
	UserID        string `form:"user_id"`
	CustomerID    string `form:"customer_id"`
	PaymentMethod string `form:"payment_method"`
	DateFrom      string `form:"date_from"`
	DateTo        string `form:"date_to"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
