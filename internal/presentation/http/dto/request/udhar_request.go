package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateUdharRequest opens a manual credit ledger
type CreateUdharRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Total      int64     `json:"total" binding:"required,min=1"`
	Paid       int64     `json:"paid" binding:"min=0"`
	DueDate    time.Time `json:"due_date" binding:"required"`
	Notes      *string   `json:"notes"`
}

// RecordUdharPaymentRequest records a repayment against a ledger
type RecordUdharPaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	Method string `json:"method" binding:"required,oneof=cash card"`
}

// UdharFilterRequest represents ledger filter parameters
type UdharFilterRequest struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
