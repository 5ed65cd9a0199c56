package request

import "github.com/google/uuid"

// OrderItemRequest is one cart line at web checkout
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Size      *string   `json:"size"`
	Color     *string   `json:"color"`
}

// CreateOrderRequest represents a web checkout request
type CreateOrderRequest struct {
	CustomerID   *uuid.UUID         `json:"customer_id"`
	ContactName  string             `json:"contact_name" binding:"required,min=2,max=255"`
	ContactPhone string             `json:"contact_phone" binding:"required,max=50"`
	ContactEmail string             `json:"contact_email" binding:"omitempty,email"`
	ShipAddress  string             `json:"ship_address" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"omitempty,dive"`
	DealIDs      []uuid.UUID        `json:"deal_ids"`
	ShippingFee  int64              `json:"shipping_fee" binding:"min=0"`
}

// UpdateOrderStatusRequest advances an order through its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Limit      int    `form:"limit"` // For cursor-based pagination
	Cursor     string `form:"cursor"`
	Direction  string `form:"direction"`
}
