package request

import "github.com/google/uuid"

// DealItemRequest is one constituent of a bundle
type DealItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateDealRequest represents a deal bundle creation request
type CreateDealRequest struct {
	Name        string            `json:"name" binding:"required,min=2,max=255"`
	Description *string           `json:"description"`
	DealPrice   int64             `json:"deal_price" binding:"required,min=1"`
	Items       []DealItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateDealRequest represents a deal bundle update request
type UpdateDealRequest struct {
	Name        *string           `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string           `json:"description"`
	DealPrice   *int64            `json:"deal_price" binding:"omitempty,min=1"`
	Active      *bool             `json:"active"`
	Items       []DealItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// DealFilterRequest represents deal filter parameters
type DealFilterRequest struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
