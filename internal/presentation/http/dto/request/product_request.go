package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=255"`
	Barcode       string   `json:"barcode" binding:"omitempty,max=100"`
	Category      string   `json:"category" binding:"omitempty,max=100"`
	Description   *string  `json:"description"`
	Price         int64    `json:"price" binding:"min=0"`
	Quantity      int      `json:"quantity" binding:"min=0"`
	QuantityAlert int      `json:"quantity_alert" binding:"min=0"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	ImageURL      *string  `json:"image_url"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category      *string  `json:"category" binding:"omitempty,max=100"`
	Description   *string  `json:"description"`
	Price         *int64   `json:"price" binding:"omitempty,min=0"`
	Quantity      *int     `json:"quantity" binding:"omitempty,min=0"`
	QuantityAlert *int     `json:"quantity_alert" binding:"omitempty,min=0"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	ImageURL      *string  `json:"image_url"`
	Active        *bool    `json:"active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	ActiveOnly bool   `form:"active_only"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
