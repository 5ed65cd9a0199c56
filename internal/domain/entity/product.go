package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a typed string slice stored as JSON. Sizes and colors are
// decoded once here at the data boundary, never re-parsed at render time.
type StringList []string

// Product represents an item in the apparel catalog
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Slug          string         `gorm:"size:255;unique;not null" json:"slug"`
	Barcode       string         `gorm:"size:100;unique;not null" json:"barcode"`
	Category      string         `gorm:"size:100;index" json:"category"`
	Description   *string        `gorm:"type:text" json:"description,omitempty"`
	Price         int64          `gorm:"default:0" json:"price"` // whole PKR
	Quantity      int            `gorm:"default:0" json:"quantity"`
	QuantityAlert int            `gorm:"default:0" json:"quantity_alert"`
	Sizes         StringList     `gorm:"serializer:json" json:"sizes,omitempty"`
	Colors        StringList     `gorm:"serializer:json" json:"colors,omitempty"`
	ImageURL      *string        `gorm:"size:255" json:"image_url,omitempty"`
	Active        bool           `gorm:"default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// LowStock reports whether the product has fallen to its alert level.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.QuantityAlert
}

// HasSize reports whether the product carries the given size variant.
// Products without size variants accept any value.
func (p *Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return true
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the product carries the given color variant.
func (p *Product) HasColor(color string) bool {
	if len(p.Colors) == 0 {
		return true
	}
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
