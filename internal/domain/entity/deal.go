package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deal is a multi-product bundle sold at a single discounted price.
// Invariant: DealPrice <= OriginalPrice, where OriginalPrice is the sum
// of the constituent list prices.
type Deal struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   *string        `gorm:"type:text" json:"description,omitempty"`
	OriginalPrice int64          `gorm:"default:0" json:"original_price"`
	DealPrice     int64          `gorm:"default:0" json:"deal_price"`
	Active        bool           `gorm:"default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []DealItem `gorm:"foreignKey:DealID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new deal
func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Deal model
func (Deal) TableName() string {
	return "deals"
}

// DealItem is one constituent of a deal bundle. UnitListPrice is a
// snapshot of the product's list price when the deal was assembled.
type DealItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DealID        uuid.UUID `gorm:"type:uuid;not null;index" json:"deal_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	UnitListPrice int64     `gorm:"not null" json:"unit_list_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Deal    Deal    `gorm:"foreignKey:DealID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new deal item
func (di *DealItem) BeforeCreate(tx *gorm.DB) error {
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DealItem model
func (DealItem) TableName() string {
	return "deal_items"
}
