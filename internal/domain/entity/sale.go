package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

// Sale represents a point-of-sale register transaction. Sales are
// terminal once created; deleting one restores the decremented stock.
type Sale struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo  string     `gorm:"size:100;unique;not null" json:"receipt_no"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`

	// Amounts in whole PKR
	SubTotal  int64 `gorm:"default:0" json:"sub_total"`
	Discount  int64 `gorm:"default:0" json:"discount"`
	TaxAmount int64 `gorm:"default:0" json:"tax_amount"`
	Total     int64 `gorm:"default:0" json:"total"`

	PaymentMethod  enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	AmountReceived int64              `gorm:"default:0" json:"amount_received"`
	ChangeDue      int64              `gorm:"default:0" json:"change_due"`

	TotalItems int       `gorm:"default:0" json:"total_items"`
	SaleDate   time.Time `gorm:"not null" json:"sale_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User       `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a line item on a POS sale. Lines that came out of a deal
// bundle share a BundleID so the register can show and void them as one
// unit; their UnitPrice already carries the prorated bundle discount.
type SaleItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Quantity  int        `gorm:"not null" json:"quantity"`
	UnitPrice int64      `gorm:"not null" json:"unit_price"`
	Total     int64      `gorm:"not null" json:"total"`
	Size      *string    `gorm:"size:50" json:"size,omitempty"`
	Color     *string    `gorm:"size:50" json:"color,omitempty"`
	BundleID  *uuid.UUID `gorm:"type:uuid;index" json:"bundle_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
