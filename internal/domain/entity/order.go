package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

// Order represents a web storefront order
type Order struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo    string           `gorm:"size:100;unique;not null" json:"order_no"`
	CustomerID *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Status     enum.OrderStatus `gorm:"default:0" json:"status"`

	// Checkout contact snapshot (guest checkout has no customer row)
	ContactName  string `gorm:"size:255;not null" json:"contact_name"`
	ContactPhone string `gorm:"size:50" json:"contact_phone"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	ShipAddress  string `gorm:"type:text" json:"ship_address"`

	// Amounts in whole PKR
	SubTotal    int64 `gorm:"default:0" json:"sub_total"`
	ShippingFee int64 `gorm:"default:0" json:"shipping_fee"`
	TaxAmount   int64 `gorm:"default:0" json:"tax_amount"`
	Total       int64 `gorm:"default:0" json:"total"`

	TotalItems int       `gorm:"default:0" json:"total_items"`
	OrderDate  time.Time `gorm:"not null" json:"order_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line item on a web order. Name and price are snapshots
// taken at checkout; the line is immutable once the order is finalized.
type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
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
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
