package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

// UdharTransaction is a shop credit ledger entry between the business
// and a customer. Invariants: Paid <= Total, and the sum of the payment
// records always equals Paid.
type UdharTransaction struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	SaleID     *uuid.UUID `gorm:"type:uuid;index" json:"sale_id,omitempty"`

	Total   int64            `gorm:"not null" json:"total"`
	Paid    int64            `gorm:"default:0" json:"paid"`
	DueDate time.Time        `gorm:"not null" json:"due_date"`
	Status  enum.UdharStatus `gorm:"default:0" json:"status"`
	Notes   *string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Payments []UdharPayment `gorm:"foreignKey:UdharID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new udhar transaction
func (u *UdharTransaction) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UdharTransaction model
func (UdharTransaction) TableName() string {
	return "udhar_transactions"
}

// Remaining returns the outstanding balance.
func (u *UdharTransaction) Remaining() int64 {
	return u.Total - u.Paid
}

// DeriveStatus computes the status from the balance and due date.
// A fully-settled ledger is PAID regardless of the due date.
func (u *UdharTransaction) DeriveStatus(now time.Time) enum.UdharStatus {
	remaining := u.Remaining()
	if remaining <= 0 {
		return enum.UdharStatusPaid
	}
	if now.After(u.DueDate) {
		return enum.UdharStatusOverdue
	}
	if u.Paid > 0 {
		return enum.UdharStatusPartial
	}
	return enum.UdharStatusUnpaid
}

// UdharPayment is one repayment against a ledger entry.
type UdharPayment struct {
	ID      uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UdharID uuid.UUID          `gorm:"type:uuid;not null;index" json:"udhar_id"`
	Amount  int64              `gorm:"not null" json:"amount"`
	Method  enum.PaymentMethod `gorm:"default:0" json:"method"`
	PaidAt  time.Time          `gorm:"not null" json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Udhar UdharTransaction `gorm:"foreignKey:UdharID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *UdharPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UdharPayment model
func (UdharPayment) TableName() string {
	return "udhar_payments"
}
