package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/billing"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

// BillSettings holds the store identity and bill formatting preferences.
// A single row exists; every receipt render reads it.
type BillSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Store identity
	StoreName    string `gorm:"size:255;not null" json:"store_name"`
	StoreAddress string `gorm:"type:text" json:"store_address"`
	StorePhone   string `gorm:"size:50" json:"store_phone"`
	StoreEmail   string `gorm:"size:255" json:"store_email"`
	LogoURL      string `gorm:"size:255" json:"logo_url"`

	// Content toggles
	ShowLogo         bool `gorm:"default:true" json:"show_logo"`
	ShowAddress      bool `gorm:"default:true" json:"show_address"`
	ShowPhone        bool `gorm:"default:true" json:"show_phone"`
	ShowReturnPolicy bool `gorm:"default:true" json:"show_return_policy"`
	ShowBarcode      bool `gorm:"default:false" json:"show_barcode"`

	// Layout
	PaperWidth enum.PaperWidth `gorm:"default:1" json:"paper_width"`
	FontSize   enum.FontSize   `gorm:"default:1" json:"font_size"`

	// Free-form receipt text
	HeaderText       string `gorm:"type:text" json:"header_text"`
	FooterText       string `gorm:"type:text" json:"footer_text"`
	ReturnPolicyText string `gorm:"type:text" json:"return_policy_text"`

	// Tax configuration
	TaxEnabled       bool    `gorm:"default:false" json:"tax_enabled"`
	TaxName          string  `gorm:"size:50;default:'GST'" json:"tax_name"`
	TaxRate          float64 `gorm:"default:0" json:"tax_rate"`
	TaxInclusive     bool    `gorm:"default:false" json:"tax_inclusive"`
	ShowTaxBreakdown bool    `gorm:"default:true" json:"show_tax_breakdown"`
	TaxRegistrationNo string `gorm:"size:100" json:"tax_registration_no"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *BillSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillSettings model
func (BillSettings) TableName() string {
	return "bill_settings"
}

// DefaultBillSettings returns the settings row seeded on first boot.
func DefaultBillSettings() *BillSettings {
	return &BillSettings{
		StoreName:        "Doctor Planet",
		ShowLogo:         true,
		ShowAddress:      true,
		ShowPhone:        true,
		ShowReturnPolicy: true,
		PaperWidth:       enum.PaperWidth80mm,
		FontSize:         enum.FontSizeNormal,
		FooterText:       "Thank you for shopping with us!",
		TaxName:          "GST",
		ShowTaxBreakdown: true,
	}
}

// TaxConfig returns the calculator input derived from the settings row.
func (s *BillSettings) TaxConfig() billing.TaxConfig {
	return billing.TaxConfig{
		Enabled:     s.TaxEnabled,
		RatePercent: s.TaxRate,
		Inclusive:   s.TaxInclusive,
	}
}
