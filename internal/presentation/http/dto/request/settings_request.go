package request

// UpdateSettingsRequest represents a bill settings update. Every field
// is optional; only the provided ones change.
type UpdateSettingsRequest struct {
	StoreName    *string `json:"store_name" binding:"omitempty,min=1,max=255"`
	StoreAddress *string `json:"store_address"`
	StorePhone   *string `json:"store_phone" binding:"omitempty,max=50"`
	StoreEmail   *string `json:"store_email" binding:"omitempty,email"`
	LogoURL      *string `json:"logo_url"`

	ShowLogo         *bool `json:"show_logo"`
	ShowAddress      *bool `json:"show_address"`
	ShowPhone        *bool `json:"show_phone"`
	ShowReturnPolicy *bool `json:"show_return_policy"`
	ShowBarcode      *bool `json:"show_barcode"`

	PaperWidth *string `json:"paper_width" binding:"omitempty,oneof=58mm 80mm A4"`
	FontSize   *string `json:"font_size" binding:"omitempty,oneof=small normal large"`

	HeaderText       *string `json:"header_text"`
	FooterText       *string `json:"footer_text"`
	ReturnPolicyText *string `json:"return_policy_text"`

	TaxEnabled        *bool    `json:"tax_enabled"`
	TaxName           *string  `json:"tax_name" binding:"omitempty,max=50"`
	TaxRate           *float64 `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	TaxInclusive      *bool    `json:"tax_inclusive"`
	ShowTaxBreakdown  *bool    `json:"show_tax_breakdown"`
	TaxRegistrationNo *string  `json:"tax_registration_no" binding:"omitempty,max=100"`
}
