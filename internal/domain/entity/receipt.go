package entity

import (
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

// ReceiptHeader holds the store/business header printed at the top of a
// receipt. Fields left empty by the settings toggles are omitted.
type ReceiptHeader struct {
	LogoURL    string `json:"logo_url,omitempty"`
	StoreName  string `json:"store_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	TaxRegNo   string `json:"tax_reg_no,omitempty"`
	HeaderText string `json:"header_text,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Receipt is a value object representing a printable bill. It is NOT a
// database entity - it is assembled from settings plus a finalized
// sale/order at print time, with every settings toggle already applied.
type Receipt struct {
	Header ReceiptHeader `json:"header"`

	ReceiptNo   string `json:"receipt_no"`
	Date        string `json:"date"`
	Cashier     string `json:"cashier,omitempty"`
	OnlineOrder bool   `json:"online_order,omitempty"`
	Customer    string `json:"customer,omitempty"`
	Payment     string `json:"payment,omitempty"`

	Items []ReceiptItem `json:"items"`

	SubTotal    int64  `json:"sub_total"`
	Discount    int64  `json:"discount,omitempty"`
	ShippingFee int64  `json:"shipping_fee,omitempty"`
	TaxName     string `json:"tax_name,omitempty"`
	TaxAmount   int64  `json:"tax_amount,omitempty"`
	ShowTaxLine bool   `json:"show_tax_line"`
	GrandTotal  int64  `json:"grand_total"`

	CashReceived int64 `json:"cash_received,omitempty"`
	ChangeDue    int64 `json:"change_due,omitempty"`

	FooterText   string `json:"footer_text,omitempty"`
	ReturnPolicy string `json:"return_policy,omitempty"`
	Barcode      string `json:"barcode,omitempty"`
	PoweredBy    string `json:"powered_by"`

	PaperWidth enum.PaperWidth `json:"paper_width"`
	FontSize   enum.FontSize   `json:"font_size"`
}
