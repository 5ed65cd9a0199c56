package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/apperror"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/printer"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/renderer"
)

const poweredByLine = "Powered by Doctor Planet POS"

// ReceiptService assembles printable receipts from settings plus a
// finalized sale or order, renders them as HTML, and drives the thermal
// printer.
type ReceiptService struct {
	saleRepo    repository.SaleRepository
	orderRepo   repository.OrderRepository
	settings    *SettingsService
	renderer    *renderer.Renderer
	printer     printer.Printer
	printerType string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	saleRepo repository.SaleRepository,
	orderRepo repository.OrderRepository,
	settings *SettingsService,
	htmlRenderer *renderer.Renderer,
	p printer.Printer,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		saleRepo:    saleRepo,
		orderRepo:   orderRepo,
		settings:    settings,
		renderer:    htmlRenderer,
		printer:     p,
		printerType: printerType,
	}
}

// BuildSaleReceipt assembles the receipt for a register sale. Every
// settings toggle is applied here; renderers print what is present and
// never consult settings themselves.
func (s *ReceiptService) BuildSaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		// A bill without the store identity or tax lines is worse than
		// no bill; refuse to produce a partial document.
		return nil, apperror.ErrSettingsUnavailable
	}

	receipt := s.baseReceipt(settings)
	receipt.ReceiptNo = sale.ReceiptNo
	receipt.Date = sale.SaleDate.Format("02 Jan 2006 15:04")
	receipt.Cashier = sale.User.Name
	receipt.Payment = sale.PaymentMethod.String()
	if sale.Customer != nil {
		receipt.Customer = sale.Customer.Name
	}

	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, receiptItem(item.Name, item.Quantity, item.UnitPrice, item.Total, item.Size, item.Color))
	}

	receipt.SubTotal = sale.SubTotal
	receipt.Discount = sale.Discount
	receipt.TaxAmount = sale.TaxAmount
	receipt.GrandTotal = sale.Total

	if sale.PaymentMethod == enum.PaymentMethodCash {
		receipt.CashReceived = sale.AmountReceived
		receipt.ChangeDue = sale.ChangeDue
	}

	if settings.ShowBarcode {
		receipt.Barcode = sale.ReceiptNo
	}

	return receipt, nil
}

// BuildOrderReceipt assembles the bill for a web order.
func (s *ReceiptService) BuildOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, apperror.ErrSettingsUnavailable
	}

	receipt := s.baseReceipt(settings)
	receipt.ReceiptNo = order.OrderNo
	receipt.Date = order.OrderDate.Format("02 Jan 2006 15:04")
	receipt.OnlineOrder = true
	receipt.Customer = order.ContactName

	for _, item := range order.Items {
		receipt.Items = append(receipt.Items, receiptItem(item.Name, item.Quantity, item.UnitPrice, item.Total, item.Size, item.Color))
	}

	receipt.SubTotal = order.SubTotal
	receipt.ShippingFee = order.ShippingFee
	receipt.TaxAmount = order.TaxAmount
	receipt.GrandTotal = order.Total

	if settings.ShowBarcode {
		receipt.Barcode = order.OrderNo
	}

	return receipt, nil
}

// baseReceipt applies the settings toggles to a fresh receipt shell.
func (s *ReceiptService) baseReceipt(settings *entity.BillSettings) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName:  settings.StoreName,
			HeaderText: settings.HeaderText,
		},
		PoweredBy:   poweredByLine,
		PaperWidth:  settings.PaperWidth,
		FontSize:    settings.FontSize,
		ShowTaxLine: settings.TaxEnabled && settings.ShowTaxBreakdown,
	}

	if settings.ShowLogo {
		receipt.Header.LogoURL = settings.LogoURL
	}
	if settings.ShowAddress {
		receipt.Header.Address = settings.StoreAddress
	}
	if settings.ShowPhone {
		receipt.Header.Phone = settings.StorePhone
	}
	if settings.TaxEnabled {
		receipt.TaxName = settings.TaxName
		receipt.Header.TaxRegNo = settings.TaxRegistrationNo
	}
	if settings.ShowReturnPolicy {
		receipt.ReturnPolicy = settings.ReturnPolicyText
	}
	receipt.FooterText = settings.FooterText

	return receipt
}

func receiptItem(name string, qty int, unitPrice, total int64, size, color *string) entity.ReceiptItem {
	item := entity.ReceiptItem{
		Name:      name,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Total:     total,
	}
	if size != nil {
		item.Size = *size
	}
	if color != nil {
		item.Color = *color
	}
	return item
}

// RenderHTML renders a receipt as a self-contained HTML document, the
// format the A4 laser printer and the email path consume.
func (s *ReceiptService) RenderHTML(receipt *entity.Receipt) (string, error) {
	return s.renderer.Render(receipt)
}

// PrintReceipt sends a receipt to the thermal printer. A4 receipts are
// laser-only and are rejected here.
func (s *ReceiptService) PrintReceipt(receipt *entity.Receipt) error {
	if !receipt.PaperWidth.Thermal() {
		return apperror.NewBadRequestError("A4 bills print from the browser, not the thermal printer")
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (%s): %v", receipt.ReceiptNo, err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}

	return nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. Returns the receipt so
// the handler can fall back to JSON when no printer is attached.
func (s *ReceiptService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, apperror.ErrSettingsUnavailable
	}

	receipt := s.baseReceipt(settings)
	receipt.ReceiptNo = "TEST-001"
	receipt.Date = "Test Date"
	receipt.Cashier = "System"
	receipt.Items = []entity.ReceiptItem{
		{Name: "Test Item 1", Quantity: 1, UnitPrice: 100, Total: 100},
		{Name: "Test Item 2", Quantity: 2, UnitPrice: 50, Total: 100},
	}
	receipt.SubTotal = 200
	receipt.GrandTotal = 200

	if !receipt.PaperWidth.Thermal() {
		return receipt, nil
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes sized for the
// configured paper width.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(r.PaperWidth.Columns())

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxRegNo != "" {
		doc.TextF("Tax Reg: %s", r.Header.TaxRegNo)
	}
	if r.Header.HeaderText != "" {
		doc.Text(r.Header.HeaderText)
	}
	if r.OnlineOrder {
		doc.SetBold(true).Text("* ONLINE ORDER *").SetBold(false)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.Payment != "" {
		doc.KeyValue("Payment:", r.Payment)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, renderer.FormatMoney(item.Total))
		if variant := variantLine(item); variant != "" {
			doc.SubLine(variant)
		}
		if item.Quantity > 1 {
			doc.SubLine(fmt.Sprintf("@ %s each", renderer.FormatMoney(item.UnitPrice)))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", renderer.FormatMoney(r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", "-"+renderer.FormatMoney(r.Discount))
	}
	if r.ShowTaxLine && r.TaxName != "" {
		doc.KeyValue(r.TaxName+":", renderer.FormatMoney(r.TaxAmount))
	}
	if r.ShippingFee > 0 {
		doc.KeyValue("Shipping:", renderer.FormatMoney(r.ShippingFee))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", renderer.FormatMoney(r.GrandTotal)).
		SetBold(false)

	if r.CashReceived > 0 {
		doc.KeyValue("Cash:", renderer.FormatMoney(r.CashReceived))
		doc.KeyValue("Change:", renderer.FormatMoney(r.ChangeDue))
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter)
	if r.FooterText != "" {
		doc.Text(r.FooterText)
	}
	if r.ReturnPolicy != "" {
		doc.Text(r.ReturnPolicy)
	}
	if r.Barcode != "" {
		doc.LineFeed().Barcode(r.Barcode)
	}
	doc.LineFeed().
		Text(r.PoweredBy).
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

func variantLine(item entity.ReceiptItem) string {
	switch {
	case item.Size != "" && item.Color != "":
		return fmt.Sprintf("%s / %s", item.Size, item.Color)
	case item.Size != "":
		return item.Size
	case item.Color != "":
		return item.Color
	}
	return ""
}
