// Package renderer turns a receipt value object into a self-contained
// printable HTML fragment. Rendering is a pure transform: the same
// receipt always produces byte-identical markup.
package renderer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

// Renderer renders receipts to printable HTML.
type Renderer struct {
	tmpl *template.Template
}

// New parses the receipt template and returns a ready Renderer.
func New() (*Renderer, error) {
	tmpl, err := template.New("receipt").Funcs(template.FuncMap{
		"money":    FormatMoney,
		"paperCSS": paperCSS,
	}).Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("renderer: failed to parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the printable HTML fragment for a receipt.
func (r *Renderer) Render(receipt *entity.Receipt) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, receipt); err != nil {
		return "", fmt.Errorf("renderer: failed to render receipt %s: %w", receipt.ReceiptNo, err)
	}
	return sb.String(), nil
}

// FormatMoney renders a whole-rupee amount with thousands separators,
// e.g. 12500 -> "Rs 12,500".
func FormatMoney(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "Rs -" + sb.String()
	}
	return "Rs " + sb.String()
}

func paperCSS(w enum.PaperWidth) string {
	switch w {
	case enum.PaperWidth58mm:
		return "width:58mm"
	case enum.PaperWidth80mm:
		return "width:80mm"
	default:
		return "width:210mm;padding:20mm"
	}
}

const receiptTemplate = `<div class="receipt" style="{{paperCSS .PaperWidth}};font-family:monospace;font-size:{{.FontSize.Points}}pt">
<div class="receipt-header" style="text-align:center">
{{- if .Header.LogoURL}}
<img src="{{.Header.LogoURL}}" alt="logo" class="receipt-logo">
{{- end}}
<div class="store-name" style="font-weight:bold">{{.Header.StoreName}}</div>
{{- if .Header.Address}}
<div>{{.Header.Address}}</div>
{{- end}}
{{- if .Header.Phone}}
<div>{{.Header.Phone}}</div>
{{- end}}
{{- if .Header.TaxRegNo}}
<div>Tax Reg No: {{.Header.TaxRegNo}}</div>
{{- end}}
{{- if .Header.HeaderText}}
<div>{{.Header.HeaderText}}</div>
{{- end}}
</div>
<hr>
<div class="receipt-meta">
<div>Receipt: {{.ReceiptNo}}</div>
<div>Date: {{.Date}}</div>
{{- if .Cashier}}
<div>Cashier: {{.Cashier}}</div>
{{- end}}
{{- if .OnlineOrder}}
<div class="badge">ONLINE ORDER</div>
{{- end}}
{{- if .Customer}}
<div>Customer: {{.Customer}}</div>
{{- end}}
{{- if .Payment}}
<div>Payment: {{.Payment}}</div>
{{- end}}
</div>
<hr>
<table class="receipt-items" style="width:100%">
{{- range .Items}}
<tr><td>{{.Quantity}}x {{.Name}}</td><td style="text-align:right">{{money .Total}}</td></tr>
{{- if or .Size .Color}}
<tr><td colspan="2" class="variant">&nbsp;&nbsp;{{if .Size}}Size: {{.Size}}{{end}}{{if and .Size .Color}} / {{end}}{{if .Color}}Color: {{.Color}}{{end}}</td></tr>
{{- end}}
{{- if gt .Quantity 1}}
<tr><td colspan="2" class="variant">&nbsp;&nbsp;@ {{money .UnitPrice}} each</td></tr>
{{- end}}
{{- end}}
</table>
<hr>
<table class="receipt-totals" style="width:100%">
<tr><td>Subtotal</td><td style="text-align:right">{{money .SubTotal}}</td></tr>
{{- if gt .Discount 0}}
<tr><td>Discount</td><td style="text-align:right">-{{money .Discount}}</td></tr>
{{- end}}
{{- if .ShowTaxLine}}
<tr><td>{{.TaxName}}</td><td style="text-align:right">{{money .TaxAmount}}</td></tr>
{{- end}}
{{- if gt .ShippingFee 0}}
<tr><td>Shipping</td><td style="text-align:right">{{money .ShippingFee}}</td></tr>
{{- end}}
<tr style="font-weight:bold"><td>TOTAL</td><td style="text-align:right">{{money .GrandTotal}}</td></tr>
{{- if gt .CashReceived 0}}
<tr><td>Cash</td><td style="text-align:right">{{money .CashReceived}}</td></tr>
<tr><td>Change</td><td style="text-align:right">{{money .ChangeDue}}</td></tr>
{{- end}}
</table>
<hr>
<div class="receipt-footer" style="text-align:center">
{{- if .FooterText}}
<div>{{.FooterText}}</div>
{{- end}}
{{- if .ReturnPolicy}}
<div class="return-policy">{{.ReturnPolicy}}</div>
{{- end}}
{{- if .Barcode}}
<div class="barcode" data-code="{{.Barcode}}">*{{.Barcode}}*</div>
{{- end}}
<div class="powered-by">{{.PoweredBy}}</div>
</div>
</div>
`
