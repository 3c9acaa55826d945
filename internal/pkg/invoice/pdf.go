// internal/pkg/invoice/pdf.go
package invoice

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/techstore-backend/internal/config"
	"github.com/your-org/techstore-backend/internal/domain/order"
	"github.com/your-org/techstore-backend/internal/pkg/currency"
)

// PDFService renders order invoices as PDF documents
type PDFService struct {
	config *config.Config
}

// NewPDFService creates a new invoice PDF service
func NewPDFService(cfg *config.Config) *PDFService {
	return &PDFService{
		config: cfg,
	}
}

// invoiceData is the data passed to the invoice template
type invoiceData struct {
	Order          *order.Order
	InvoiceDate    string
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	Total          string
}

// invoiceLine is one rendered order item row
type invoiceLine struct {
	Name     string
	Quantity int
	Price    string
	Subtotal string
}

// Generate renders the order's invoice and returns the PDF bytes
func (s *PDFService) Generate(o *order.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.generateHTML(o)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *PDFService) generateHTML(o *order.Order) (string, error) {
	tmpl := template.Must(template.New("invoice").Funcs(template.FuncMap{
		"lines": func(items []order.OrderItem) []invoiceLine {
			lines := make([]invoiceLine, len(items))
			for i, item := range items {
				lines[i] = invoiceLine{
					Name:     item.ProductName,
					Quantity: item.Quantity,
					Price:    currency.FormatIDR(item.ProductPrice),
					Subtotal: currency.FormatIDR(item.ProductPrice * int64(item.Quantity)),
				}
			}
			return lines
		},
	}).Parse(invoiceTemplate))

	data := invoiceData{
		Order:          o,
		InvoiceDate:    o.CreatedAt.Format("2 January 2006"),
		CompanyName:    s.config.App.CompanyName,
		CompanyAddress: s.config.App.CompanyAddress,
		CompanyPhone:   s.config.App.CompanyPhone,
		CompanyEmail:   s.config.App.CompanyEmail,
		Total:          currency.FormatIDR(o.TotalAmount),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// Invoice HTML template
const invoiceTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.Order.InvoiceNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 24px; color: #1f2937; }
        .header { display: flex; justify-content: space-between; border-bottom: 2px solid #2563eb; padding-bottom: 16px; }
        .company h1 { margin: 0; color: #2563eb; font-size: 22px; }
        .company p { margin: 2px 0; font-size: 12px; color: #6b7280; }
        .meta { text-align: right; font-size: 13px; }
        .meta .invoice-number { font-size: 16px; font-weight: bold; }
        .shipping { margin-top: 24px; font-size: 13px; }
        .shipping h2 { font-size: 13px; text-transform: uppercase; color: #6b7280; margin-bottom: 4px; }
        table { width: 100%; border-collapse: collapse; margin-top: 24px; font-size: 13px; }
        th { background: #f3f4f6; text-align: left; padding: 8px; border-bottom: 1px solid #d1d5db; }
        td { padding: 8px; border-bottom: 1px solid #e5e7eb; }
        .num { text-align: right; }
        .total-row td { font-weight: bold; border-top: 2px solid #2563eb; border-bottom: none; }
        .status { margin-top: 16px; font-size: 12px; color: #6b7280; }
    </style>
</head>
<body>
    <div class="header">
        <div class="company">
            <h1>{{.CompanyName}}</h1>
            <p>{{.CompanyAddress}}</p>
            <p>{{.CompanyPhone}} &middot; {{.CompanyEmail}}</p>
        </div>
        <div class="meta">
            <div class="invoice-number">{{.Order.InvoiceNumber}}</div>
            <div>{{.InvoiceDate}}</div>
        </div>
    </div>

    <div class="shipping">
        <h2>Shipped To</h2>
        <p>{{.Order.ShippingName}}<br>{{.Order.ShippingPhone}}<br>{{.Order.ShippingAddress}}</p>
    </div>

    <table>
        <thead>
            <tr>
                <th>Product</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Subtotal</th>
            </tr>
        </thead>
        <tbody>
            {{range lines .Order.Items}}
            <tr>
                <td>{{.Name}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">{{.Price}}</td>
                <td class="num">{{.Subtotal}}</td>
            </tr>
            {{end}}
            <tr class="total-row">
                <td colspan="3">Total</td>
                <td class="num">{{.Total}}</td>
            </tr>
        </tbody>
    </table>

    <div class="status">
        Payment: {{.Order.PaymentMethod}} ({{.Order.PaymentStatus}}) &middot; Order status: {{.Order.OrderStatus}}
    </div>
</body>
</html>
`
