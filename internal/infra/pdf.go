package infra

// pdf.go — PDF order receipt generation using go-pdf/fpdf.
// A receipt is generated when an order reaches delivered and is emailed to the
// customer by the receipt worker. Saved to storagePath/recibo_{order_number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/panteragalgo/awa-app/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF renders the receipt for a delivered order. storagePath is
// created if needed. Returns the absolute path of the generated file.
func GenerateReciboPDF(order *model.Order, businessName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", order.OrderNumber)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "AWA", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Recibo de pedido", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Order info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Pedido %s", order.OrderNumber), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Proveedor: "+businessName, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Entrega: "+order.DeliveryAddress, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, order.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		pdf.CellFormat(col1, 6, truncarNombre(name, 28), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, "$"+order.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	if order.PaymentMethod != nil {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, "Pago: "+*order.PaymentMethod, "", 1, "L", false, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(contentW, 5, "¡Gracias por tu pedido!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// truncarNombre recorta sobre runas, no bytes: un nombre con acentos nunca
// debe quedar con una secuencia UTF-8 partida en el recibo.
func truncarNombre(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max-1]) + "…"
}
