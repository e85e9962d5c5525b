package infra

// pdf.go: invoice PDF rendering using go-pdf/fpdf. Letter-size statement
// with a business header, client and billing period, a transaction table
// (date, time, reference, description, amount) and a bold total.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// InvoiceLine is one billed item as printed on the invoice.
type InvoiceLine struct {
	Date        string
	Time        string
	Reference   string
	Description string
	Amount      decimal.Decimal
}

type InvoiceData struct {
	BusinessName string
	ClientName   string
	Period       string // display string, e.g. "July 1st to July 31st 2025"
	Lines        []InvoiceLine
	Total        decimal.Decimal
}

// RenderInvoicePDF writes the invoice to path, creating parent directories
// as needed.
func RenderInvoicePDF(path string, data InvoiceData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("pdf: create output dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, data.BusinessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Statement of Account", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.6, 6, data.ClientName, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW*0.4, 6, data.Period, "", 1, "R", false, 0, "")
	pdf.Ln(3)

	col := []float64{contentW * 0.15, contentW * 0.10, contentW * 0.12, contentW * 0.45, contentW * 0.18}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col[0], 6, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[1], 6, "Time", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[2], 6, "Check", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[3], 6, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[4], 6, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range data.Lines {
		desc := line.Description
		if len(desc) > 48 {
			desc = desc[:45] + "..."
		}
		pdf.CellFormat(col[0], 5.5, line.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 5.5, line.Time, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[2], 5.5, "#"+line.Reference, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[3], 5.5, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[4], 5.5, "$"+line.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col[0]+col[1]+col[2]+col[3], 7, "TOTAL:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col[4], 7, "$"+data.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: write file: %w", err)
	}
	return nil
}
