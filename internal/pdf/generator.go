package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/gigledger/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// Generate renders the profession-earnings ranking as a one-page report.
func (g *Generator) Generate(report model.EarningsReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Earnings by profession", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s - %s",
		report.PeriodStart.Format("2006-01-02"),
		report.PeriodEnd.Format("2006-01-02"),
	), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"#", "Profession", "Total earned"}
	colWidths := []float64{15, 110, 55}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for i, row := range report.Professions {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			row.Profession,
			row.TotalEarned.StringFixed(2),
		}
		drawTableRow(pdf, g.fontName, cells, colWidths, false)
	}

	if len(report.Professions) == 0 {
		pdf.Ln(4)
		pdf.CellFormat(0, 6, "No paid jobs in the selected period.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cells []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, cell := range cells {
		align := "L"
		if i == len(cells)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
