package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

type rgb struct{ r, g, b int }

var pdfTierFill = map[domain.Tier]rgb{
	domain.TierHigh: {198, 239, 206},
	domain.TierMid:  {255, 235, 156},
	domain.TierLow:  {255, 199, 206},
}

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Fach", 95, "L"},
	{"Note", 30, "C"},
	{"Datum", 45, "C"},
}

const pdfRowHeight = 7.0

func writePDF(w io.Writer, report domain.GradeReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Notenübersicht", true)
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Seite %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	tableHeader := func() {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(220, 220, 220)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, pdfRowHeight+1, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Notenübersicht"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Erstellt am "+report.GeneratedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	tableHeader()

	_, pageHeight := pdf.GetPageSize()
	_, bottomMargin := pdf.GetAutoPageBreak()
	for _, row := range report.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-bottomMargin {
			pdf.AddPage()
			tableHeader()
		}
		fill := pdfTierFill[domain.TierFor(row.Value)]
		pdf.SetFillColor(fill.r, fill.g, fill.b)
		values := []string{tr(row.Subject), formatGrade(row.Value), row.Date}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, pdfRowHeight, values[i], "1", 0, col.align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	average := "-"
	if report.HasAverage {
		average = fmt.Sprintf("%.2f", report.Average)
	}
	var tableWidth float64
	for _, col := range pdfColumns {
		tableWidth += col.width
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(tableWidth, 8, "Gesamtdurchschnitt: "+average, "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
