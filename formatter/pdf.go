package formatter

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/azolika/LogbookTestApp/converter"
	"github.com/azolika/LogbookTestApp/internal"
)

// BuildPDF renders a table as a landscape A4 PDF grid. Long cell values are
// truncated to their column width; the table is data-dense, so the PDF is a
// printable snapshot rather than a faithful export (use CSV/XLSX for that).
func BuildPDF(t converter.Table, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, translate(title))
	pdf.Ln(10)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(t.Columns))

	pdf.SetFont("Arial", "B", 7)
	for _, col := range t.Columns {
		pdf.CellFormat(colW, 6, translate(col), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, row := range t.Rows {
		for i := range t.Columns {
			text := ""
			if i < len(row) {
				text = cellText(row[i])
			}
			pdf.CellFormat(colW, 6, translate(clip(text, 28)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	internal.TrackExport("pdf")
	return buf.Bytes(), nil
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
