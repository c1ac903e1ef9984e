package formatter

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/azolika/LogbookTestApp/converter"
	"github.com/azolika/LogbookTestApp/internal"
)

const xlsxSheet = "logbook"

// BuildXLSX renders a table as an XLSX workbook with one sheet. Numeric
// cells stay numeric; nil cells stay empty.
func BuildXLSX(t converter.Table) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", xlsxSheet)

	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(xlsxSheet, cell, col); err != nil {
			return nil, err
		}
	}

	for r, row := range t.Rows {
		for c := range t.Columns {
			if c >= len(row) || row[c] == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(xlsxSheet, cell, row[c]); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	internal.TrackExport("xlsx")
	return buf.Bytes(), nil
}
