package formatter

import (
	"bytes"
	"encoding/csv"

	"github.com/azolika/LogbookTestApp/converter"
	"github.com/azolika/LogbookTestApp/internal"
)

// BuildCSV renders a table as CSV with the column headers as the first
// record.
func BuildCSV(t converter.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range t.Columns {
			if i < len(row) {
				record[i] = cellText(row[i])
			} else {
				record[i] = ""
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	internal.TrackExport("csv")
	return buf.Bytes(), nil
}
