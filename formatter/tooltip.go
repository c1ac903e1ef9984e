package formatter

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/azolika/LogbookTestApp/converter"
)

// cellText renders a display cell as text. nil renders empty; floats keep
// their shortest exact form.
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Tooltip builds the per-row tooltip string: every column as "key: value",
// key and value HTML-escaped, joined with newlines.
func Tooltip(columns []string, row []any) string {
	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(html.EscapeString(col))
		b.WriteString(": ")
		if i < len(row) {
			b.WriteString(html.EscapeString(cellText(row[i])))
		}
	}
	return b.String()
}

// MapPoint is one table row placed on the map overlay.
type MapPoint struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Tooltip string  `json:"tooltip"`
}

// MapPoints extracts the rows carrying valid coordinates in latCol/lonCol
// as map points with their tooltips. Rows without both coordinates are
// skipped.
func MapPoints(t converter.Table, latCol, lonCol string) []MapPoint {
	latIdx, lonIdx := -1, -1
	for i, c := range t.Columns {
		switch c {
		case latCol:
			latIdx = i
		case lonCol:
			lonIdx = i
		}
	}
	if latIdx < 0 || lonIdx < 0 {
		return nil
	}

	var points []MapPoint
	for _, row := range t.Rows {
		if latIdx >= len(row) || lonIdx >= len(row) {
			continue
		}
		lat, okLat := row[latIdx].(float64)
		lon, okLon := row[lonIdx].(float64)
		if !okLat || !okLon {
			continue
		}
		points = append(points, MapPoint{Lat: lat, Lon: lon, Tooltip: Tooltip(t.Columns, row)})
	}
	return points
}
