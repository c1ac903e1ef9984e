package converter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/azolika/LogbookTestApp/telematics"
	"github.com/azolika/LogbookTestApp/utils"
)

// EventColumns is the fixed column order of shaped (pre-assembly) event
// rows, with the per-row distance step still in place.
var EventColumns = []string{
	ColEventType, ColStart, ColEnd, ColDuration,
	ColLatitude, ColLongitude, ColAddress,
	ColStepKM, ColFuelLevel, ColDriverID, ColRawID,
}

// EventsTableColumns is the column order of the assembled events table:
// the step column is gone and the cumulative column is appended last.
var EventsTableColumns = []string{
	ColEventType, ColStart, ColEnd, ColDuration,
	ColLatitude, ColLongitude, ColAddress,
	ColFuelLevel, ColDriverID, ColRawID, ColCumulativeKM,
}

// ShapeEvent maps one raw event into a display row. Every defect is
// defaulted locally; shaping a malformed record never fails.
func ShapeEvent(e telematics.Event, loc *time.Location, defects *DefectAggregator) EventRow {
	id := rawScalar(e.ID)

	var lat, lon any
	addr := ""
	if e.Location != nil {
		if e.Location.Latitude != nil {
			lat = *e.Location.Latitude
		}
		if e.Location.Longitude != nil {
			lon = *e.Location.Longitude
		}
		addr = JoinAddress(e.Location.Address)
	} else {
		defects.Add(DefectMissingLocation, id)
	}

	eventType := ""
	if e.EventType != nil {
		eventType = *e.EventType
	}
	// REFUEL and DRAIN surface the raw fuel readings in the address cell,
	// overriding the joined address.
	switch strings.ToUpper(eventType) {
	case "REFUEL", "DRAIN":
		addr = fmt.Sprintf("%s | %s | %s",
			rawScalar(e.FuelLevelStart), rawScalar(e.FuelLevelEnd), rawScalar(e.FuelDifference))
	}

	start := FormatEventTimestamp(e.EventStart, loc)
	if start == nil && e.EventStart != nil && *e.EventStart != "" {
		defects.Add(DefectBadStartTimestamp, id)
	}
	end := FormatEventTimestamp(e.EventEnd, loc)
	if end == nil && e.EventEnd != nil && *e.EventEnd != "" {
		defects.Add(DefectBadEndTimestamp, id)
	}

	if _, ok := toFloat(e.Mileage); !ok && e.Mileage != nil {
		defects.Add(DefectBadMileage, id)
	}

	var rowType any
	if e.EventType != nil {
		rowType = *e.EventType
	}

	return EventRow{
		EventType: rowType,
		Start:     start,
		End:       end,
		Duration:  EventDuration(e.DurationSec),
		Latitude:  lat,
		Longitude: lon,
		Address:   addr,
		StepKM:    KilometersFromMeters(e.Mileage),
		FuelLevel: e.FuelLevel,
		DriverID:  firstDriver(e.DriverIDs),
		RawID:     e.ID,
	}
}

// ShapeEvents shapes a batch. One bad record never aborts the rest.
func ShapeEvents(events []telematics.Event, loc *time.Location, defects *DefectAggregator) []EventRow {
	rows := make([]EventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, ShapeEvent(e, loc, defects))
	}
	return rows
}

// SortEventRows returns a new slice stable-sorted ascending by the parsed
// Start cell. Rows with a missing or unparsable Start sort as the minimum
// instant and keep their relative input order.
func SortEventRows(rows []EventRow) []EventRow {
	out := make([]EventRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return startInstant(out[i]).Before(startInstant(out[j]))
	})
	return out
}

func startInstant(r EventRow) time.Time {
	s, ok := r.Start.(string)
	if !ok {
		return time.Time{}
	}
	t, err := utils.ParseISO(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BuildEventsTable assembles the events table: rows are sorted by Start and
// the step column is replaced by a cumulative column holding, for each row,
// the sum of the steps strictly before it. Row 0 is always 0.0.
func BuildEventsTable(rows []EventRow) Table {
	sorted := SortEventRows(rows)
	cells := make([][]any, 0, len(sorted))
	cumulative := 0.0
	for _, r := range sorted {
		cells = append(cells, []any{
			r.EventType, r.Start, r.End, r.Duration,
			r.Latitude, r.Longitude, r.Address,
			r.FuelLevel, r.DriverID, r.RawID, cumulative,
		})
		cumulative += r.StepKM
	}
	return Table{Columns: EventsTableColumns, Rows: cells}
}

// EventsSummary is the footer of an assembled events table.
type EventsSummary struct {
	Events            int    `json:"events"`
	TotalDuration     string `json:"total_duration"`
	FinalCumulativeKM string `json:"final_cumulative_km"`
}

// SummarizeEvents computes the footer of an events table: row count, the
// sum of all parsable H:MM:SS duration cells, and the last row's cumulative
// distance. Unparsable duration cells are skipped.
func SummarizeEvents(t Table) EventsSummary {
	durIdx := columnIndex(t.Columns, ColDuration)
	cumIdx := columnIndex(t.Columns, ColCumulativeKM)

	totalSeconds := 0
	for _, row := range t.Rows {
		if durIdx < 0 || durIdx >= len(row) {
			continue
		}
		if s, ok := row[durIdx].(string); ok {
			if sec, ok := parseDuration(s); ok {
				totalSeconds += sec
			}
		}
	}

	finalKM := "0.000"
	if len(t.Rows) > 0 && cumIdx >= 0 {
		last := t.Rows[len(t.Rows)-1]
		if cumIdx < len(last) {
			if km, ok := last[cumIdx].(float64); ok {
				finalKM = fmt.Sprintf("%.3f", km)
			}
		}
	}

	return EventsSummary{
		Events:            len(t.Rows),
		TotalDuration:     FormatDurationSec(totalSeconds),
		FinalCumulativeKM: finalKM,
	}
}

func parseDuration(s string) (int, bool) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, false
	}
	return h*3600 + m*60 + sec, true
}

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}
