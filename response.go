package logbook

import (
	"encoding/json"

	"github.com/azolika/LogbookTestApp/converter"
	"github.com/azolika/LogbookTestApp/formatter"
)

// tablePayload is the JSON rendering of an assembled table.
type tablePayload struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// runMeta surfaces the run's context: the exact upstream request issued,
// the display timezone actually used, and any "no data" notice.
type runMeta struct {
	RequestURL string `json:"request_url,omitempty"`
	Timezone   string `json:"timezone"`
	TZFallback bool   `json:"timezone_fallback,omitempty"`
	Notice     string `json:"notice,omitempty"`
}

type runPayload struct {
	Table     tablePayload             `json:"table"`
	Summary   *converter.EventsSummary `json:"summary,omitempty"`
	MapPoints []formatter.MapPoint     `json:"map_points"`
	Meta      runMeta                  `json:"meta"`
}

// buildRunJSON renders a pipeline run as the JSON response body. The map
// points are taken from the given coordinate columns.
func buildRunJSON(res RunResult, latCol, lonCol string) []byte {
	payload := runPayload{
		Table: tablePayload{
			Columns: res.Table.Columns,
			Rows:    normalizeRows(res.Table),
		},
		Summary:   res.Summary,
		MapPoints: formatter.MapPoints(res.Table, latCol, lonCol),
		Meta: runMeta{
			RequestURL: res.RequestURL,
			Timezone:   res.Timezone,
			TZFallback: res.TZFallback,
			Notice:     res.Notice,
		},
	}
	b, _ := json.Marshal(payload)
	return b
}

// normalizeRows guarantees a non-null rows array in the JSON output.
func normalizeRows(t converter.Table) [][]any {
	if t.Rows == nil {
		return [][]any{}
	}
	return t.Rows
}

func buildErrorPayload(msg string) []byte {
	type errPayload struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	var e errPayload
	e.Error.Description = msg
	b, _ := json.Marshal(e)
	return b
}
