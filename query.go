package logbook

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

const dateLayout = "2006-01-02"

// LogbookQuery is one validated pipeline request.
type LogbookQuery struct {
	VehicleID       string
	FromDate        string
	ToDate          string
	StationaryUnder int
	Timezone        string
}

// ParseLogbookQuery validates the query parameters of a pipeline request.
// Dates default to defaultDate (today in the display timezone); the
// stationary filter must be an integer between 0 and 99 and only matters to
// the events pipeline, where the API excludes stops shorter than it.
func ParseLogbookQuery(values url.Values, defaultDate string) (LogbookQuery, error) {
	q := LogbookQuery{
		VehicleID: strings.TrimSpace(values.Get("vehicle_id")),
		FromDate:  strings.TrimSpace(values.Get("from_date")),
		ToDate:    strings.TrimSpace(values.Get("to_date")),
		Timezone:  strings.TrimSpace(values.Get("tz")),
	}

	if q.VehicleID == "" {
		return q, &QueryError{Msg: "You must provide a vehicle_id."}
	}

	if q.FromDate == "" {
		q.FromDate = defaultDate
	}
	if q.ToDate == "" {
		q.ToDate = defaultDate
	}
	from, err := time.Parse(dateLayout, q.FromDate)
	if err != nil {
		return q, &QueryError{Msg: "from_date must be a YYYY-MM-DD date."}
	}
	to, err := time.Parse(dateLayout, q.ToDate)
	if err != nil {
		return q, &QueryError{Msg: "to_date must be a YYYY-MM-DD date."}
	}
	if to.Before(from) {
		return q, &QueryError{Msg: "to_date cannot precede from_date."}
	}

	if s := strings.TrimSpace(values.Get("stationary_under")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 99 {
			return q, &QueryError{Msg: "stationary_under must be an integer between 0 and 99."}
		}
		q.StationaryUnder = v
	}

	return q, nil
}
