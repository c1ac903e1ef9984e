package utils

import (
	"errors"
	"time"
)

const isoZLayout = "2006-01-02T15:04:05Z"

// isoLayouts are accepted on parse, in order. The fractional-second part is
// implicit: time.Parse tolerates it after the seconds field for every layout.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// IsoZ formats an instant as an ISO8601 UTC string with a literal Z suffix,
// the form both upstream APIs expect for from/to parameters.
func IsoZ(t time.Time) string {
	return t.UTC().Format(isoZLayout)
}

// ParseISO parses an ISO8601 timestamp. A missing offset is read as UTC.
func ParseISO(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var err error
	for _, layout := range isoLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// DayRangeUTC builds the UTC request window for an inclusive range of local
// calendar dates: 00:00:00 on the first day to 23:59:00 on the last, both in
// loc, converted to UTC.
func DayRangeUTC(fromDate, toDate string, loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", fromDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.ParseInLocation("2006-01-02", toDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("end date precedes start date")
	}
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 0, 0, loc)
	return start.UTC(), end.UTC(), nil
}

// TodayIn returns today's calendar date in loc as YYYY-MM-DD.
func TodayIn(loc *time.Location) string {
	return time.Now().In(loc).Format("2006-01-02")
}

// LocationOr resolves an IANA timezone name, falling back when the name is
// empty or unknown. The second result reports whether the fallback was used.
func LocationOr(name string, fallback *time.Location) (*time.Location, bool) {
	if name == "" {
		return fallback, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback, true
	}
	return loc, false
}
