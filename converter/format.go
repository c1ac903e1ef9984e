package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/azolika/LogbookTestApp/telematics"
	"github.com/azolika/LogbookTestApp/utils"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// KilometersFromMeters converts a raw meters value to kilometers rounded to
// 3 decimals. The value may arrive as a number, a numeric string or nil;
// anything that fails numeric coercion yields 0.0. The source value is
// never modified.
func KilometersFromMeters(v any) float64 {
	f, ok := toFloat(v)
	if !ok {
		return 0.0
	}
	return math.Round(f) / 1000.0
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FormatDurationSec renders whole seconds as H:MM:SS with unpadded hours.
// Durations of a day or more keep accumulating hours ("26:03:04") so the
// output stays parseable by the summary accumulator.
func FormatDurationSec(sec int) string {
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// EventDuration formats an event's duration. Events without one keep nil.
func EventDuration(sec *float64) any {
	if sec == nil {
		return nil
	}
	return FormatDurationSec(int(*sec))
}

// TripDuration formats a trip's duration. Trips always carry a duration
// value, so a missing one defaults to "0:00:00".
func TripDuration(sec *float64) string {
	if sec == nil {
		return "0:00:00"
	}
	return FormatDurationSec(int(*sec))
}

// FormatEventTimestamp parses an ISO-8601 timestamp and renders it in the
// display timezone as "YYYY-MM-DD HH:MM:SS". Missing or unparsable input
// yields nil.
//
// FormatEventTimestamp and FormatTripTimestamp differ only in their failure
// value. The divergence is carried over from the two upstream dashboards
// and is kept as two named functions until the owning team confirms it can
// be unified.
func FormatEventTimestamp(s *string, loc *time.Location) any {
	if s == nil || *s == "" {
		return nil
	}
	t, err := utils.ParseISO(*s)
	if err != nil {
		return nil
	}
	return t.In(loc).Format(displayTimeLayout)
}

// FormatTripTimestamp parses an ISO-8601 timestamp and renders it in the
// display timezone as "YYYY-MM-DD HH:MM:SS". Unparsable input is passed
// through unchanged.
func FormatTripTimestamp(s string, loc *time.Location) string {
	t, err := utils.ParseISO(s)
	if err != nil {
		return s
	}
	return t.In(loc).Format(displayTimeLayout)
}

// JoinAddress concatenates the non-empty address parts in fixed order:
// street, house number, locality, region (falling back to county), country.
// A nil address yields "".
func JoinAddress(addr *telematics.AddressParts) string {
	if addr == nil {
		return ""
	}
	regional := addr.Region.String()
	if regional == "" {
		regional = addr.County.String()
	}
	candidates := []string{
		addr.Street.String(),
		addr.HouseNumber.String(),
		addr.Locality.String(),
		regional,
		addr.Country.String(),
	}
	parts := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// rawScalar renders an upstream value for columns that surface it without
// conversion. nil renders empty.
func rawScalar(v any) string {
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

func firstDriver(ids []telematics.FlexString) any {
	if len(ids) == 0 {
		return nil
	}
	return ids[0].String()
}
