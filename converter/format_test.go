package converter

import (
	"testing"
	"time"

	"github.com/azolika/LogbookTestApp/telematics"
)

func TestKilometersFromMeters(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0.0},
		{"numeric string", "1000", 1.0},
		{"integer meters", 1234.0, 1.234},
		{"rounds to 3 decimals", 3326.4, 3.326},
		{"non-numeric string", "n/a", 0.0},
		{"bool", true, 0.0},
		{"zero", 0.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KilometersFromMeters(tt.in); got != tt.want {
				t.Errorf("KilometersFromMeters(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinAddress(t *testing.T) {
	full := &telematics.AddressParts{
		Street:      "Str",
		HouseNumber: "10",
		Locality:    "Cluj",
		Country:     "RO",
	}
	if got := JoinAddress(full); got != "Str, 10, Cluj, RO" {
		t.Errorf("got %q", got)
	}

	if got := JoinAddress(nil); got != "" {
		t.Errorf("nil address should join to empty string, got %q", got)
	}

	regionOnly := &telematics.AddressParts{Locality: "Oradea", Region: "Bihor"}
	if got := JoinAddress(regionOnly); got != "Oradea, Bihor" {
		t.Errorf("region should fill the regional slot, got %q", got)
	}

	countyOnly := &telematics.AddressParts{Locality: "Oradea", County: "Bihor"}
	if got := JoinAddress(countyOnly); got != "Oradea, Bihor" {
		t.Errorf("county should fill the regional slot when region is empty, got %q", got)
	}

	both := &telematics.AddressParts{Region: "Cluj", County: "CJ"}
	if got := JoinAddress(both); got != "Cluj" {
		t.Errorf("region wins over county, got %q", got)
	}
}

func TestFormatDurationSec(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "0:00:00"},
		{81, "0:01:21"},
		{3661, "1:01:01"},
		{93784, "26:03:04"},
	}
	for _, tt := range tests {
		if got := FormatDurationSec(tt.sec); got != tt.want {
			t.Errorf("FormatDurationSec(%d) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestEventAndTripDuration(t *testing.T) {
	if got := EventDuration(nil); got != nil {
		t.Errorf("event duration for nil should stay nil, got %v", got)
	}
	sec := 81.0
	if got := EventDuration(&sec); got != "0:01:21" {
		t.Errorf("got %v", got)
	}
	if got := TripDuration(nil); got != "0:00:00" {
		t.Errorf("trip duration for nil should default, got %q", got)
	}
}

func TestTimestampFormatters(t *testing.T) {
	bucharest, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		t.Fatalf("loading timezone: %v", err)
	}

	raw := "2025-09-29T07:30:24.000Z"
	// UTC+3 in late September
	if got := FormatEventTimestamp(&raw, bucharest); got != "2025-09-29 10:30:24" {
		t.Errorf("event timestamp = %v", got)
	}
	if got := FormatTripTimestamp(raw, bucharest); got != "2025-09-29 10:30:24" {
		t.Errorf("trip timestamp = %v", got)
	}

	// The two formatters diverge on failure: events go nil, trips pass the
	// raw string through.
	bad := "not-a-timestamp"
	if got := FormatEventTimestamp(&bad, bucharest); got != nil {
		t.Errorf("unparsable event timestamp should be nil, got %v", got)
	}
	if got := FormatTripTimestamp(bad, bucharest); got != bad {
		t.Errorf("unparsable trip timestamp should pass through, got %q", got)
	}
	if got := FormatEventTimestamp(nil, bucharest); got != nil {
		t.Errorf("nil event timestamp should be nil, got %v", got)
	}
}
