package logbook

import (
	"net/url"
	"testing"
)

func TestParseLogbookQuery(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		wantErr string
	}{
		{
			name:    "missing vehicle",
			values:  url.Values{},
			wantErr: "You must provide a vehicle_id.",
		},
		{
			name:    "bad from date",
			values:  url.Values{"vehicle_id": {"v1"}, "from_date": {"29.09.2025"}},
			wantErr: "from_date must be a YYYY-MM-DD date.",
		},
		{
			name:    "reversed range",
			values:  url.Values{"vehicle_id": {"v1"}, "from_date": {"2025-09-29"}, "to_date": {"2025-09-28"}},
			wantErr: "to_date cannot precede from_date.",
		},
		{
			name:    "stationary out of range",
			values:  url.Values{"vehicle_id": {"v1"}, "stationary_under": {"100"}},
			wantErr: "stationary_under must be an integer between 0 and 99.",
		},
		{
			name:    "stationary not a number",
			values:  url.Values{"vehicle_id": {"v1"}, "stationary_under": {"five"}},
			wantErr: "stationary_under must be an integer between 0 and 99.",
		},
		{
			name:   "valid",
			values: url.Values{"vehicle_id": {"v1"}, "from_date": {"2025-09-28"}, "to_date": {"2025-09-29"}, "stationary_under": {"15"}, "tz": {"Europe/Bucharest"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseLogbookQuery(tt.values, "2025-09-29")
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("expected error %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.StationaryUnder != 15 || q.Timezone != "Europe/Bucharest" {
				t.Errorf("unexpected query %+v", q)
			}
		})
	}
}

func TestParseLogbookQueryDefaultsDates(t *testing.T) {
	q, err := ParseLogbookQuery(url.Values{"vehicle_id": {"v1"}}, "2025-09-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.FromDate != "2025-09-29" || q.ToDate != "2025-09-29" {
		t.Errorf("dates should default to today, got %+v", q)
	}
}
