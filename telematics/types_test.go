package telematics

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "string", input: `"10"`, expected: "10"},
		{name: "integer", input: `10`, expected: "10"},
		{name: "float", input: `10.5`, expected: "10.5"},
		{name: "null", input: `null`, expected: ""},
		{name: "object ignored", input: `{"a":1}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(f) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, string(f))
			}
		})
	}
}

func TestAddressPartsUnmarshal(t *testing.T) {
	t.Run("object with numeric house number", func(t *testing.T) {
		var a AddressParts
		err := json.Unmarshal([]byte(`{"street":"Str","house_number":10,"locality":"Cluj","country":"RO"}`), &a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Street != "Str" || a.HouseNumber != "10" || a.Locality != "Cluj" || a.Country != "RO" {
			t.Errorf("unexpected parts: %+v", a)
		}
	})

	t.Run("null address", func(t *testing.T) {
		var a AddressParts
		if err := json.Unmarshal([]byte(`null`), &a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != (AddressParts{}) {
			t.Errorf("expected zero value, got %+v", a)
		}
	})

	t.Run("non-object address", func(t *testing.T) {
		var a AddressParts
		if err := json.Unmarshal([]byte(`"Strada Mare 5"`), &a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != (AddressParts{}) {
			t.Errorf("expected zero value, got %+v", a)
		}
	})
}

func TestEventUnmarshalDefectiveRecord(t *testing.T) {
	// A record with nulls and a numeric-string mileage must decode, leaving
	// the defaults to the shaping layer.
	raw := `{
		"event_type": null,
		"event_start": "2025-09-29T07:30:24.000Z",
		"duration_sec": null,
		"location": {"latitude": null, "longitude": null, "address": null},
		"mileage": "3326",
		"driver_ids": [],
		"id": 16
	}`
	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.EventType != nil {
		t.Errorf("expected nil event type, got %v", *ev.EventType)
	}
	if ev.EventStart == nil || *ev.EventStart != "2025-09-29T07:30:24.000Z" {
		t.Errorf("unexpected event start: %v", ev.EventStart)
	}
	if ev.Mileage != "3326" {
		t.Errorf("expected raw mileage string, got %v", ev.Mileage)
	}
	if ev.Location == nil || ev.Location.Latitude != nil {
		t.Errorf("expected location with nil latitude, got %+v", ev.Location)
	}
}
