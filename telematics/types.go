package telematics

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString decodes a JSON scalar (string, number or null) into a string.
// Providers are inconsistent about quoting fields like ids and house numbers,
// so every field that is textual for display purposes uses this type.
// Values that are neither string nor number decode to the empty string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*f = FlexString(t)
	case float64:
		*f = FlexString(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		*f = ""
	}
	return nil
}

func (f FlexString) String() string { return string(f) }

// Vehicle is one entry of the fleet API's object list.
type Vehicle struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

// AddressParts carries the optional components of a reverse-geocoded address.
// A null or non-object address decodes to the zero value rather than failing
// the record.
type AddressParts struct {
	Street      FlexString `json:"street"`
	HouseNumber FlexString `json:"house_number"`
	Locality    FlexString `json:"locality"`
	Region      FlexString `json:"region"`
	County      FlexString `json:"county"`
	Country     FlexString `json:"country"`
}

func (a *AddressParts) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*a = AddressParts{}
		return nil
	}
	type alias AddressParts
	var v alias
	if err := json.Unmarshal(trimmed, &v); err != nil {
		*a = AddressParts{}
		return nil
	}
	*a = AddressParts(v)
	return nil
}

// Circle is a geozone's circular region, radius in meters.
type Circle struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

// Geozone is a named region from the fleet API. Only POINT zones that carry
// a circle take part in containment matching.
type Geozone struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Circle *Circle `json:"circle"`
}

// Endpoint is one end of a trip.
type Endpoint struct {
	Datetime  string        `json:"datetime"`
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
	Address   *AddressParts `json:"address"`
}

// Trip is one trip record. Mileage is meters and may arrive as a number,
// a numeric string or null; it is converted only at shaping time.
type Trip struct {
	TripStart            Endpoint     `json:"trip_start"`
	TripEnd              Endpoint     `json:"trip_end"`
	Mileage              any          `json:"mileage"`
	TotalFuelConsumption any          `json:"total_fuel_consumption"`
	TripDuration         *float64     `json:"trip_duration"`
	DriverIDs            []FlexString `json:"driver_ids"`
}

// Location is an event's position with its optional reverse-geocoded address.
type Location struct {
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
	Address   *AddressParts `json:"address"`
}

// Event is one record of the events API. The fuel fields are carried raw:
// REFUEL and DRAIN events surface them unconverted in the shaped row.
type Event struct {
	EventType      *string      `json:"event_type"`
	EventStart     *string      `json:"event_start"`
	EventEnd       *string      `json:"event_end"`
	DurationSec    *float64     `json:"duration_sec"`
	Location       *Location    `json:"location"`
	Mileage        any          `json:"mileage"`
	FuelLevel      any          `json:"fuel_level"`
	FuelLevelStart any          `json:"fuel_level_start"`
	FuelLevelEnd   any          `json:"fuel_level_end"`
	FuelDifference any          `json:"fuel_difference"`
	DriverIDs      []FlexString `json:"driver_ids"`
	ID             any          `json:"id"`
}
