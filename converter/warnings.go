package converter

import (
	"fmt"
	"log"
	"strings"
)

// Defect category constants
const (
	// events pipeline
	DefectBadStartTimestamp = "bad_start_timestamp"
	DefectBadEndTimestamp   = "bad_end_timestamp"
	DefectMissingLocation   = "missing_location"
	DefectBadMileage        = "bad_mileage"

	// trips pipeline
	DefectBadTripTimestamp   = "bad_trip_timestamp"
	DefectMissingCoordinates = "missing_coordinates"
	DefectBadTripMileage     = "bad_trip_mileage"
)

// defectInfo holds aggregated information about a specific defect category
type defectInfo struct {
	count    int
	examples []string
}

// DefectAggregator collects per-record shaping defects and outputs
// consolidated summaries instead of one log line per bad record. A nil
// aggregator is valid and records nothing.
type DefectAggregator struct {
	defects map[string]*defectInfo
}

// NewDefectAggregator creates a new defect aggregator
func NewDefectAggregator() *DefectAggregator {
	return &DefectAggregator{
		defects: make(map[string]*defectInfo),
	}
}

// Add records a defect occurrence with an example record id
func (d *DefectAggregator) Add(category, exampleID string) {
	if d == nil {
		return
	}
	if d.defects[category] == nil {
		d.defects[category] = &defectInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := d.defects[category]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected defects in consolidated format
func (d *DefectAggregator) LogAll(pipeline, vehicleID string) {
	if d == nil || len(d.defects) == 0 {
		return
	}

	for category, info := range d.defects {
		message := d.formatDefectMessage(category, pipeline, vehicleID, info)
		log.Printf("%s", message)
	}
}

// formatDefectMessage creates a human-readable defect message
func (d *DefectAggregator) formatDefectMessage(category, pipeline, vehicleID string, info *defectInfo) string {
	var description, action string

	switch category {
	case DefectBadStartTimestamp:
		description = "events with a missing or unparsable event_start"
		action = "Shaping row with empty Start"
	case DefectBadEndTimestamp:
		description = "events with a missing or unparsable event_end"
		action = "Shaping row with empty end value"
	case DefectMissingLocation:
		description = "events without a location object"
		action = "Shaping row without coordinates or address"
	case DefectBadMileage:
		description = "events whose mileage is not numeric"
		action = "Shaping row with a 0.0 distance step"
	case DefectBadTripTimestamp:
		description = "trip endpoints with an unparsable datetime"
		action = "Shaping row with the raw datetime string"
	case DefectMissingCoordinates:
		description = "trip endpoints without coordinates"
		action = "Shaping row without geozone matches"
	case DefectBadTripMileage:
		description = "trips whose mileage is not numeric"
		action = "Shaping row with 0.0 km"
	default:
		description = "records with an unknown shaping issue"
		action = "Shaping row with fallback values"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Pipeline %s for vehicle %s has %s (%d occurrences). %s. Examples: %s",
		pipeline, vehicleID, description, info.count, action, examplesStr)
}
