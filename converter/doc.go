// Package converter turns raw telematics records into display tables.
//
// The package covers the two pipelines of the logbook:
//   - events: each event becomes an EventRow; rows are stable-sorted by
//     their start timestamp and the per-row distance step is replaced by a
//     cumulative distance column.
//   - trips: each trip becomes a TripRow with both endpoints tagged by the
//     geozones containing them; rows keep the API's order.
//
// Shaping never fails on a bad record. Missing or unparsable fields are
// defaulted locally (nil, 0.0 or raw passthrough depending on the column)
// and recorded in a DefectAggregator, which logs one consolidated line per
// defect category after the run.
//
// All table assembly is done with pure functions: BuildEventsTable and
// BuildTripsTable take shaped rows and return a new Table without mutating
// their input.
package converter
