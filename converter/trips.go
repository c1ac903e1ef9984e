package converter

import (
	"strings"
	"time"

	"github.com/azolika/LogbookTestApp/geozone"
	"github.com/azolika/LogbookTestApp/telematics"
	"github.com/azolika/LogbookTestApp/utils"
)

// TripsTableColumns is the fixed column order of the trips table.
var TripsTableColumns = []string{
	ColTripStart, ColTripStartAddress, ColTripStartLat, ColTripStartLon, ColTripStartZones,
	ColTripEnd, ColTripEndAddress, ColTripEndLat, ColTripEndLon, ColTripEndZones,
	ColTripMileageKM, ColTripFuel, ColTripDuration, ColTripDriverID,
}

// ShapeTrip maps one raw trip into a display row. Both endpoints are tagged
// independently with the names of the geozones containing them.
func ShapeTrip(tr telematics.Trip, zones []geozone.Zone, loc *time.Location, defects *DefectAggregator) TripRow {
	id := tr.TripStart.Datetime

	if _, ok := toFloat(tr.Mileage); !ok && tr.Mileage != nil {
		defects.Add(DefectBadTripMileage, id)
	}

	start := shapeEndpoint(tr.TripStart, zones, loc, defects)
	end := shapeEndpoint(tr.TripEnd, zones, loc, defects)

	return TripRow{
		Start:        start.when,
		StartAddress: start.address,
		StartLat:     start.lat,
		StartLon:     start.lon,
		StartZones:   start.zones,
		End:          end.when,
		EndAddress:   end.address,
		EndLat:       end.lat,
		EndLon:       end.lon,
		EndZones:     end.zones,
		MileageKM:    KilometersFromMeters(tr.Mileage),
		Fuel:         tr.TotalFuelConsumption,
		Duration:     TripDuration(tr.TripDuration),
		DriverID:     firstDriver(tr.DriverIDs),
	}
}

type shapedEndpoint struct {
	when    string
	address string
	lat     any
	lon     any
	zones   string
}

func shapeEndpoint(ep telematics.Endpoint, zones []geozone.Zone, loc *time.Location, defects *DefectAggregator) shapedEndpoint {
	when := FormatTripTimestamp(ep.Datetime, loc)
	if ep.Datetime != "" {
		if _, err := utils.ParseISO(ep.Datetime); err != nil {
			defects.Add(DefectBadTripTimestamp, ep.Datetime)
		}
	}

	var lat, lon any
	if ep.Latitude != nil {
		lat = *ep.Latitude
	}
	if ep.Longitude != nil {
		lon = *ep.Longitude
	}
	if ep.Latitude == nil || ep.Longitude == nil {
		defects.Add(DefectMissingCoordinates, ep.Datetime)
	}

	return shapedEndpoint{
		when:    when,
		address: JoinAddress(ep.Address),
		lat:     lat,
		lon:     lon,
		zones:   strings.Join(geozone.MatchNames(ep.Latitude, ep.Longitude, zones), ", "),
	}
}

// ShapeTrips shapes a batch. One bad record never aborts the rest.
func ShapeTrips(trips []telematics.Trip, zones []geozone.Zone, loc *time.Location, defects *DefectAggregator) []TripRow {
	rows := make([]TripRow, 0, len(trips))
	for _, tr := range trips {
		rows = append(rows, ShapeTrip(tr, zones, loc, defects))
	}
	return rows
}

// BuildTripsTable assembles the trips table. Rows keep the API's order:
// the trips pipeline performs no sort and no cumulation.
func BuildTripsTable(rows []TripRow) Table {
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Start, r.StartAddress, r.StartLat, r.StartLon, r.StartZones,
			r.End, r.EndAddress, r.EndLat, r.EndLon, r.EndZones,
			r.MileageKM, r.Fuel, r.Duration, r.DriverID,
		})
	}
	return Table{Columns: TripsTableColumns, Rows: cells}
}
