package converter

// Column headers of the events table. The headers are the data contract of
// the table consumers and stay in Romanian.
const (
	ColEventType    = "Tip eveniment"
	ColStart        = "Start"
	ColEnd          = "Sfârșit"
	ColDuration     = "Durată"
	ColLatitude     = "Lat"
	ColLongitude    = "Lon"
	ColAddress      = "Adresă"
	ColStepKM       = "Kilometraj (pas) [km]"
	ColCumulativeKM = "Kilometraj (cumulativ) [km]"
	ColFuelLevel    = "Nivel combustibil"
	ColDriverID     = "ID șofer"
	ColRawID        = "ID brut"
)

// Column headers of the trips table.
const (
	ColTripStart        = "Start"
	ColTripStartAddress = "Adresă start"
	ColTripStartLat     = "Lat start"
	ColTripStartLon     = "Lon start"
	ColTripStartZones   = "Geozone start"
	ColTripEnd          = "Sfârșit"
	ColTripEndAddress   = "Adresă sfârșit"
	ColTripEndLat       = "Lat sfârșit"
	ColTripEndLon       = "Lon sfârșit"
	ColTripEndZones     = "Geozone sfârșit"
	ColTripMileageKM    = "Kilometraj [km]"
	ColTripFuel         = "Combustibil consumat"
	ColTripDuration     = "Durată"
	ColTripDriverID     = "ID șofer"
)

// Table is an assembled display table: a fixed ordered column set and one
// cell slice per row. Cells are display scalars: string, float64 or nil,
// plus raw passthrough values for columns that surface upstream data
// unconverted (fuel levels, record ids).
type Table struct {
	Columns []string
	Rows    [][]any
}

// EventRow is one shaped event prior to table assembly. Optional display
// values are typed any and hold nil when the source field was missing or
// unparsable.
type EventRow struct {
	EventType any
	Start     any
	End       any
	Duration  any
	Latitude  any
	Longitude any
	Address   string
	StepKM    float64
	FuelLevel any
	DriverID  any
	RawID     any
}

// TripRow is one shaped trip prior to table assembly.
type TripRow struct {
	Start        any
	StartAddress string
	StartLat     any
	StartLon     any
	StartZones   string
	End          any
	EndAddress   string
	EndLat       any
	EndLon       any
	EndZones     string
	MileageKM    float64
	Fuel         any
	Duration     string
	DriverID     any
}
