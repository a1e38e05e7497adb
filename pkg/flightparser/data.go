package flightparser

const (
	sourceCodeColumn    = "Source Airport Code"
	sourceNameColumn    = "Source Airport Name"
	sourceCityColumn    = "Source Airport City"
	sourceCountryColumn = "Source Airport Country"
	sourceLatColumn     = "Source Airport Latitude"
	sourceLonColumn     = "Source Airport Longitude"

	destCodeColumn    = "Destination Airport Code"
	destNameColumn    = "Destination Airport Name"
	destCityColumn    = "Destination Airport City"
	destCountryColumn = "Destination Airport Country"
	destLatColumn     = "Destination Airport Latitude"
	destLonColumn     = "Destination Airport Longitude"
)

var requiredColumns = []string{
	sourceCodeColumn, sourceNameColumn, sourceCityColumn, sourceCountryColumn, sourceLatColumn, sourceLonColumn,
	destCodeColumn, destNameColumn, destCityColumn, destCountryColumn, destLatColumn, destLonColumn,
}

type AirportRecord struct {
	Code    string
	Name    string
	City    string
	Country string
	Lat     float64
	Lon     float64
}

// RouteRecord is one csv row: a flight route between two airports.
type RouteRecord struct {
	Source      AirportRecord
	Destination AirportRecord
}

// Stats counts what happened to the input rows.
type Stats struct {
	Rows          int
	Accepted      int
	MalformedRows int
	SelfLoops     int
}
