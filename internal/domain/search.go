package domain

// NearbyBank is one row of the geographic availability query: a bank holding
// stock of the requested type, annotated with the great-circle distance from
// the caller's position.
type NearbyBank struct {
	ID             string
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	ContactNumber  string
	DistanceKm     float64
	RequestedUnits int
	Inventory      map[string]int
}

// SearchResult is a ranked search hit enriched with the travel estimate and
// a directions link.
type SearchResult struct {
	ID             string
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	ContactNumber  string
	DistanceKm     float64
	ETAMinutes     int
	RequestedUnits int
	Inventory      map[string]int
	GoogleMapsURL  string
}
