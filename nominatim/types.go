package nominatim

// Address is a reverse-geocoded street address. Fields the geocoder could
// not resolve are empty.
type Address struct {
	Street      string
	HouseNumber string
	Postcode    string
	City        string
}

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}
