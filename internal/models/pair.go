package models

// Pair is a single record of the dataset: two points given as (x, y) = (longitude, latitude)
// in degrees. Field names are positional and are matched by name when decoding.
type Pair struct {
	X0 float64 `json:"x0"` // X0 is the longitude of the first point.
	Y0 float64 `json:"y0"` // Y0 is the latitude of the first point.
	X1 float64 `json:"x1"` // X1 is the longitude of the second point.
	Y1 float64 `json:"y1"` // Y1 is the latitude of the second point.
}

// From returns the first point of the pair.
func (p Pair) From() Coordinates {
	return Coordinates{Longitude: p.X0, Latitude: p.Y0}
}

// To returns the second point of the pair.
func (p Pair) To() Coordinates {
	return Coordinates{Longitude: p.X1, Latitude: p.Y1}
}

// Reversed returns the pair with its two points swapped.
func (p Pair) Reversed() Pair {
	return Pair{X0: p.X1, Y0: p.Y1, X1: p.X0, Y1: p.Y0}
}
