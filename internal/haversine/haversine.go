// Package haversine computes great-circle distances on a spherical earth.
package haversine

import (
	"errors"
	"fmt"
	"math"

	"github.com/UnknownOlympus/haversine/internal/models"
)

// EarthRadiusKm is the mean earth radius used when no other radius is configured.
const EarthRadiusKm = 6371.0

// Common errors for distance calculations.
var (
	ErrEmptyDataset  = errors.New("cannot compute mean distance of an empty dataset")
	ErrInvalidRadius = errors.New("sphere radius must be a positive finite number")
)

// Calculator computes haversine distances on a sphere of a fixed radius.
type Calculator struct {
	radius float64 // radius of the sphere, in the unit distances are reported in
}

// NewCalculator returns a Calculator for a sphere of the given radius.
func NewCalculator(radius float64) (*Calculator, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}

	return &Calculator{radius: radius}, nil
}

// Radius returns the radius the calculator was built with.
func (c *Calculator) Radius() float64 {
	return c.radius
}

// Distance returns the great-circle distance between the two points of the pair.
func (c *Calculator) Distance(pair models.Pair) float64 {
	return c.Between(pair.From(), pair.To())
}

// Between returns the great-circle distance between two points.
func (c *Calculator) Between(from, to models.Coordinates) float64 {
	return Distance(from.Longitude, from.Latitude, to.Longitude, to.Latitude, c.radius)
}

// Mean returns the arithmetic mean of the distances of all pairs.
// An empty slice yields ErrEmptyDataset instead of NaN.
func (c *Calculator) Mean(pairs []models.Pair) (float64, error) {
	if len(pairs) == 0 {
		return 0, ErrEmptyDataset
	}

	var sum float64
	for i := range pairs {
		p := &pairs[i]
		sum += Distance(p.X0, p.Y0, p.X1, p.Y1, c.radius)
	}

	return sum / float64(len(pairs)), nil
}

// Distance returns the haversine distance between (x0, y0) and (x1, y1), where x is the
// longitude and y the latitude in degrees, on a sphere of the given radius.
func Distance(x0, y0, x1, y1, radius float64) float64 {
	dLat := Radians(y1 - y0)
	dLon := Radians(x1 - x0)
	lat0 := Radians(y0)
	lat1 := Radians(y1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat0)*math.Cos(lat1)*sinLon*sinLon

	return 2 * radius * math.Asin(math.Sqrt(clampUnit(a)))
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// clampUnit limits a to [0, 1]; rounding can push it slightly past 1 near antipodes.
func clampUnit(a float64) float64 {
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	default:
		return a
	}
}
