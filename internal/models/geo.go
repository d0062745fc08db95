package models

import "math"

// CoordTolerance is the floating tolerance used when comparing coordinates.
// Round-tripping a drawing through the live surface must not drift beyond it.
const CoordTolerance = 1e-9

// GeoPoint represents a WGS84 coordinate pair
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Equal reports whether two points are the same coordinate within CoordTolerance
func (p GeoPoint) Equal(other GeoPoint) bool {
	return math.Abs(p.Lat-other.Lat) <= CoordTolerance &&
		math.Abs(p.Lng-other.Lng) <= CoordTolerance
}

// EqualPath reports whether two coordinate sequences match pointwise within tolerance
func EqualPath(a, b []GeoPoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
