package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/villedemo/crisismap-backend/internal/models"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// DistanceMeters calculates the great-circle distance between two points in
// meters using the Haversine formula. Symmetric, and zero iff both points are
// the same coordinate.
func DistanceMeters(a, b models.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// BoundingBox calculates the bounding box of a set of points
// Returns (min, max) corners
func BoundingBox(points []models.GeoPoint) (models.GeoPoint, models.GeoPoint) {
	if len(points) == 0 {
		return models.GeoPoint{}, models.GeoPoint{}
	}

	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.Lat < min.Lat {
			min.Lat = p.Lat
		}
		if p.Lat > max.Lat {
			max.Lat = p.Lat
		}
		if p.Lng < min.Lng {
			min.Lng = p.Lng
		}
		if p.Lng > max.Lng {
			max.Lng = p.Lng
		}
	}

	return min, max
}
