package spatial

import "github.com/villedemo/crisismap-backend/internal/models"

// TownCenter is the demo-town anchor point (approx. Lyon city center)
var TownCenter = models.GeoPoint{Lat: 45.764043, Lng: 4.835659}

// FallbackGeocode produces a deterministic pseudo-location for an address when
// the external geocoder is unreachable. The address characters are hashed with
// position-dependent weights into a bounded offset (±0.02°) around the anchor,
// so the same address always lands on the same spot. Not a real geocode;
// purely a stable placement for offline and demo use.
func FallbackGeocode(address string, anchor models.GeoPoint) models.GeoPoint {
	var hashX, hashY int
	for _, r := range address {
		hashX = (hashX + int(r)*7) % 1000
		hashY = (hashY + int(r)*13) % 1000
	}

	offsetLat := (float64(hashX)/1000 - 0.5) * 0.04
	offsetLng := (float64(hashY)/1000 - 0.5) * 0.04

	return models.GeoPoint{
		Lat: anchor.Lat + offsetLat,
		Lng: anchor.Lng + offsetLng,
	}
}
