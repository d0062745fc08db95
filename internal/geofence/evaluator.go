// Package geofence filters located entities against a crisis impact zone.
package geofence

import (
	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/spatial"
)

// Located is any domain object exposing a point location. A nil location
// means the entity has no usable coordinates.
type Located interface {
	LocationPoint() *models.GeoPoint
}

// Impacted returns the entities whose location falls within the crisis impact
// radius (inclusive boundary). Entities without a location are excluded, not
// errors. The filter is stable: matched entities keep their input order.
func Impacted[E Located](crisis *models.Crisis, entities []E) []E {
	if crisis == nil {
		return nil
	}

	var impacted []E
	for _, e := range entities {
		loc := e.LocationPoint()
		if loc == nil {
			continue
		}
		if spatial.DistanceMeters(crisis.Center, *loc) <= crisis.RadiusMeters {
			impacted = append(impacted, e)
		}
	}

	return impacted
}
