package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/spatial"
)

func site(id string, loc *models.GeoPoint) models.Site {
	return models.Site{ID: id, Name: id, Type: models.EntitySensitiveSite, Location: loc}
}

func TestImpactedBoundary(t *testing.T) {
	center := models.GeoPoint{Lat: 0, Lng: 0}
	// roughly one kilometer due north of the center
	near := models.GeoPoint{Lat: 0.008993, Lng: 0}
	dist := spatial.DistanceMeters(center, near)

	crisis := &models.Crisis{ID: "c1", Center: center, RadiusMeters: dist}

	t.Run("entity exactly on the boundary is included", func(t *testing.T) {
		got := Impacted(crisis, []models.Site{site("edge", &near)})
		require.Len(t, got, 1)
		assert.Equal(t, "edge", got[0].ID)
	})

	t.Run("entity just beyond the boundary is excluded", func(t *testing.T) {
		tight := &models.Crisis{ID: "c1", Center: center, RadiusMeters: dist - 0.1}
		got := Impacted(tight, []models.Site{site("edge", &near)})
		assert.Empty(t, got)
	})
}

func TestImpactedFiltering(t *testing.T) {
	center := models.GeoPoint{Lat: 45.764043, Lng: 4.835659}
	crisis := &models.Crisis{ID: "c1", Center: center, RadiusMeters: 1000}

	inside := models.GeoPoint{Lat: 45.7660, Lng: 4.8370}  // a few hundred meters out
	outside := models.GeoPoint{Lat: 45.8000, Lng: 4.9000} // several kilometers out

	sites := []models.Site{
		site("a", &inside),
		site("no-location", nil),
		site("b", &outside),
		site("c", &center),
	}

	got := Impacted(crisis, sites)
	require.Len(t, got, 2)

	t.Run("preserves input order", func(t *testing.T) {
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "c", got[1].ID)
	})

	t.Run("missing location excluded without error", func(t *testing.T) {
		for _, s := range got {
			assert.NotEqual(t, "no-location", s.ID)
		}
	})
}

func TestImpactedNilCrisis(t *testing.T) {
	center := models.GeoPoint{Lat: 0, Lng: 0}
	assert.Nil(t, Impacted(nil, []models.Site{site("a", &center)}))
}
