package mapsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villedemo/crisismap-backend/internal/models"
)

func mustDrawing(t *testing.T, kind models.DrawingKind, geometry []models.GeoPoint, style models.DrawingStyle, label string) *models.Drawing {
	t.Helper()
	d, err := models.NewDrawing(kind, geometry, style, label)
	require.NoError(t, err)
	return d
}

func sampleDrawings(t *testing.T) []*models.Drawing {
	t.Helper()
	return []*models.Drawing{
		mustDrawing(t, models.KindCircle,
			[]models.GeoPoint{{Lat: 45.76, Lng: 4.83}},
			models.DrawingStyle{StrokeColor: "#ef4444", Radius: 200}, ""),
		mustDrawing(t, models.KindPolyline,
			[]models.GeoPoint{{Lat: 45.76, Lng: 4.83}, {Lat: 45.77, Lng: 4.84}},
			models.DrawingStyle{StrokeColor: "#3b82f6"}, ""),
		mustDrawing(t, models.KindText,
			[]models.GeoPoint{{Lat: 45.77, Lng: 4.84}},
			models.DrawingStyle{}, "PC Secours"),
	}
}

func TestReconcileCreatesDeletesUpdates(t *testing.T) {
	surface := NewMemSurface()
	reg := NewRegistry()
	drawings := sampleDrawings(t)

	res := Reconcile(surface, reg, drawings)
	assert.Len(t, res.Created, 3)
	assert.Empty(t, res.Deleted)
	assert.Empty(t, res.Updated)
	assert.Equal(t, 3, surface.Count())
	assert.Equal(t, 3, reg.Len())

	// Drop the polyline, move the circle
	moved := *drawings[0]
	moved.Geometry = []models.GeoPoint{{Lat: 45.70, Lng: 4.80}}
	next := []*models.Drawing{&moved, drawings[2]}

	res = Reconcile(surface, reg, next)
	assert.Empty(t, res.Created)
	assert.Equal(t, []string{drawings[1].ID}, res.Deleted)
	assert.ElementsMatch(t, []string{drawings[0].ID, drawings[2].ID}, res.Updated)
	assert.Equal(t, 2, surface.Count())

	shape, ok := reg.Get(drawings[0].ID)
	require.True(t, ok)
	assert.True(t, models.EqualPath(moved.Geometry, shape.Geometry()))
}

func TestReconcileUpdatesInPlace(t *testing.T) {
	surface := NewMemSurface()
	reg := NewRegistry()
	drawings := sampleDrawings(t)

	Reconcile(surface, reg, drawings)
	before, ok := reg.Get(drawings[0].ID)
	require.True(t, ok)

	// Same list again: the handle must survive, not be recreated
	Reconcile(surface, reg, drawings)
	after, ok := reg.Get(drawings[0].ID)
	require.True(t, ok)
	assert.Same(t, before, after, "update must mutate the live handle, not replace it")
}

func TestReconcileIdempotent(t *testing.T) {
	surface := NewMemSurface()
	reg := NewRegistry()
	drawings := sampleDrawings(t)

	Reconcile(surface, reg, drawings)
	extracted := ExtractAll(reg)

	res := Reconcile(surface, reg, drawings)
	assert.Empty(t, res.Created, "second pass must not create")
	assert.Empty(t, res.Deleted, "second pass must not delete")
	assert.Equal(t, 3, surface.Count())

	// The unconditional overwrite must be observably a no-op
	again := ExtractAll(reg)
	require.Len(t, again, len(extracted))
	for i := range extracted {
		assert.True(t, extracted[i].Equal(again[i]))
	}
}

func TestReconcileSkipsUnsupportedVariant(t *testing.T) {
	surface := NewMemSurface(models.KindPolyline)
	reg := NewRegistry()
	drawings := sampleDrawings(t)

	res := Reconcile(surface, reg, drawings)
	assert.Equal(t, []string{drawings[1].ID}, res.Skipped)
	assert.Len(t, res.Created, 2, "remaining entries still processed")
	assert.Equal(t, 2, surface.Count())
	assert.False(t, reg.Has(drawings[1].ID))
}

func TestReconcileNeverMutatesDeclarativeList(t *testing.T) {
	surface := NewMemSurface()
	reg := NewRegistry()
	drawings := sampleDrawings(t)
	originalGeom := drawings[0].Geometry[0]

	Reconcile(surface, reg, drawings)
	shape, _ := reg.Get(drawings[0].ID)
	shape.SetGeometry([]models.GeoPoint{{Lat: 1, Lng: 1}})

	assert.Equal(t, originalGeom, drawings[0].Geometry[0], "live edits must not leak into the declarative list")
}

func TestRoundTrip(t *testing.T) {
	surface := NewMemSurface()
	reg := NewRegistry()
	drawings := sampleDrawings(t)

	Reconcile(surface, reg, drawings)
	extracted := ExtractAll(reg)

	require.Len(t, extracted, len(drawings))
	for i := range drawings {
		assert.True(t, drawings[i].Equal(extracted[i]),
			"drawing %s must round-trip through the surface", drawings[i].ID)
	}

	t.Run("text content recovered exactly", func(t *testing.T) {
		assert.Equal(t, "PC Secours", extracted[2].Label)
	})

	t.Run("empty registry extracts empty list", func(t *testing.T) {
		assert.Empty(t, ExtractAll(NewRegistry()))
	})
}

func TestIDStabilityAcrossLiveEdit(t *testing.T) {
	surface := NewMemSurface()
	reg := NewRegistry()
	drawings := sampleDrawings(t)

	Reconcile(surface, reg, drawings)

	// Direct manipulation: drag the circle somewhere else
	shape, ok := reg.Get(drawings[0].ID)
	require.True(t, ok)
	shape.SetGeometry([]models.GeoPoint{{Lat: 45.70, Lng: 4.80}})

	extracted := ExtractAll(reg)
	require.Len(t, extracted, 3)
	assert.Equal(t, drawings[0].ID, extracted[0].ID, "editing geometry never changes the id")
	assert.True(t, models.EqualPath([]models.GeoPoint{{Lat: 45.70, Lng: 4.80}}, extracted[0].Geometry))
}

func TestRegistryOrder(t *testing.T) {
	reg := NewRegistry()
	surface := NewMemSurface()

	a := mustDrawing(t, models.KindMarker, []models.GeoPoint{{Lat: 1, Lng: 1}}, models.DrawingStyle{}, "")
	b := mustDrawing(t, models.KindMarker, []models.GeoPoint{{Lat: 2, Lng: 2}}, models.DrawingStyle{}, "")
	c := mustDrawing(t, models.KindMarker, []models.GeoPoint{{Lat: 3, Lng: 3}}, models.DrawingStyle{}, "")

	Reconcile(surface, reg, []*models.Drawing{a, b, c})
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, reg.IDs())

	Reconcile(surface, reg, []*models.Drawing{a, c})
	assert.Equal(t, []string{a.ID, c.ID}, reg.IDs(), "deletion keeps relative order")
}
