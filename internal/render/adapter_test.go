package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villedemo/crisismap-backend/internal/mapsync"
	"github.com/villedemo/crisismap-backend/internal/models"
)

type harness struct {
	surface *mapsync.MemSurface
	adapter *Adapter
	emitted [][]*models.Drawing
}

func newHarness(promptText string, promptOK bool) *harness {
	h := &harness{surface: mapsync.NewMemSurface()}
	prompt := func() (string, bool) { return promptText, promptOK }
	h.adapter = NewAdapter(h.surface, prompt, func(drawings []*models.Drawing) {
		h.emitted = append(h.emitted, drawings)
	})
	return h
}

func (h *harness) lastEmitted(t *testing.T) []*models.Drawing {
	t.Helper()
	require.NotEmpty(t, h.emitted, "expected an extraction to have been emitted")
	return h.emitted[len(h.emitted)-1]
}

// Draw a circle with the tool, delete it on the surface, and watch the
// declarative list go back to empty.
func TestDrawThenDeleteScenario(t *testing.T) {
	h := newHarness("", false)
	center := models.GeoPoint{Lat: 45.76, Lng: 4.83}

	require.NoError(t, h.adapter.Tools().ActivateTool(models.KindCircle))
	d, err := h.adapter.CompleteDraw([]models.GeoPoint{center}, models.DrawingStyle{Radius: 200})
	require.NoError(t, err)

	assert.Equal(t, 1, h.surface.Count(), "exactly one live circle primitive")
	list := h.lastEmitted(t)
	require.Len(t, list, 1)
	assert.Equal(t, models.KindCircle, list[0].Kind)
	assert.Equal(t, 200.0, list[0].Style.Radius)
	assert.Equal(t, center, list[0].Geometry[0])
	assert.Equal(t, d.ID, list[0].ID)

	require.NoError(t, h.adapter.DeleteShape(d.ID))
	assert.Empty(t, h.lastEmitted(t))
	assert.Equal(t, 0, h.surface.Count())
}

func TestTextPlacementScenario(t *testing.T) {
	h := newHarness("PC Secours", true)
	at := models.GeoPoint{Lat: 45.77, Lng: 4.84}

	h.adapter.Tools().ArmTextMode()
	d, err := h.adapter.ClickAt(at)
	require.NoError(t, err)
	require.NotNil(t, d)

	// The label is emitted for persistence but rendered only when the new
	// list flows back in through SetDrawings
	list := h.lastEmitted(t)
	require.Len(t, list, 1)
	assert.Equal(t, "PC Secours", list[0].Label)
	assert.Equal(t, 0, h.surface.Count())

	res := h.adapter.SetDrawings(list)
	assert.Len(t, res.Created, 1)
	assert.Equal(t, 1, h.surface.Count())

	t.Run("extraction recovers the text exactly", func(t *testing.T) {
		require.NoError(t, h.adapter.EditShape(d.ID, []models.GeoPoint{{Lat: 45.78, Lng: 4.85}}))
		extracted := h.lastEmitted(t)
		require.Len(t, extracted, 1)
		assert.Equal(t, "PC Secours", extracted[0].Label)
		assert.Equal(t, d.ID, extracted[0].ID)
	})
}

func TestClicksOutsideTextModeDoNothing(t *testing.T) {
	h := newHarness("whatever", true)
	d, err := h.adapter.ClickAt(models.GeoPoint{Lat: 1, Lng: 1})
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Empty(t, h.emitted)
}

func TestSetCrisisReplacesZone(t *testing.T) {
	h := newHarness("", false)
	crisis := &models.Crisis{
		ID:           "c1",
		IsActive:     true,
		Level:        models.LevelRed,
		Center:       models.GeoPoint{Lat: 45.76, Lng: 4.83},
		RadiusMeters: 500,
	}

	h.adapter.SetCrisis(crisis, nil)
	assert.Equal(t, 1, h.surface.Count())
	assert.Equal(t, crisis.Center, h.surface.View().Center)
	assert.Equal(t, 15, h.surface.View().Zoom, "active crisis zooms in")

	// A new descriptor replaces, never accumulates
	next := &models.Crisis{
		ID:           "c2",
		IsActive:     true,
		Level:        models.LevelOrange,
		Center:       models.GeoPoint{Lat: 45.70, Lng: 4.80},
		RadiusMeters: 800,
	}
	h.adapter.SetCrisis(next, nil)
	assert.Equal(t, 1, h.surface.Count())

	h.adapter.SetCrisis(nil, nil)
	assert.Equal(t, 0, h.surface.Count())
}

func TestSetCrisisInactiveFitsBounds(t *testing.T) {
	h := newHarness("", false)
	loc := models.GeoPoint{Lat: 45.78, Lng: 4.85}
	sites := []models.Site{
		{ID: "s1", Type: models.EntitySensitiveSite, Location: &loc},
		{ID: "s2", Type: models.EntityRoom}, // no location
	}
	crisis := &models.Crisis{
		ID:           "c1",
		IsActive:     false,
		Level:        models.LevelYellow,
		Center:       models.GeoPoint{Lat: 45.76, Lng: 4.83},
		RadiusMeters: 500,
	}

	h.adapter.SetCrisis(crisis, sites)
	view := h.surface.View()
	require.NotNil(t, view.FitMin, "archived crisis fits bounds over sites plus center")
	assert.Equal(t, 45.76, view.FitMin.Lat)
	assert.Equal(t, 45.78, view.FitMax.Lat)
}

func TestSetSitesFullRedraw(t *testing.T) {
	h := newHarness("", false)
	a := models.GeoPoint{Lat: 45.76, Lng: 4.83}
	b := models.GeoPoint{Lat: 45.77, Lng: 4.84}

	h.adapter.SetSites([]models.Site{
		{ID: "s1", Type: models.EntitySensitiveSite, Location: &a},
		{ID: "s2", Type: models.EntityIntervener, Location: &b},
		{ID: "s3", Type: models.EntityRoom}, // no location, not rendered
	})
	assert.Equal(t, 2, h.surface.Count())

	h.adapter.SetSites([]models.Site{
		{ID: "s1", Type: models.EntitySensitiveSite, Location: &a},
	})
	assert.Equal(t, 1, h.surface.Count(), "markers fully replaced on every change")
}

func TestUnmountClearsEverything(t *testing.T) {
	h := newHarness("", false)
	center := models.GeoPoint{Lat: 45.76, Lng: 4.83}

	d, err := models.NewDrawing(models.KindCircle, []models.GeoPoint{center}, models.DrawingStyle{Radius: 100}, "")
	require.NoError(t, err)
	h.adapter.SetDrawings([]*models.Drawing{d})
	h.adapter.SetSites([]models.Site{{ID: "s1", Type: models.EntityMaterial, Location: &center}})
	h.adapter.SetCrisis(&models.Crisis{ID: "c1", IsActive: true, Level: models.LevelRed, Center: center, RadiusMeters: 100}, nil)
	require.Equal(t, 3, h.surface.Count())

	h.adapter.Unmount()
	assert.Equal(t, 0, h.surface.Count())
	assert.Empty(t, h.adapter.RegisteredIDs())
}
