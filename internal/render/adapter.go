// Package render translates declarative map state into primitives on a live
// rendering surface. The adapter is the only component that talks to the
// surface, owns the id-keyed live registry, and holds at most one crisis-zone
// primitive at a time.
package render

import (
	"fmt"
	"log"

	"github.com/villedemo/crisismap-backend/internal/mapsync"
	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/spatial"
)

// DrawingsSink receives the full declarative drawing list after every
// user-initiated edit on the live surface. The receiver owns persistence.
type DrawingsSink func(drawings []*models.Drawing)

// Adapter drives a rendering surface from declarative state and captures
// direct-manipulation edits back out through its sink.
type Adapter struct {
	surface  mapsync.Surface
	viewport mapsync.Viewport // nil when the surface has no camera
	registry *mapsync.Registry
	tools    *mapsync.ToolController
	sink     DrawingsSink

	crisisShape mapsync.Shape
	markers     []mapsync.Shape
}

// NewAdapter creates an adapter bound to a surface. The prompt backs the text
// placement tool; sink receives extracted drawing lists and may be nil for a
// read-only map.
func NewAdapter(surface mapsync.Surface, prompt mapsync.TextPrompt, sink DrawingsSink) *Adapter {
	viewport, _ := surface.(mapsync.Viewport)
	return &Adapter{
		surface:  surface,
		viewport: viewport,
		registry: mapsync.NewRegistry(),
		tools:    mapsync.NewToolController(prompt),
		sink:     sink,
	}
}

// RegisteredIDs returns the ids currently held in the live registry
func (a *Adapter) RegisteredIDs() []string {
	return a.registry.IDs()
}

// Tools returns the interaction mode controller
func (a *Adapter) Tools() *mapsync.ToolController {
	return a.tools
}

// SetDrawings reconciles the live surface against a new declarative list.
// Unsupported variants are skipped with a warning rather than failing the
// pass; everything else either gets created, updated in place, or removed.
func (a *Adapter) SetDrawings(drawings []*models.Drawing) mapsync.Result {
	res := mapsync.Reconcile(a.surface, a.registry, drawings)
	for _, id := range res.Skipped {
		log.Printf("mapsync: skipped drawing %s: variant not drawable on this surface", id)
	}
	return res
}

// CompleteDraw finishes the armed tool's gesture: the new shape is drawn
// immediately, registered, and the updated list pushed through the sink.
func (a *Adapter) CompleteDraw(geometry []models.GeoPoint, style models.DrawingStyle) (*models.Drawing, error) {
	d, err := a.tools.CompleteGesture(geometry, style)
	if err != nil {
		return nil, err
	}

	shape, err := a.surface.Create(d)
	if err != nil {
		return nil, fmt.Errorf("failed to draw gesture result: %w", err)
	}
	a.registry.Put(d.ID, shape)
	a.emit()
	return d, nil
}

// ClickAt handles a pointer click on the surface. In text placement mode a
// prompt runs; the resulting label is appended to the extracted list and
// emitted, and the rendering happens when the new list comes back through
// SetDrawings. Clicks outside text mode do nothing.
func (a *Adapter) ClickAt(p models.GeoPoint) (*models.Drawing, error) {
	if a.tools.Mode() != mapsync.ModeTextPlacement {
		return nil, nil
	}
	d, err := a.tools.PlaceText(p)
	if err != nil || d == nil {
		return nil, err
	}

	if a.sink != nil {
		a.sink(append(mapsync.ExtractAll(a.registry), d))
	}
	return d, nil
}

// EditShape applies a direct-manipulation geometry edit (drag, resize, vertex
// move) to a live shape and emits the extracted list. The shape keeps its id.
func (a *Adapter) EditShape(id string, geometry []models.GeoPoint) error {
	shape, ok := a.registry.Get(id)
	if !ok {
		return fmt.Errorf("no live shape with id %s", id)
	}
	shape.SetGeometry(geometry)
	a.emit()
	return nil
}

// DeleteShape applies a user delete gesture to a live shape and emits the
// extracted list
func (a *Adapter) DeleteShape(id string) error {
	shape, ok := a.registry.Get(id)
	if !ok {
		return fmt.Errorf("no live shape with id %s", id)
	}
	a.surface.Remove(shape)
	a.registry.Delete(id)
	a.emit()
	return nil
}

// SetCrisis replaces the crisis-zone primitive. An active crisis is drawn in
// its level color and centered; an archived one is drawn muted and the view
// fit to all located sites plus the crisis center. A nil crisis clears the
// zone.
func (a *Adapter) SetCrisis(crisis *models.Crisis, sites []models.Site) {
	if a.crisisShape != nil {
		a.surface.Remove(a.crisisShape)
		a.crisisShape = nil
	}
	if crisis == nil {
		return
	}

	color := inactiveColor
	if crisis.IsActive {
		color = levelColor(crisis.Level)
	}

	zone := &models.Drawing{
		ID:       "crisis-zone",
		Kind:     models.KindCircle,
		Geometry: []models.GeoPoint{crisis.Center},
		Style: models.DrawingStyle{
			StrokeColor: color,
			FillColor:   color,
			Radius:      crisis.RadiusMeters,
		},
	}
	shape, err := a.surface.Create(zone)
	if err != nil {
		log.Printf("render: cannot draw crisis zone: %v", err)
		return
	}
	a.crisisShape = shape

	if a.viewport == nil {
		return
	}
	if crisis.IsActive {
		a.viewport.CenterOn(crisis.Center, 15)
		return
	}

	a.viewport.SetView(crisis.Center, 14)
	points := []models.GeoPoint{crisis.Center}
	for _, s := range sites {
		if s.Location != nil {
			points = append(points, *s.Location)
		}
	}
	if len(points) > 1 {
		min, max := spatial.BoundingBox(points)
		a.viewport.FitBounds(min, max)
	}
}

// SetSites redraws every entity marker. Sites are not reconciled
// incrementally: lists are small, so a full replace is cheaper than a diff.
// Sites without a location are left off the map.
func (a *Adapter) SetSites(sites []models.Site) {
	for _, m := range a.markers {
		a.surface.Remove(m)
	}
	a.markers = nil

	for _, s := range sites {
		if s.Location == nil {
			continue
		}
		marker := &models.Drawing{
			ID:       "site-" + s.ID,
			Kind:     models.KindMarker,
			Geometry: []models.GeoPoint{*s.Location},
			Style: models.DrawingStyle{
				StrokeColor: entityColor(s.Type),
				FillColor:   entityColor(s.Type),
				Radius:      entityRadius(s.Type),
			},
		}
		shape, err := a.surface.Create(marker)
		if err != nil {
			log.Printf("render: cannot draw marker for site %s: %v", s.ID, err)
			continue
		}
		a.markers = append(a.markers, shape)
	}
}

// Unmount tears the live state down: all drawings, markers and the crisis
// zone are removed and the registry cleared. The declarative list is
// untouched; a later mount rebuilds from it.
func (a *Adapter) Unmount() {
	for _, id := range a.registry.IDs() {
		if shape, ok := a.registry.Get(id); ok {
			a.surface.Remove(shape)
		}
		a.registry.Delete(id)
	}
	for _, m := range a.markers {
		a.surface.Remove(m)
	}
	a.markers = nil
	if a.crisisShape != nil {
		a.surface.Remove(a.crisisShape)
		a.crisisShape = nil
	}
}

func (a *Adapter) emit() {
	if a.sink == nil {
		return
	}
	a.sink(mapsync.ExtractAll(a.registry))
}
