package mapsync

import "github.com/villedemo/crisismap-backend/internal/models"

// ViewState records the last camera instruction a MemSurface received
type ViewState struct {
	Center models.GeoPoint
	Zoom   int
	FitMin *models.GeoPoint
	FitMax *models.GeoPoint
}

// MemSurface is an in-memory rendering arena. It backs headless runs and
// tests, standing in for the browser map the dashboard ultimately draws on.
type MemSurface struct {
	unsupported map[models.DrawingKind]bool
	shapes      map[*memShape]struct{}
	view        ViewState
}

// NewMemSurface creates an in-memory surface. Kinds passed as unsupported
// make Create fail with ErrUnsupportedVariant, mimicking a surface with a
// reduced primitive set.
func NewMemSurface(unsupported ...models.DrawingKind) *MemSurface {
	s := &MemSurface{
		unsupported: make(map[models.DrawingKind]bool),
		shapes:      make(map[*memShape]struct{}),
	}
	for _, kind := range unsupported {
		s.unsupported[kind] = true
	}
	return s
}

// Create draws a new primitive and returns its handle
func (s *MemSurface) Create(d *models.Drawing) (Shape, error) {
	if s.unsupported[d.Kind] {
		return nil, ErrUnsupportedVariant
	}
	shape := &memShape{
		kind:     d.Kind,
		geometry: clonePoints(d.Geometry),
		style:    d.Style,
		label:    d.Label,
	}
	s.shapes[shape] = struct{}{}
	return shape, nil
}

// Remove erases a primitive from the surface
func (s *MemSurface) Remove(shape Shape) {
	if ms, ok := shape.(*memShape); ok {
		delete(s.shapes, ms)
	}
}

// Count returns the number of primitives currently drawn
func (s *MemSurface) Count() int {
	return len(s.shapes)
}

// CenterOn implements Viewport
func (s *MemSurface) CenterOn(p models.GeoPoint, zoom int) {
	s.view = ViewState{Center: p, Zoom: zoom}
}

// SetView implements Viewport
func (s *MemSurface) SetView(p models.GeoPoint, zoom int) {
	s.view = ViewState{Center: p, Zoom: zoom}
}

// FitBounds implements Viewport
func (s *MemSurface) FitBounds(min, max models.GeoPoint) {
	s.view.FitMin = &min
	s.view.FitMax = &max
}

// View returns the last camera instruction received
func (s *MemSurface) View() ViewState {
	return s.view
}

// memShape is the in-memory primitive handle. Geometry is copied on the way
// in and out so the declarative list and the live surface never alias.
type memShape struct {
	kind     models.DrawingKind
	geometry []models.GeoPoint
	style    models.DrawingStyle
	label    string
}

func (m *memShape) Kind() models.DrawingKind { return m.kind }

func (m *memShape) Geometry() []models.GeoPoint { return clonePoints(m.geometry) }

func (m *memShape) Style() models.DrawingStyle { return m.style }

func (m *memShape) Label() string { return m.label }

func (m *memShape) SetGeometry(points []models.GeoPoint) { m.geometry = clonePoints(points) }

func (m *memShape) SetStyle(style models.DrawingStyle) { m.style = style }

func clonePoints(points []models.GeoPoint) []models.GeoPoint {
	out := make([]models.GeoPoint, len(points))
	copy(out, points)
	return out
}
