// Package mapsync keeps a declarative drawing list and a live, mutable
// rendering surface in agreement. The declarative list is the source of
// truth pushed in from outside; the surface is an externally-owned arena of
// rendered primitives addressed only through opaque handles. Reconciliation
// goes declarative→live, extraction goes live→declarative, and neither
// direction ever triggers the other.
package mapsync

import (
	"errors"

	"github.com/villedemo/crisismap-backend/internal/models"
)

// ErrUnsupportedVariant is returned by Surface.Create when the surface cannot
// draw the requested drawing kind
var ErrUnsupportedVariant = errors.New("unsupported drawing variant")

// Shape is an opaque handle on a single rendered primitive. Handles are
// mutable in place so that updates never destroy live-only transient state
// (open popups, selection) the way a delete+recreate would.
type Shape interface {
	Kind() models.DrawingKind
	Geometry() []models.GeoPoint
	Style() models.DrawingStyle
	Label() string

	SetGeometry(points []models.GeoPoint)
	SetStyle(style models.DrawingStyle)
}

// Surface is the external rendering arena. Implementations draw primitives
// and hand back handles; they know nothing about drawing ids.
type Surface interface {
	Create(d *models.Drawing) (Shape, error)
	Remove(s Shape)
}

// Viewport is the optional camera control of a surface
type Viewport interface {
	CenterOn(p models.GeoPoint, zoom int)
	SetView(p models.GeoPoint, zoom int)
	FitBounds(min, max models.GeoPoint)
}
