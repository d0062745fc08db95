package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DrawingKind identifies the geometry variant of a drawing
type DrawingKind string

const (
	KindMarker    DrawingKind = "marker"
	KindCircle    DrawingKind = "circle"
	KindRectangle DrawingKind = "rectangle"
	KindPolygon   DrawingKind = "polygon"
	KindPolyline  DrawingKind = "polyline"
	KindText      DrawingKind = "text"
)

// ErrValidation is returned when a drawing violates the geometry rules for its kind
var ErrValidation = errors.New("drawing validation failed")

// DrawingStyle holds the presentation options of a drawing
type DrawingStyle struct {
	StrokeColor string  `json:"color,omitempty"`
	FillColor   string  `json:"fillColor,omitempty"`
	Radius      float64 `json:"radius,omitempty"` // circles only, meters
}

// Drawing is a single declarative map annotation. The id is the only
// correlation key with the live rendering registry and never changes once
// assigned; edits mutate geometry/style in place.
type Drawing struct {
	ID       string       `json:"id"`
	Kind     DrawingKind  `json:"layerType"`
	Geometry []GeoPoint   `json:"latlngs"`
	Style    DrawingStyle `json:"options"`
	Label    string       `json:"text,omitempty"` // text labels only
}

// NewDrawing builds a validated drawing with a fresh unique id
func NewDrawing(kind DrawingKind, geometry []GeoPoint, style DrawingStyle, label string) (*Drawing, error) {
	d := &Drawing{
		ID:       uuid.NewString(),
		Kind:     kind,
		Geometry: geometry,
		Style:    style,
		Label:    label,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the geometry arity rules for the drawing's kind.
// Rectangle and polygon rings may arrive open (first != last); they are
// treated as implicitly closed, matching the rendering surface.
func (d *Drawing) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrValidation)
	}
	switch d.Kind {
	case KindMarker, KindCircle:
		if len(d.Geometry) != 1 {
			return fmt.Errorf("%w: %s requires exactly one coordinate, got %d", ErrValidation, d.Kind, len(d.Geometry))
		}
	case KindText:
		if len(d.Geometry) != 1 {
			return fmt.Errorf("%w: text label requires exactly one coordinate, got %d", ErrValidation, len(d.Geometry))
		}
		if d.Label == "" {
			return fmt.Errorf("%w: text label requires content", ErrValidation)
		}
	case KindPolyline:
		if len(d.Geometry) < 2 {
			return fmt.Errorf("%w: polyline requires at least 2 coordinates, got %d", ErrValidation, len(d.Geometry))
		}
	case KindPolygon, KindRectangle:
		if len(d.Geometry) < 3 {
			return fmt.Errorf("%w: %s ring requires at least 3 coordinates, got %d", ErrValidation, d.Kind, len(d.Geometry))
		}
	default:
		return fmt.Errorf("%w: unknown drawing kind %q", ErrValidation, d.Kind)
	}
	return nil
}

// Equal reports whether two drawings carry the same id, kind, style, label
// and pointwise-equal geometry within coordinate tolerance
func (d *Drawing) Equal(other *Drawing) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.ID == other.ID &&
		d.Kind == other.Kind &&
		d.Style == other.Style &&
		d.Label == other.Label &&
		EqualPath(d.Geometry, other.Geometry)
}
