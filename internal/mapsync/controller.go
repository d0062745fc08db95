package mapsync

import (
	"fmt"
	"strings"

	"github.com/villedemo/crisismap-backend/internal/models"
)

// Mode is the interaction state of the drawing toolbar
type Mode int

const (
	// ModeIdle means no tool is active
	ModeIdle Mode = iota
	// ModeToolActive means a shape tool is armed and waiting for a gesture
	ModeToolActive
	// ModeTextPlacement means the next surface click places a text label
	ModeTextPlacement
)

// TextPrompt asks the operator for label text. ok is false when the prompt
// was dismissed. Modeled as a synchronous request/result call so the state
// machine stays a plain transition table.
type TextPrompt func() (text string, ok bool)

// Default stroke colors per tool, matching the dashboard's draw toolbar
var defaultStroke = map[models.DrawingKind]string{
	models.KindPolygon:   "#a855f7",
	models.KindRectangle: "#22c55e",
	models.KindCircle:    "#ef4444",
	models.KindPolyline:  "#3b82f6",
}

// ToolController governs pointer-driven creation modes. It is purely
// additive: completed gestures yield new drawings for the caller to append to
// the declarative list, and it never edits or deletes existing drawings.
type ToolController struct {
	mode   Mode
	kind   models.DrawingKind
	prompt TextPrompt
}

// NewToolController creates an idle controller using the given text prompt
func NewToolController(prompt TextPrompt) *ToolController {
	return &ToolController{prompt: prompt}
}

// Mode returns the current interaction mode
func (c *ToolController) Mode() Mode {
	return c.mode
}

// ActiveKind returns the armed shape kind; meaningful only in ModeToolActive
func (c *ToolController) ActiveKind() models.DrawingKind {
	return c.kind
}

// ActivateTool arms a shape tool. Text labels have their own mode and are
// rejected here.
func (c *ToolController) ActivateTool(kind models.DrawingKind) error {
	switch kind {
	case models.KindMarker, models.KindCircle, models.KindRectangle, models.KindPolygon, models.KindPolyline:
		c.mode = ModeToolActive
		c.kind = kind
		return nil
	default:
		return fmt.Errorf("not a drawable tool kind: %q", kind)
	}
}

// ArmTextMode arms text placement; the next surface click prompts for text
func (c *ToolController) ArmTextMode() {
	c.mode = ModeTextPlacement
	c.kind = ""
}

// Deactivate returns to idle from any mode (escape / toggle-off)
func (c *ToolController) Deactivate() {
	c.mode = ModeIdle
	c.kind = ""
}

// CompleteGesture finishes the armed tool's drawing gesture and returns the
// new drawing. The controller always returns to idle, even on invalid
// geometry. A zero-value style picks up the tool's default stroke color.
func (c *ToolController) CompleteGesture(geometry []models.GeoPoint, style models.DrawingStyle) (*models.Drawing, error) {
	if c.mode != ModeToolActive {
		return nil, fmt.Errorf("no tool active")
	}
	kind := c.kind
	c.Deactivate()

	if style.StrokeColor == "" {
		style.StrokeColor = defaultStroke[kind]
	}
	return models.NewDrawing(kind, geometry, style, "")
}

// PlaceText handles a surface click while text placement is armed. The
// operator is prompted for content; a dismissed or empty prompt cancels
// cleanly with no drawing. The controller returns to idle either way.
func (c *ToolController) PlaceText(at models.GeoPoint) (*models.Drawing, error) {
	if c.mode != ModeTextPlacement {
		return nil, fmt.Errorf("text placement not armed")
	}
	c.Deactivate()

	text, ok := c.prompt()
	if !ok || strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return models.NewDrawing(models.KindText, []models.GeoPoint{at}, models.DrawingStyle{}, text)
}
