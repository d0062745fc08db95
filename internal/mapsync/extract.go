package mapsync

import "github.com/villedemo/crisismap-backend/internal/models"

// ExtractAll reads every live shape back into a declarative drawing,
// preserving registry ids and creation order. It is the only live→declarative
// path and is invoked explicitly after a user gesture completes, never from
// inside a reconciliation pass.
func ExtractAll(reg *Registry) []*models.Drawing {
	drawings := make([]*models.Drawing, 0, reg.Len())
	for _, id := range reg.IDs() {
		shape, ok := reg.Get(id)
		if !ok {
			continue
		}
		drawings = append(drawings, &models.Drawing{
			ID:       id,
			Kind:     shape.Kind(),
			Geometry: shape.Geometry(),
			Style:    shape.Style(),
			Label:    shape.Label(),
		})
	}
	return drawings
}
