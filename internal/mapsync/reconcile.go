package mapsync

import "github.com/villedemo/crisismap-backend/internal/models"

// Result reports what a reconciliation pass did. Skipped lists drawings the
// surface refused to draw; they stay out of the registry but never abort the
// pass.
type Result struct {
	Created []string
	Updated []string
	Deleted []string
	Skipped []string
}

// Reconcile applies the minimal set of operations so that the registry's
// id-set equals the drawing list's id-set and every live handle matches its
// declarative counterpart. The diff is keyed purely on id: drawings absent
// from the list are deleted, unknown ids are created, and ids present on both
// sides are updated in place without comparing content (an identical
// overwrite is an observable no-op on the surface). The drawing list itself
// is never mutated.
func Reconcile(surface Surface, reg *Registry, drawings []*models.Drawing) Result {
	var res Result

	want := make(map[string]*models.Drawing, len(drawings))
	for _, d := range drawings {
		want[d.ID] = d
	}

	// Remove live shapes no longer present declaratively
	for _, id := range reg.IDs() {
		if _, ok := want[id]; ok {
			continue
		}
		if shape, ok := reg.Get(id); ok {
			surface.Remove(shape)
		}
		reg.Delete(id)
		res.Deleted = append(res.Deleted, id)
	}

	// Create or update, one drawing at a time so a bad entry cannot take the
	// rest of the pass down with it
	for _, d := range drawings {
		shape, exists := reg.Get(d.ID)
		if !exists {
			created, err := surface.Create(d)
			if err != nil {
				res.Skipped = append(res.Skipped, d.ID)
				continue
			}
			reg.Put(d.ID, created)
			res.Created = append(res.Created, d.ID)
			continue
		}

		shape.SetGeometry(d.Geometry)
		shape.SetStyle(d.Style)
		res.Updated = append(res.Updated, d.ID)
	}

	return res
}
