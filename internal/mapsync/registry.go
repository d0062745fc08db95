package mapsync

// Registry maps drawing ids to live shape handles, preserving creation order
// so extraction reads shapes back in the order they were drawn. The id is the
// only cross-boundary reference: shapes themselves never learn their id.
type Registry struct {
	order  []string
	shapes map[string]Shape
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]Shape)}
}

// Get returns the shape registered under id, if any
func (r *Registry) Get(id string) (Shape, bool) {
	s, ok := r.shapes[id]
	return s, ok
}

// Has reports whether a shape is registered under id
func (r *Registry) Has(id string) bool {
	_, ok := r.shapes[id]
	return ok
}

// Put registers a shape under id, appending it to the iteration order.
// Re-registering an existing id replaces the handle but keeps its position.
func (r *Registry) Put(id string, s Shape) {
	if _, ok := r.shapes[id]; !ok {
		r.order = append(r.order, id)
	}
	r.shapes[id] = s
}

// Delete removes the shape registered under id
func (r *Registry) Delete(id string) {
	if _, ok := r.shapes[id]; !ok {
		return
	}
	delete(r.shapes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// IDs returns the registered ids in creation order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of registered shapes
func (r *Registry) Len() int {
	return len(r.shapes)
}
