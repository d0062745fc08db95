package models

// MapPreview summarizes a headless dry-render of the stored map state: how
// many primitives the surface would hold and which drawings it would refuse.
// Used to sanity-check persisted state without a real map attached.
type MapPreview struct {
	Drawings   int      `json:"drawings"`
	Rendered   int      `json:"rendered"`
	Skipped    []string `json:"skipped,omitempty"`
	Markers    int      `json:"markers"`
	CrisisZone bool     `json:"crisisZone"`
	Primitives int      `json:"primitives"`
}
