package models

// EntityType categorizes located entities shown on the map
type EntityType string

const (
	EntityIntervener    EntityType = "INTERVENANT"
	EntitySensitiveSite EntityType = "SITE_SENSIBLE"
	EntityRoom          EntityType = "SALLE"
	EntityMaterial      EntityType = "MATERIEL"
)

// Site is a point-located entity fed to the geofence and rendered as a map
// marker. Location is nil when the entity has not been geocoded yet; such
// entities are excluded from geofence results and from marker rendering.
type Site struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Type      EntityType `json:"type"`
	Location  *GeoPoint  `json:"location,omitempty"`
	RiskLevel string     `json:"riskLevel,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
}

// LocationPoint implements geofence.Located
func (s Site) LocationPoint() *GeoPoint {
	return s.Location
}

// SiteFilter represents query parameters for listing sites
type SiteFilter struct {
	Type EntityType `form:"type"`
}
