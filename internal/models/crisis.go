package models

// CrisisLevel is the alert level of a crisis. Wire values keep the French
// labels used by persisted dashboards.
type CrisisLevel string

const (
	LevelVigilance CrisisLevel = "Vigilance"
	LevelYellow    CrisisLevel = "Jaune"
	LevelOrange    CrisisLevel = "Orange"
	LevelRed       CrisisLevel = "Rouge"
)

// Crisis describes the current (or archived) crisis impact zone. It is owned
// by the crisis-management collaborator and read-only for the map core.
type Crisis struct {
	ID           string      `json:"id"`
	IsActive     bool        `json:"isActive"`
	Title        string      `json:"title"`
	Type         string      `json:"type"` // Incendie, Inondation, ...
	Level        CrisisLevel `json:"level"`
	Address      string      `json:"address"`
	Center       GeoPoint    `json:"location"`
	RadiusMeters float64     `json:"radius"`
}
