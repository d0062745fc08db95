package render

import "github.com/villedemo/crisismap-backend/internal/models"

// Crisis zone colors per alert level; archived crises are drawn muted
const inactiveColor = "#94a3b8"

func levelColor(level models.CrisisLevel) string {
	switch level {
	case models.LevelRed:
		return "#ef4444"
	case models.LevelOrange:
		return "#f97316"
	case models.LevelYellow:
		return "#eab308"
	default:
		return "#22c55e"
	}
}

func entityColor(t models.EntityType) string {
	switch t {
	case models.EntitySensitiveSite:
		return "#ef4444"
	case models.EntityIntervener:
		return "#60a5fa"
	case models.EntityRoom:
		return "#4ade80"
	case models.EntityMaterial:
		return "#fbbf24"
	default:
		return "#94a3b8"
	}
}

// Sensitive sites get a bigger marker than everything else
func entityRadius(t models.EntityType) float64 {
	if t == models.EntitySensitiveSite {
		return 10
	}
	return 7
}
