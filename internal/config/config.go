package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/spatial"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	MapCenter models.GeoPoint // anchor for the fallback geocoder
	RateLimit int             // requests per minute per client IP
}

// Load reads configuration from .env (if present) and environment variables
func Load() *Config {
	// Missing .env is fine; env vars still apply
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/crisismap.db"
	}

	center := spatial.TownCenter
	if lat, err := strconv.ParseFloat(os.Getenv("MAP_CENTER_LAT"), 64); err == nil {
		center.Lat = lat
	}
	if lng, err := strconv.ParseFloat(os.Getenv("MAP_CENTER_LNG"), 64); err == nil {
		center.Lng = lng
	}

	rateLimit := 300
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MINUTE")); err == nil && v > 0 {
		rateLimit = v
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		MapCenter: center,
		RateLimit: rateLimit,
	}
}
