package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/villedemo/crisismap-backend/internal/models"
)

// SiteRepository handles database operations for located entities
type SiteRepository struct {
	db *sql.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *sql.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// List retrieves sites matching the filter
func (r *SiteRepository) List(filter models.SiteFilter) ([]models.Site, error) {
	query := `SELECT id, name, address, type, lat, lng, risk_level, created_at FROM sites`

	var conditions []string
	var args []interface{}

	if filter.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, filter.Type)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	sites := []models.Site{}
	for rows.Next() {
		var s models.Site
		var address, risk sql.NullString
		var lat, lng sql.NullFloat64

		if err := rows.Scan(&s.ID, &s.Name, &address, &s.Type, &lat, &lng, &risk, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		s.Address = address.String
		s.RiskLevel = risk.String
		if lat.Valid && lng.Valid {
			s.Location = &models.GeoPoint{Lat: lat.Float64, Lng: lng.Float64}
		}
		sites = append(sites, s)
	}

	return sites, rows.Err()
}

// Create inserts a new site
func (r *SiteRepository) Create(s *models.Site) error {
	var lat, lng interface{}
	if s.Location != nil {
		lat, lng = s.Location.Lat, s.Location.Lng
	}

	_, err := r.db.Exec(`INSERT INTO sites (id, name, address, type, lat, lng, risk_level)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Address, s.Type, lat, lng, s.RiskLevel)
	if err != nil {
		return fmt.Errorf("failed to insert site: %w", err)
	}
	return nil
}
