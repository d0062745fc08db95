package repository

import (
	"database/sql"
	"fmt"

	"github.com/villedemo/crisismap-backend/internal/models"
)

// CrisisRepository stores the current crisis descriptor. The map core only
// ever needs the latest one; history stays with the crisis-management
// collaborator.
type CrisisRepository struct {
	db *sql.DB
}

// NewCrisisRepository creates a new crisis repository
func NewCrisisRepository(db *sql.DB) *CrisisRepository {
	return &CrisisRepository{db: db}
}

// Get returns the current crisis, or nil when none is set
func (r *CrisisRepository) Get() (*models.Crisis, error) {
	row := r.db.QueryRow(`SELECT id, is_active, title, type, level, address, lat, lng, radius
		FROM crisis ORDER BY updated_at DESC LIMIT 1`)

	var c models.Crisis
	var title, ctype, address sql.NullString
	err := row.Scan(&c.ID, &c.IsActive, &title, &ctype, &c.Level, &address,
		&c.Center.Lat, &c.Center.Lng, &c.RadiusMeters)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan crisis: %w", err)
	}
	c.Title = title.String
	c.Type = ctype.String
	c.Address = address.String
	return &c, nil
}

// Set replaces the current crisis descriptor
func (r *CrisisRepository) Set(c *models.Crisis) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM crisis"); err != nil {
		return fmt.Errorf("failed to clear crisis: %w", err)
	}
	if c != nil {
		_, err = tx.Exec(`INSERT INTO crisis (id, is_active, title, type, level, address, lat, lng, radius)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.IsActive, c.Title, c.Type, c.Level, c.Address,
			c.Center.Lat, c.Center.Lng, c.RadiusMeters)
		if err != nil {
			return fmt.Errorf("failed to insert crisis: %w", err)
		}
	}

	return tx.Commit()
}
