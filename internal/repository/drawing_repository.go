package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/villedemo/crisismap-backend/internal/models"
)

// DrawingRepository handles database operations for map drawings
type DrawingRepository struct {
	db *sql.DB
}

// NewDrawingRepository creates a new drawing repository
func NewDrawingRepository(db *sql.DB) *DrawingRepository {
	return &DrawingRepository{db: db}
}

// List retrieves all drawings in their stored order
func (r *DrawingRepository) List() ([]*models.Drawing, error) {
	rows, err := r.db.Query(`SELECT id, kind, geometry, stroke_color, fill_color, radius, label
		FROM drawings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query drawings: %w", err)
	}
	defer rows.Close()

	drawings := []*models.Drawing{}
	for rows.Next() {
		var d models.Drawing
		var geometry string
		var stroke, fill, label sql.NullString
		var radius sql.NullFloat64

		if err := rows.Scan(&d.ID, &d.Kind, &geometry, &stroke, &fill, &radius, &label); err != nil {
			return nil, fmt.Errorf("failed to scan drawing: %w", err)
		}
		if err := json.Unmarshal([]byte(geometry), &d.Geometry); err != nil {
			return nil, fmt.Errorf("failed to decode geometry for drawing %s: %w", d.ID, err)
		}
		d.Style = models.DrawingStyle{
			StrokeColor: stroke.String,
			FillColor:   fill.String,
			Radius:      radius.Float64,
		}
		d.Label = label.String
		drawings = append(drawings, &d)
	}

	return drawings, rows.Err()
}

// ReplaceAll atomically replaces the stored drawing list. The incoming list
// is the authoritative declarative state produced by extraction, so a full
// replace mirrors its semantics exactly.
func (r *DrawingRepository) ReplaceAll(drawings []*models.Drawing) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM drawings"); err != nil {
		return fmt.Errorf("failed to clear drawings: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO drawings (id, kind, geometry, stroke_color, fill_color, radius, label, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range drawings {
		geometry, err := json.Marshal(d.Geometry)
		if err != nil {
			return fmt.Errorf("failed to encode geometry for drawing %s: %w", d.ID, err)
		}
		if _, err := stmt.Exec(d.ID, d.Kind, string(geometry),
			d.Style.StrokeColor, d.Style.FillColor, d.Style.Radius, d.Label, i); err != nil {
			return fmt.Errorf("failed to insert drawing %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}
