package service

import (
	"fmt"

	"github.com/villedemo/crisismap-backend/internal/mapsync"
	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/render"
	"github.com/villedemo/crisismap-backend/internal/repository"
)

// MapService handles business logic for the drawing list and crisis state
type MapService struct {
	drawingRepo *repository.DrawingRepository
	crisisRepo  *repository.CrisisRepository
	siteRepo    *repository.SiteRepository
}

// NewMapService creates a new map service
func NewMapService(drawingRepo *repository.DrawingRepository, crisisRepo *repository.CrisisRepository, siteRepo *repository.SiteRepository) *MapService {
	return &MapService{
		drawingRepo: drawingRepo,
		crisisRepo:  crisisRepo,
		siteRepo:    siteRepo,
	}
}

// ListDrawings returns the persisted declarative drawing list
func (s *MapService) ListDrawings() ([]*models.Drawing, error) {
	drawings, err := s.drawingRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load drawings: %w", err)
	}
	return drawings, nil
}

// ReplaceDrawings validates and stores a full drawing list. This is the
// extraction sink: the client pushes the complete list after every edit
// gesture, and invalid entries reject the whole batch before anything is
// written.
func (s *MapService) ReplaceDrawings(drawings []*models.Drawing) error {
	seen := make(map[string]bool, len(drawings))
	for _, d := range drawings {
		if d == nil {
			return fmt.Errorf("%w: null drawing entry", models.ErrValidation)
		}
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate drawing id %s", models.ErrValidation, d.ID)
		}
		seen[d.ID] = true
	}

	if err := s.drawingRepo.ReplaceAll(drawings); err != nil {
		return fmt.Errorf("failed to store drawings: %w", err)
	}
	return nil
}

// Preview dry-renders the stored map state on an in-memory surface and
// reports what a client map would end up drawing, including any drawings the
// surface would skip. Nothing is persisted or mutated.
func (s *MapService) Preview() (*models.MapPreview, error) {
	drawings, err := s.drawingRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load drawings: %w", err)
	}
	crisis, err := s.crisisRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load crisis: %w", err)
	}
	sites, err := s.siteRepo.List(models.SiteFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load sites: %w", err)
	}

	surface := mapsync.NewMemSurface()
	adapter := render.NewAdapter(surface, nil, nil)
	res := adapter.SetDrawings(drawings)
	adapter.SetCrisis(crisis, sites)
	adapter.SetSites(sites)

	markers := 0
	for _, site := range sites {
		if site.Location != nil {
			markers++
		}
	}

	return &models.MapPreview{
		Drawings:   len(drawings),
		Rendered:   len(res.Created),
		Skipped:    res.Skipped,
		Markers:    markers,
		CrisisZone: crisis != nil,
		Primitives: surface.Count(),
	}, nil
}

// GetCrisis returns the current crisis descriptor, nil when none is set
func (s *MapService) GetCrisis() (*models.Crisis, error) {
	crisis, err := s.crisisRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load crisis: %w", err)
	}
	return crisis, nil
}

// SetCrisis replaces the current crisis descriptor. Pass nil to clear it.
func (s *MapService) SetCrisis(c *models.Crisis) error {
	if c != nil {
		if c.ID == "" {
			return fmt.Errorf("%w: crisis requires an id", models.ErrValidation)
		}
		if c.RadiusMeters <= 0 {
			return fmt.Errorf("%w: crisis radius must be positive", models.ErrValidation)
		}
	}
	if err := s.crisisRepo.Set(c); err != nil {
		return fmt.Errorf("failed to store crisis: %w", err)
	}
	return nil
}
