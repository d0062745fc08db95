package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/villedemo/crisismap-backend/internal/geofence"
	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/repository"
	"github.com/villedemo/crisismap-backend/internal/spatial"
)

// SiteService handles business logic for located entities and geofence
// evaluation
type SiteService struct {
	siteRepo   *repository.SiteRepository
	crisisRepo *repository.CrisisRepository
	anchor     models.GeoPoint
}

// NewSiteService creates a new site service. anchor is the town center used
// by the deterministic fallback geocoder.
func NewSiteService(siteRepo *repository.SiteRepository, crisisRepo *repository.CrisisRepository, anchor models.GeoPoint) *SiteService {
	return &SiteService{
		siteRepo:   siteRepo,
		crisisRepo: crisisRepo,
		anchor:     anchor,
	}
}

// ListSites returns stored sites matching the filter
func (s *SiteService) ListSites(filter models.SiteFilter) ([]models.Site, error) {
	sites, err := s.siteRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load sites: %w", err)
	}
	return sites, nil
}

// CreateSite stores a new site. A site arriving without coordinates is
// placed with the fallback geocoder so it still shows up on the map and in
// geofence results.
func (s *SiteService) CreateSite(site *models.Site) error {
	if site.Name == "" {
		return fmt.Errorf("%w: site requires a name", models.ErrValidation)
	}
	if site.Type == "" {
		return fmt.Errorf("%w: site requires a type", models.ErrValidation)
	}
	if site.ID == "" {
		site.ID = uuid.NewString()
	}
	if site.Location == nil && site.Address != "" {
		loc := spatial.FallbackGeocode(site.Address, s.anchor)
		site.Location = &loc
	}

	if err := s.siteRepo.Create(site); err != nil {
		return fmt.Errorf("failed to store site: %w", err)
	}
	return nil
}

// Impacted returns the stored sites inside the current crisis impact zone.
// With no crisis set, the impacted list is empty.
func (s *SiteService) Impacted() ([]models.Site, error) {
	crisis, err := s.crisisRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load crisis: %w", err)
	}
	if crisis == nil {
		return []models.Site{}, nil
	}

	sites, err := s.siteRepo.List(models.SiteFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load sites: %w", err)
	}

	impacted := geofence.Impacted(crisis, sites)
	if impacted == nil {
		impacted = []models.Site{}
	}
	return impacted, nil
}

// Geocode returns the deterministic fallback placement for an address
func (s *SiteService) Geocode(address string) (models.GeoPoint, error) {
	if address == "" {
		return models.GeoPoint{}, fmt.Errorf("%w: address is required", models.ErrValidation)
	}
	return spatial.FallbackGeocode(address, s.anchor), nil
}
