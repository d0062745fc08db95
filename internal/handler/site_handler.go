package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/service"
	"github.com/villedemo/crisismap-backend/pkg/response"
)

// SiteHandler handles HTTP requests for located entities
type SiteHandler struct {
	siteService *service.SiteService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteService *service.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// GetSites handles GET /api/v1/sites
func (h *SiteHandler) GetSites(c *gin.Context) {
	var filter models.SiteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	sites, err := h.siteService.ListSites(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, sites)
}

// CreateSite handles POST /api/v1/sites
func (h *SiteHandler) CreateSite(c *gin.Context) {
	var site models.Site
	if err := c.ShouldBindJSON(&site); err != nil {
		response.BadRequest(c, "Invalid site payload")
		return
	}

	if err := h.siteService.CreateSite(&site); err != nil {
		if errors.Is(err, models.ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, site)
}

// GetImpacted handles GET /api/v1/crisis/impacted
func (h *SiteHandler) GetImpacted(c *gin.Context) {
	impacted, err := h.siteService.Impacted()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, impacted)
}

// geocodeRequest is the POST /api/v1/geocode/fallback payload
type geocodeRequest struct {
	Address string `json:"address" binding:"required"`
}

// FallbackGeocode handles POST /api/v1/geocode/fallback
func (h *SiteHandler) FallbackGeocode(c *gin.Context) {
	var req geocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Address is required")
		return
	}

	point, err := h.siteService.Geocode(req.Address)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, point)
}
