package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/villedemo/crisismap-backend/internal/models"
	"github.com/villedemo/crisismap-backend/internal/service"
	"github.com/villedemo/crisismap-backend/pkg/response"
)

// MapHandler handles HTTP requests for drawings and the crisis descriptor
type MapHandler struct {
	mapService *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(mapService *service.MapService) *MapHandler {
	return &MapHandler{mapService: mapService}
}

// GetDrawings handles GET /api/v1/drawings
func (h *MapHandler) GetDrawings(c *gin.Context) {
	drawings, err := h.mapService.ListDrawings()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, drawings)
}

// PutDrawings handles PUT /api/v1/drawings. The body is the complete
// declarative drawing list; it replaces whatever was stored before.
func (h *MapHandler) PutDrawings(c *gin.Context) {
	var payload []models.Drawing
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid drawing list payload")
		return
	}

	drawings := make([]*models.Drawing, len(payload))
	for i := range payload {
		drawings[i] = &payload[i]
	}

	if err := h.mapService.ReplaceDrawings(drawings); err != nil {
		if errors.Is(err, models.ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"count": len(drawings)})
}

// GetPreview handles GET /api/v1/map/preview
func (h *MapHandler) GetPreview(c *gin.Context) {
	preview, err := h.mapService.Preview()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, preview)
}

// GetCrisis handles GET /api/v1/crisis
func (h *MapHandler) GetCrisis(c *gin.Context) {
	crisis, err := h.mapService.GetCrisis()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, crisis)
}

// PutCrisis handles PUT /api/v1/crisis. A null body clears the crisis.
func (h *MapHandler) PutCrisis(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Invalid crisis payload")
		return
	}

	var crisis *models.Crisis
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		crisis = &models.Crisis{}
		if err := json.Unmarshal(trimmed, crisis); err != nil {
			response.BadRequest(c, "Invalid crisis payload")
			return
		}
	}

	if err := h.mapService.SetCrisis(crisis); err != nil {
		if errors.Is(err, models.ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, crisis)
}
