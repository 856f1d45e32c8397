package handler

import (
	"encoding/json"

	app_errors "shift-track/internal/errors"
	"shift-track/internal/response"

	"github.com/gin-gonic/gin"
)

// GetSettings handles GET /api/settings.
func (s *Server) GetSettings(c *gin.Context) {
	settings, err := s.SettingsService.Get()
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, settings)
}

// UpdateSettings handles PUT /api/settings. The body is a partial JSON
// object merged over the stored settings.
func (s *Server) UpdateSettings(c *gin.Context) {
	var patch json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	settings, err := s.SettingsService.Update(patch)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, settings)
}
