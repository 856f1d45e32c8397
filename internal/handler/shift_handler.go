package handler

import (
	app_errors "shift-track/internal/errors"
	"shift-track/internal/response"
	"shift-track/internal/services"

	"github.com/gin-gonic/gin"
)

// ListShifts handles GET /api/shifts.
func (s *Server) ListShifts(c *gin.Context) {
	shifts, err := s.ShiftService.List()
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, shifts)
}

// CreateShift handles POST /api/shifts.
func (s *Server) CreateShift(c *gin.Context) {
	var params services.ShiftParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	shift, err := s.ShiftService.Add(params)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, shift)
}

// UpdateShift handles PUT /api/shifts/:id.
func (s *Server) UpdateShift(c *gin.Context) {
	var params services.ShiftParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	shift, err := s.ShiftService.Update(c.Param("id"), params)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, shift)
}

// DeleteShift handles DELETE /api/shifts/:id.
func (s *Server) DeleteShift(c *gin.Context) {
	if err := s.ShiftService.Delete(c.Param("id")); err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, nil)
}

// ApplyShift handles POST /api/shifts/:id/apply.
func (s *Server) ApplyShift(c *gin.Context) {
	shift, err := s.ShiftService.Apply(c.Param("id"))
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, shift)
}

// GetActiveShift handles GET /api/shifts/active. Returns null data when no
// shift is applied; absence is not an error.
func (s *Server) GetActiveShift(c *gin.Context) {
	shift, err := s.ShiftService.Active()
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, shift)
}
