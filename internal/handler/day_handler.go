package handler

import (
	"time"

	app_errors "shift-track/internal/errors"
	"shift-track/internal/models"
	"shift-track/internal/response"
	"shift-track/internal/timeutil"

	"github.com/gin-gonic/gin"
)

func parseDateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse(timeutil.DateLayout, date); err != nil {
		response.Error(c, app_errors.NewValidationError("invalid date, expected yyyy-MM-dd"))
		return "", false
	}
	return date, true
}

// GetDay handles GET /api/days/:date.
func (s *Server) GetDay(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	record, err := s.DayStatusSvc.Get(date)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, record)
}

// SetDayStatusRequest is the body of PUT /api/days/:date/status.
type SetDayStatusRequest struct {
	Status models.DayStatus `json:"status" binding:"required"`
}

// SetDayStatus handles PUT /api/days/:date/status, recording a manual
// override such as leave or holiday.
func (s *Server) SetDayStatus(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	var req SetDayStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	record, err := s.DayStatusSvc.SetManual(date, req.Status)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, record)
}

// GetWeek handles GET /api/days. The optional anchor query selects the week;
// it defaults to the current week.
func (s *Server) GetWeek(c *gin.Context) {
	anchor := time.Now()
	if v := c.Query("anchor"); v != "" {
		parsed, err := time.Parse(timeutil.DateLayout, v)
		if err != nil {
			response.Error(c, app_errors.NewValidationError("invalid anchor, expected yyyy-MM-dd"))
			return
		}
		anchor = parsed
	}

	week, err := s.DayStatusSvc.Week(anchor)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, week)
}
