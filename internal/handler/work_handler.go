package handler

import (
	"time"

	app_errors "shift-track/internal/errors"
	"shift-track/internal/models"
	"shift-track/internal/response"
	"shift-track/internal/timeutil"

	"github.com/gin-gonic/gin"
)

// PerformActionRequest is the body of POST /api/work/actions.
type PerformActionRequest struct {
	Action models.ActionType `json:"action" binding:"required"`
}

// PerformAction handles POST /api/work/actions.
func (s *Server) PerformAction(c *gin.Context) {
	var req PerformActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	snapshot, err := s.WorkLogService.PerformAction(req.Action)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, snapshot)
}

// GetWorkStatus handles GET /api/work/status.
func (s *Server) GetWorkStatus(c *gin.Context) {
	snapshot, err := s.WorkLogService.CurrentStatus()
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, snapshot)
}

// GetWorkLog handles GET /api/work/log. The optional date query defaults
// to today; a day without actions yields null data.
func (s *Server) GetWorkLog(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timeutil.FormatDate(time.Now())
	} else if _, err := time.Parse(timeutil.DateLayout, date); err != nil {
		response.Error(c, app_errors.NewValidationError("invalid date, expected yyyy-MM-dd"))
		return
	}

	log, err := s.WorkLogService.Log(date)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, log)
}

// ResetToday handles POST /api/work/reset. The client is expected to have
// confirmed with the user; the rollback is immediate and has no undo.
func (s *Server) ResetToday(c *gin.Context) {
	if err := s.WorkLogService.ResetToday(); err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, nil)
}
