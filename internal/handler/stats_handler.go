package handler

import (
	"time"

	app_errors "shift-track/internal/errors"
	"shift-track/internal/response"
	"shift-track/internal/timeutil"

	"github.com/gin-gonic/gin"
)

func parseMonthParam(c *gin.Context) (string, bool) {
	month := c.Param("month")
	if _, err := time.Parse(timeutil.MonthLayout, month); err != nil {
		response.Error(c, app_errors.NewValidationError("invalid month, expected yyyy-MM"))
		return "", false
	}
	return month, true
}

// GetMonthStats handles GET /api/stats/:month.
func (s *Server) GetMonthStats(c *gin.Context) {
	month, ok := parseMonthParam(c)
	if !ok {
		return
	}

	stats, err := s.StatsService.MonthStats(month)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, stats)
}

// GetMonthlyReport handles GET /api/reports/:month.
func (s *Server) GetMonthlyReport(c *gin.Context) {
	month, ok := parseMonthParam(c)
	if !ok {
		return
	}

	report, err := s.StatsService.MonthlyReport(month)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, report)
}
