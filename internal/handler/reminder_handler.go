package handler

import (
	"shift-track/internal/response"

	"github.com/gin-gonic/gin"
)

// GetNextReminders handles GET /api/reminders/next, returning the upcoming
// reminder windows of the applied shift. An empty list means no shift is
// applied today.
func (s *Server) GetNextReminders(c *gin.Context) {
	windows, err := s.ReminderService.NextWindows()
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}
	response.Success(c, windows)
}
