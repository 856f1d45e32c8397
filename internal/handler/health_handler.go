package handler

import (
	"net/http"
	"time"

	"shift-track/internal/version"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health. It probes the storage backend and reports
// uptime; it stays public so load balancers can poll it without a key.
func (s *Server) Health(c *gin.Context) {
	status := "healthy"
	storage := "ok"
	httpStatus := http.StatusOK

	if _, err := s.Store.Exists("shifts"); err != nil {
		status = "unhealthy"
		storage = "error"
		httpStatus = http.StatusServiceUnavailable
	}

	uptime := ""
	if v, ok := c.Get("serverStartTime"); ok {
		if startTime, ok := v.(time.Time); ok {
			uptime = time.Since(startTime).Truncate(time.Second).String()
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"storage":   storage,
		"version":   version.Version,
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    uptime,
	})
}
