package handler

import (
	"net/http"
	"time"

	"hospital-finder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	hospitalService *service.HospitalService
}

func NewHealthHandler(hospitalService *service.HospitalService) *HealthHandler {
	return &HealthHandler{hospitalService: hospitalService}
}

// Health reports service status along with the hospital count. A
// failing count query means the database is unreachable.
func (h *HealthHandler) Health(c *gin.Context) {
	count, err := h.hospitalService.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Health check failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"message":        "Hospital Finder API is running",
		"database":       "connected",
		"totalHospitals": count,
		"version":        apiVersion,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
