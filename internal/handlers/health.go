package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarcd/hello-service/internal/buildinfo"
)

// HealthPath is the route used by deploy pipelines to probe a rollout
const HealthPath = "/health"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthHandler handles health check requests
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: buildinfo.Version,
	})
}
