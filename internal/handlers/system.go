package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// SignOut godoc
// @Summary Stop the application
// @Description Replies first, then asks the server to shut down gracefully.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /sign-out [post]
func SignOut(shutdown func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Application is shutting down."})
		if shutdown != nil {
			// Server.Shutdown waits for this response to finish.
			go shutdown()
		}
	}
}
