package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires every route under /api. shutdown is called by the sign-out endpoint.
func NewRouter(origins []string, jobs *JobApplicationHandler, shutdown func()) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestIDMiddleware())

	config := cors.DefaultConfig()
	config.AllowOrigins = origins
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", requestIDHeader}
	config.ExposeHeaders = []string{requestIDHeader}
	config.MaxAge = 12 * time.Hour
	r.Use(cors.New(config))

	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.POST("/sign-out", SignOut(shutdown))

		api.GET("/job-applications", jobs.List)
		api.POST("/job-applications", jobs.Create)
		api.POST("/job-applications/extract", jobs.Extract)
		api.PUT("/job-applications/:id", jobs.Update)
		api.PATCH("/job-applications/:id/status", jobs.UpdateStatus)
		api.DELETE("/job-applications/:id", jobs.Delete)
	}

	return r
}
