// Package server wires the analysis pipeline to its HTTP surface.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetupRouter builds the gin engine with CORS, request IDs and the API
// routes.
func SetupRouter(handler *Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-Id", uuid.NewString())
		c.Next()
	})

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.POST("/analyze", handler.AnalyzeReview)
		api.GET("/dataset/stats", handler.DatasetStats)
	}

	return r
}
