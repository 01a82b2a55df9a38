package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/piwi3910/toolbox/internal/server/handlers"
)

// New wires the Gin engine with the API routes and middlewares.
func New(h *handlers.Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.GET("/materials", h.Materials)
	api.POST("/optimize", h.Optimize)
	api.POST("/compare", h.Compare)
	api.POST("/estimate", h.Estimate)
	api.POST("/render", h.Render)
	api.POST("/export/pdf", h.ExportPDF)
	api.POST("/export/xlsx", h.ExportXLSX)
	api.POST("/import", h.Import)

	projects := api.Group("/projects")
	projects.PUT("/:key", h.SaveProject)
	projects.GET("/:key", h.LoadProject)
	projects.DELETE("/:key", h.DeleteProject)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
