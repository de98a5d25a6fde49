package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edusight/dropsight-backend/internal/config"
	"github.com/edusight/dropsight-backend/internal/handler"
	"github.com/edusight/dropsight-backend/internal/middleware"
	"github.com/edusight/dropsight-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student *handler.StudentHandler
	Report  *handler.ReportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for report downloads (10 per minute per IP) — each
	// download walks the full snapshot and renders a document.
	reportLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── Students ──────────────────────────────────────────────────────
	students := router.Group("/api/v1/students")
	{
		students.POST("", handlers.Student.Create)
		students.GET("", handlers.Student.List)
		students.GET("/summary", handlers.Student.Summary)
		students.POST("/preview-risk", handlers.Student.PreviewRisk)

		reports := students.Group("/report")
		reports.Use(reportLimiter.Middleware())
		{
			reports.GET("/pdf", handlers.Report.PDF)
			reports.GET("/excel", handlers.Report.Excel)
		}
	}

	return router
}
