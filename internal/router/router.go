package router

import (
	"github.com/gin-gonic/gin"

	"hsatrack/internal/config"
	"hsatrack/internal/handler"
	"hsatrack/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	receiptH *handler.ReceiptHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Upload endpoint at the path the frontend posts to
	r.POST("/extract", receiptH.Extract)

	v1 := r.Group("/api/v1")

	receipts := v1.Group("/receipts")
	receipts.POST("/extract", receiptH.Extract)
	receipts.GET("", receiptH.List)
	receipts.GET("/export", receiptH.Export)
	receipts.GET("/:id", receiptH.GetByID)
	receipts.DELETE("/:id", receiptH.Delete)

	return r
}
