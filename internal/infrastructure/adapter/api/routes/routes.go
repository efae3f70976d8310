package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API.
// metricsHandler is optional; /metrics is not served when it is nil.
func SetupRoutes(
	router *gin.Engine,
	webhookPath string,
	webhookHandler *handler.WebhookHandler,
	healthHandler *handler.HealthHandler,
	metricsHandler http.Handler,
) {
	// POST <webhookPath> receives processor updates
	router.POST(webhookPath, webhookHandler.HandleUpdate)

	router.GET("/healthz", healthHandler.Health)

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Request id first so recovery and access logs can carry it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
