package httpserver

import (
	"context"

	"assistant-tools/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP gateway mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP gateway mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts one call endpoint per function registry.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())
	api.POST("/calendar/call", srv.callCalendar)
	api.POST("/tasks/call", srv.callTasks)

	srv.l.Infof(context.Background(), "Function routes registered at POST /api/v1/{calendar,tasks}/call")
}
