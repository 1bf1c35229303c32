package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "shopfloor-tasks/internal/auth/delivery/http"
	taskHTTP "shopfloor-tasks/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.RateLimit())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, srv.authHandler)
	srv.l.Infof(ctx, "Auth domain registered")

	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)
	srv.l.Infof(ctx, "Task domain registered")
}
