package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	captureHTTP "day-planner/internal/capture/delivery/http"
	captureRepo "day-planner/internal/capture/repository/postgre"
	captureUC "day-planner/internal/capture/usecase"
	"day-planner/internal/middleware"
	"day-planner/internal/model"
	taskHTTP "day-planner/internal/task/delivery/http"
	taskRepo "day-planner/internal/task/repository/postgre"
	taskUC "day-planner/internal/task/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(gin.Recovery())

	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes wires each domain bottom-up: repository, use case,
// HTTP handler, routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtSecret, srv.rateLimitPerMin)
	api := srv.gin.Group("/api/v1")

	// Capture domain
	capRepo := captureRepo.New(srv.postgresDB, srv.l)
	capUC := captureUC.New(srv.l, capRepo, srv.llm, srv.calendar, srv.defaultTimezone)
	capHandler := captureHTTP.New(srv.l, capUC)
	captureHTTP.RegisterRoutes(api, capHandler, mw)
	srv.l.Infof(ctx, "Capture domain registered")

	// Task domain
	tkRepo := taskRepo.New(srv.postgresDB, srv.l)
	tkUC := taskUC.New(srv.l, tkRepo, srv.defaultTimezone)
	tkHandler := taskHTTP.New(srv.l, tkUC)
	taskHTTP.RegisterRoutes(api, tkHandler, mw)
	srv.l.Infof(ctx, "Task domain registered")
}
