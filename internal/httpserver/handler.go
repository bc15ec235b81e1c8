package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roa-expert-system/internal/middleware"
	"roa-expert-system/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l)
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}

	// The frontend is served separately; all origins are accepted.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	srv.gin.Use(cors.New(corsCfg))
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

// registerDomainRoutes registers the expert-system routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.POST("/ask", srv.ask)
	srv.gin.GET("/weather_bengaluru", srv.directWeather)
	srv.gin.GET("/news_headlines", srv.directNews)
	srv.gin.GET("/queries/recent", srv.recentQueries)

	srv.l.Infof(ctx, "Expert system routes registered (POST /ask, GET /weather_bengaluru, GET /news_headlines)")
}
