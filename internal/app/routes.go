package app

import (
	"net/http"

	"github.com/dongne-wiki/core/internal/middleware"
	"github.com/dongne-wiki/core/internal/modules/ai"
	"github.com/dongne-wiki/core/internal/modules/document"
	"github.com/dongne-wiki/core/internal/modules/favorite"
	"github.com/dongne-wiki/core/internal/modules/geocode"
	"github.com/dongne-wiki/core/internal/modules/review"
	"github.com/dongne-wiki/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiting and idempotence run on every API route (requires Redis).
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(a.rc.Raw()))
	api.Use(middleware.Idempotence(a.rc.Raw()))

	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	docSvc := document.NewService(a.db, a.rc)
	document.NewHandler(docSvc).RegisterRoutes(api)

	review.NewHandler(review.NewService(a.db)).RegisterRoutes(api)

	favStore := favorite.NewStore()
	favorite.NewHandler(favorite.NewService(a.db), favStore).RegisterRoutes(api)

	geocode.NewHandler(geocode.NewService(a.cfg.NaverMap)).RegisterRoutes(api)

	aiSvc := ai.NewService(a.cfg.AI, a.logger)
	ai.NewHandler(aiSvc).RegisterRoutes(api)
}
