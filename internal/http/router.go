package http

import (
	nethttp "net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"turnaicash-admin/internal/common/config"
	"turnaicash-admin/internal/common/middleware"
)

// Handler is anything that can mount its routes on the API group.
type Handler interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// NewRouter assembles the gin engine: middleware chain, health endpoint, the
// /api/v1 group every feature mounts on, and optional static page serving
// behind the route guard.
func NewRouter(cfg *config.Config, handlers ...Handler) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.Origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RouteGuard())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	if cfg.Server.StaticDir != "" {
		registerPages(router, cfg.Server.StaticDir)
	}

	return router
}

// registerPages serves the built dashboard. Every non-API miss falls back to
// index.html so client-side routes resolve; the route guard has already run
// by the time the fallback fires.
func registerPages(router *gin.Engine, dir string) {
	router.Static("/static", filepath.Join(dir, "static"))
	router.StaticFile("/favicon.ico", filepath.Join(dir, "favicon.ico"))

	index := filepath.Join(dir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		c.File(index)
	})
}
