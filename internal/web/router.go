package web

import (
	"net/http"

	apierrors "github.com/eternisai/text2mindmap/internal/errors"
	"github.com/eternisai/text2mindmap/internal/logger"
	"github.com/eternisai/text2mindmap/internal/session"
	"github.com/gin-gonic/gin"
)

// RouterConfig groups what NewRouter wires together.
type RouterConfig struct {
	Handler  *Handler
	Sessions *session.Store
	Logger   *logger.Logger
	// Metrics is served on /metrics when set.
	Metrics      http.Handler
	SecureCookie bool
}

// NewRouter builds the gin engine with logging, sessions, health and metrics.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		cfg.Logger.WithContext(c.Request.Context()).Error("panic recovered", "panic", recovered)
		apierrors.AbortWithInternal(c, "internal server error", nil)
	}))
	router.Use(logger.RequestLoggingMiddleware(cfg.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "instance_id": logger.GetInstanceID()})
	})
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	pages := router.Group("/")
	pages.Use(SessionMiddleware(cfg.Sessions, cfg.SecureCookie))
	cfg.Handler.RegisterPages(pages)

	cfg.Handler.RegisterAPI(router)

	router.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "not found", map[string]interface{}{"path": c.Request.URL.Path})
	})

	return router
}
