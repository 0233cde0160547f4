package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eternisai/text2mindmap/internal/config"
	"github.com/eternisai/text2mindmap/internal/credentials"
	"github.com/eternisai/text2mindmap/internal/logger"
	"github.com/eternisai/text2mindmap/internal/metrics"
	"github.com/eternisai/text2mindmap/internal/mindmap"
	"github.com/eternisai/text2mindmap/internal/session"
	"github.com/eternisai/text2mindmap/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(logger.FromConfig(cfg.LogLevel, cfg.LogFormat))
	log := appLogger.WithComponent("main")

	log.Info("setting gin mode", slog.String("mode", cfg.GinMode))
	gin.SetMode(cfg.GinMode)

	sessions := session.NewStore()
	m := metrics.New(sessions.Len)

	generator := mindmap.NewGenerator(
		mindmap.NewClientFactory(cfg.Provider.BaseURL, appLogger),
		appLogger,
		mindmap.WithObserver(m),
	)
	resolver := credentials.NewResolver(cfg, config.APIKeySecret, appLogger)

	renderer, err := web.NewHTMLRenderer()
	if err != nil {
		log.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler := web.NewHandler(generator, resolver, sessions, renderer, cfg.UI.Tips, appLogger)
	router := web.NewRouter(web.RouterConfig{
		Handler:      handler,
		Sessions:     sessions,
		Logger:       appLogger,
		Metrics:      m.Handler(),
		SecureCookie: os.Getenv("APP_ENV") == "production",
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", logger.RequestIDHeader},
	}).Handler(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sweepSessions(ctx, sessions, time.Duration(cfg.SessionIdleTimeoutMinutes)*time.Minute, log)

	go func() {
		log.Info("🔁  mindmap server listening", slog.String("addr", srv.Addr), slog.String("base_url", cfg.Provider.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ServerShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("✅ server exited")
}

// sweepSessions drops idle sessions, which ends their credential reuse.
func sweepSessions(ctx context.Context, store *session.Store, maxIdle time.Duration, log *logger.Logger) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := store.Sweep(maxIdle); n > 0 {
				log.Debug("expired idle sessions", slog.Int("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
