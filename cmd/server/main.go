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

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/scenescore/scenescore/config"
	"github.com/scenescore/scenescore/internal/email"
	"github.com/scenescore/scenescore/internal/health"
	"github.com/scenescore/scenescore/internal/infrastructure/postgres"
	ctxlog "github.com/scenescore/scenescore/internal/log"
	"github.com/scenescore/scenescore/internal/metrics"
	"github.com/scenescore/scenescore/internal/spotify"
	httptransport "github.com/scenescore/scenescore/internal/transport/http"
	"github.com/scenescore/scenescore/internal/transport/http/handler"
	"github.com/scenescore/scenescore/internal/usecase"
	"github.com/scenescore/scenescore/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	sceneRepo := postgres.NewSceneRepository(pool)

	// Auth
	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	authUsecase := usecase.NewAuthUsecase(userRepo, emailSender, []byte(cfg.JWTSecret), cfg.ResetLinkBase, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Projects & scenes
	projectUsecase := usecase.NewProjectUsecase(projectRepo, sceneRepo)
	projectHandler := handler.NewProjectHandler(projectUsecase, logger)
	sceneUsecase := usecase.NewSceneUsecase(sceneRepo, projectRepo)
	sceneHandler := handler.NewSceneHandler(sceneUsecase, logger)
	publicHandler := handler.NewPublicHandler(projectUsecase, logger)

	// Spotify search proxy
	spotifyClient := spotify.NewClient(time.Duration(cfg.SpotifyTimeoutSec) * time.Second)
	searchUsecase := usecase.NewSearchUsecase(projectRepo, spotifyClient, logger)
	searchHandler := handler.NewSearchHandler(searchUsecase, logger)

	views, err := web.NewHandler()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr: ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, httptransport.Handlers{
			Auth:    authHandler,
			Project: projectHandler,
			Scene:   sceneHandler,
			Public:  publicHandler,
			Search:  searchHandler,
			Views:   views,
		}, []byte(cfg.JWTSecret)),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	// Hourly sweep of expired/used reset tokens.
	maintenance := cron.New()
	_, err = maintenance.AddFunc("@hourly", func() {
		n, err := userRepo.PurgeResetTokens(context.Background())
		if err != nil {
			logger.Error("purge reset tokens", "error", err)
			return
		}
		if n > 0 {
			metrics.ResetTokensPurgedTotal.Add(float64(n))
			logger.Info("purged reset tokens", "count", n)
		}
	})
	if err != nil {
		log.Fatalf("cron: %v", err)
	}
	maintenance.Start()
	defer maintenance.Stop()

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
