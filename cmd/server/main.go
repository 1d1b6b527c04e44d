// Package main runs the saksmatch HTTP API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stevenslegal/saksmatch/config"
	internalmw "github.com/stevenslegal/saksmatch/internal/middleware"
	"github.com/stevenslegal/saksmatch/internal/repositories/dataset"
	"github.com/stevenslegal/saksmatch/pkg/matching"
	"github.com/stevenslegal/saksmatch/pkg/routes/datasetroute"
	"github.com/stevenslegal/saksmatch/pkg/routes/health"
	"github.com/stevenslegal/saksmatch/pkg/routes/launch"
	"github.com/stevenslegal/saksmatch/pkg/routes/match"
)

var version = "dev"

// CustomValidator adapts go-playground/validator to echo's Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	log := logger.Sugar()
	log.Infow("starting", "app", cfg.AppName, "version", version, "port", cfg.Port)

	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warnw("tracer provider shutdown failed", "error", err)
		}
	}()

	repo := dataset.NewRepository(log)
	svc := matching.NewService(log, repo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = internalmw.Error(log)
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware(cfg.AppName))

	checker := health.NewChecker(repo, version)
	checker.RegisterRoutes(e)

	api := e.Group("/api/v1")
	datasetroute.NewHandler(log, repo).Register(api.Group("/datasets"))
	match.NewHandler(log, svc, cfg).Register(api.Group("/match"))
	launch.NewHandler().Register(api.Group("/launch"))

	e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		checker.SetReady(true)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	checker.SetReady(false)
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.PrettyLogs {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
