package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	metrics "github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"diabetes-predictor/internal/adapters/primary/http/flash"
	"diabetes-predictor/internal/adapters/primary/http/handlers"
	"diabetes-predictor/internal/adapters/primary/http/middleware"
	"diabetes-predictor/internal/adapters/secondary/artifact"
	"diabetes-predictor/internal/adapters/secondary/gometrics"
	"diabetes-predictor/internal/config"
	"diabetes-predictor/internal/core/services"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	closeLog := initLogger(cfg)
	defer closeLog()

	// Loaded once; a failure leaves predictions disabled but the server up.
	model := artifact.Load(cfg.Model.Path)

	recorder := gometrics.NewRecorder(metrics.DefaultRegistry)
	predictionSvc := services.NewPredictionService(model, recorder)

	h := handlers.New(predictionSvc, flash.NewStore(cfg.Flash.Secret), recorder)

	gin.SetMode(cfg.Server.GinMode)
	router, err := handlers.NewRouter(h, middleware.RequestID(), middleware.Logging(), middleware.Recovery())
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	// Start server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

// initLogger configures the global logger and returns a function that
// flushes the log file, if any.
func initLogger(cfg *config.Config) func() {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.Logger.File == "" {
		return func() {}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Logger.File,
		MaxSize:    cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	return func() {
		_ = rotator.Close()
	}
}
