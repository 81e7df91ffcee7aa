package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wine-quality-service/internal/adapters/primary/http/handlers"
	"wine-quality-service/internal/adapters/primary/http/middleware"
	"wine-quality-service/internal/adapters/secondary/artifact"
	"wine-quality-service/internal/config"
	"wine-quality-service/internal/core/services"
	"wine-quality-service/internal/logger"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger.Setup(cfg.Logger)

	// The model is loaded before the listener opens. A load failure exits
	// the process; no request is ever served without a model.
	store := artifact.NewFileStore(cfg.Model.Path, cfg.Model.MetricsPath)
	predictor := services.NewPredictorService(store, services.Identity{
		Name:   cfg.Identity.Name,
		RollNo: cfg.Identity.RollNo,
	})
	if err := predictor.Load(context.Background()); err != nil {
		log.Fatalf("startup: %v", err)
	}

	h := handlers.New(predictor, cfg.Server.Banner)

	// Setup router
	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router.Group(""))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}
