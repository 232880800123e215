package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"workshopapi/api"
	"workshopapi/auth"
	"workshopapi/config"
	"workshopapi/logger"
	"workshopapi/policy"
	"workshopapi/service"
	"workshopapi/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.LogLevel)
	log.Info("starting workshop api", "port", cfg.Port, "database", cfg.DatabaseURL)

	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Error("failed to initialize policy engine", "error", err)
		os.Exit(1)
	}

	svc := service.New(db)

	authConfig := auth.Config{
		Key:      []byte(cfg.JWTKey),
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.TokenTTL,
	}

	h := api.NewHandler(svc, authConfig, cfg.DemoPassword, policyEngine)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("workshop api started", "port", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down workshop api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully", "error", err)
	}

	log.Info("workshop api stopped")
}
