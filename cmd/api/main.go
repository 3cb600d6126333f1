// @title           MindVault API
// @version         1.0
// @description     Personal notes, bookmarks and todos with JWT auth.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/app"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/config"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/logger"

	"github.com/joho/godotenv"

	_ "github.com/shazzad098/Personal-Knowledge-Tracker/docs"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("no .env file found, using environment variables from OS")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Sugar.Fatalf("config: %v", err)
	}
	logger.Sugar.Infow("config loaded, connecting to dependencies", "env", cfg.App.Env, "redis", cfg.Redis.Enabled())

	application, err := app.New(cfg)
	if err != nil {
		logger.Sugar.Fatalf("app init: %v", err)
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		logger.Sugar.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Sugar.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Sugar.Errorf("server shutdown: %v", err)
	}

	if err := application.Close(ctx); err != nil {
		logger.Sugar.Errorf("app close: %v", err)
	}
}
