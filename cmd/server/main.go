package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spicevilla/catering/internal/bootstrap"
	"github.com/spicevilla/catering/internal/config"
	"github.com/spicevilla/catering/internal/db"
	"github.com/spicevilla/catering/internal/httpserver"
	"github.com/spicevilla/catering/internal/logging"
	mwauth "github.com/spicevilla/catering/internal/middleware/auth"
	"github.com/spicevilla/catering/internal/repo"
	"github.com/spicevilla/catering/internal/service"
	"github.com/spicevilla/catering/internal/session"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Env)

	database, err := db.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}

	if err := bootstrap.Run(ctx, database, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("bootstrap failed")
	}

	users := repo.NewUserRepository(database)
	menu := repo.NewMenuRepository(database)
	sessions := session.NewManager([]byte(cfg.SessionSecret), cfg.SessionTTL)

	handlers := &httpserver.Handlers{
		Auth:     service.NewAuthService(users, logger),
		Menu:     service.NewMenuService(menu),
		Sessions: sessions,
		Users:    users,
		Log:      logger,
	}
	authMW := &mwauth.Middleware{Sessions: sessions, Users: users}

	e, err := httpserver.New(&httpserver.Deps{
		Handlers: handlers,
		AuthMW:   authMW,
		Log:      logger,
		Metrics:  true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("router init failed")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error().Err(err).Msg("db close error")
		}
	}

	logger.Info().Msg("shutdown complete")
}
