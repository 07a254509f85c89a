// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/hub/internal/config"
	"github.com/dangerclosesec/hub/internal/database"
	"github.com/dangerclosesec/hub/internal/handler"
	"github.com/dangerclosesec/hub/internal/logging"
	"github.com/dangerclosesec/hub/internal/repository"
	"github.com/dangerclosesec/hub/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	// Initialize repositories
	personRepo := repository.NewPersonRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	schoolRepo := repository.NewSchoolRepository(db)

	directoryService := service.NewDirectoryService(personRepo, communityRepo, schoolRepo)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	router := handler.NewRouter(logger, handler.RouterConfig{
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: 30 * time.Second,
	}, directoryHandler)

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "driver", cfg.Database.Driver)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}
