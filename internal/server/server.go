// Package server carries the serve-and-shutdown body shared by the auth
// and catalog service mains.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	dbfs "github.com/ttoweb/techportal/db"
	"github.com/ttoweb/techportal/internal/config"
	dbpkg "github.com/ttoweb/techportal/internal/db"
)

// RouteSetup builds a service router over an opened database.
type RouteSetup func(cfg *config.Config, version, buildTime string, database *dbpkg.DB) *mux.Router

// Run opens the database, applies migrations and serves the routes built
// by setup on addr. It blocks until SIGINT or SIGTERM, then drains
// in-flight requests for up to 30 seconds before closing the database.
func Run(name, addr, version, buildTime string, cfg *config.Config, setup RouteSetup) error {
	ctx := context.Background()

	database, err := dbpkg.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	if err := dbpkg.Migrate(ctx, database, dbfs.Migrations); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	handler := setup(cfg, version, buildTime, database)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("%s server starting on %s", name, addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	// Close database connection
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
	return nil
}
