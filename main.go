package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/passabola/futstats/internal/auth"
	"github.com/passabola/futstats/internal/config"
	"github.com/passabola/futstats/internal/database"
	server "github.com/passabola/futstats/internal/http"
	"github.com/passabola/futstats/internal/league"
	"github.com/passabola/futstats/internal/metrics"
	"github.com/passabola/futstats/internal/notifier"
	"github.com/passabola/futstats/internal/notifier/slack"
	"github.com/passabola/futstats/internal/seed"
	"github.com/passabola/futstats/internal/stats"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	if cfg.SeedDemoData {
		if err := seed.Seed(db); err != nil {
			log.Fatalf("Failed to seed demo data: %s", err)
		}
	}

	store := league.New(db)
	statsSvc := stats.New(db)
	authSvc := auth.New(db, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var announcer notifier.Notifier
	if cfg.Slack.Token != "" {
		announcer = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Info("No Slack token configured, announcements disabled")
		announcer = notifier.NewNoop()
	}

	s := server.NewServer(
		store,
		statsSvc,
		authSvc,
		metricsSvc,
		metricsHandler,
		announcer,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
