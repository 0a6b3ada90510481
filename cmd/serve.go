package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/duewise/backend/internal/config"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/reminder"
	"github.com/duewise/backend/internal/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	setupLogging(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	err = connect(cfg)
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(cfg.APIURL)
	if err != nil {
		return err
	}
	defer teardown()
	router.AttachRoutes(r.Group("/"))

	if cfg.ReminderSchedule != "" {
		for _, c := range reminder.Collectors() {
			if err := prometheus.Register(c); err != nil {
				return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
			}
		}

		scheduler, err := reminder.NewScheduler(models.DB, cfg.ReminderSchedule, cfg.ReminderDays)
		if err != nil {
			return err
		}

		scheduler.Start()
		defer scheduler.Stop()
		log.Info().Str("schedule", cfg.ReminderSchedule).Int("days", cfg.ReminderDays).Msg("Reminder")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("addr", server.Addr).Msg("Server")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// connect opens the configured database.
func connect(cfg *config.Config) error {
	if cfg.Postgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Database")
		return models.ConnectPostgres(models.PostgresDSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName))
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return err
	}

	log.Info().Str("path", cfg.DBPath).Msg("Database")
	return models.Connect(cfg.DBPath)
}
