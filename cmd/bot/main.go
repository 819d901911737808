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

	"github.com/diegoclair/slack-timetable-bot/internal/config"
	"github.com/diegoclair/slack-timetable-bot/internal/database"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/service"
	"github.com/diegoclair/slack-timetable-bot/internal/handlers"
	"github.com/diegoclair/slack-timetable-bot/internal/messenger"
	slackcmd "github.com/diegoclair/slack-timetable-bot/internal/slack"
	"github.com/diegoclair/slack-timetable-bot/migrator/sqlite"
	"github.com/diegoclair/slack-timetable-bot/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
)

func main() {
	envErr := godotenv.Load()
	logging.Setup()
	if envErr != nil {
		slog.Warn(".env file not found")
	}

	if err := run(); err != nil {
		slog.Error("Bot stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	location := cfg.Location()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	slog.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Migrations completed successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slackClient := slack.New(cfg.SlackBotToken)
	slackMessenger := messenger.New(slackClient, cfg.SlashCommand, cfg.SlackAppID, cfg.SlackConfigToken)

	services := service.NewInstance(database.NewInstance(db), slackMessenger, cfg.PublishSchedule, location)
	if err := services.Init(ctx, cfg.AdminUserIDs); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := slackMessenger.RegisterCommandMenu(ctx, slackcmd.Menu()); err != nil {
		slog.Warn("Failed to register command menu", "error", err)
	}

	if err := services.Scheduler.Start(); err != nil {
		return err
	}
	defer services.Scheduler.Stop()

	handler := handlers.New(slackMessenger, services.Timetable, services.Admin, services.Publication, cfg.SlackSigningSecret, cfg.SlashCommand, location)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down server", "error", err)
		}
	}()

	slog.Info("Server starting", "port", cfg.Port, "command", cfg.SlashCommand, "timezone", location.String())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	handler.Wait()
	slog.Info("Server stopped")
	return nil
}
