package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"local-llm/backend/internal/api"
	"local-llm/backend/internal/config"
	"local-llm/backend/internal/database"
	"local-llm/backend/internal/llm"
	"local-llm/backend/internal/metrics"
	"local-llm/backend/internal/repository"
	"local-llm/backend/internal/service"
)

// App bundles the wired application so tests can construct it without
// starting the listener.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Server *http.Server
}

// NewApp wires configuration, storage, the inference client, services, and
// the HTTP surface together.
func NewApp(cfg *config.Config) (*App, error) {
	metrics.Register()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Session store ready", "path", cfg.DatabasePath)

	repo := repository.NewSQLiteRepository(db)
	ollamaProvider := llm.NewOllamaProvider(cfg.OllamaURL)

	// One probe, no retry. An unreachable service degrades to fallback
	// behavior instead of blocking startup.
	probeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	slog.Info("Probed inference service", "url", cfg.OllamaURL, "running", ollamaProvider.CheckStatus(probeCtx))

	sessionService := service.NewSessionService(repo, ollamaProvider, cfg.DefaultModel)
	catalogService := service.NewCatalogService(ollamaProvider, cfg.Fallbacks())

	sessionHandler := api.NewSessionHandler(sessionService, cfg.MaxUploadBytes)
	catalogHandler := api.NewCatalogHandler(catalogService)
	router := api.NewRouter(sessionHandler, catalogHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		// A generation call blocks until the inference service responds, so
		// writes must not be cut off by the server.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	return &App{Config: cfg, DB: db, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
