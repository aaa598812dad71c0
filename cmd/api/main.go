package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"colormaster/internal/adapter/repo"
	"colormaster/internal/generate"
	"colormaster/internal/http/handlers"
	httpapi "colormaster/internal/http/httpapi"
	"colormaster/internal/infra"
	"colormaster/internal/pollinations"
	"colormaster/internal/storage"
	"colormaster/internal/styles"
)

func main() {
	// Muat .env (opsional)
	_ = godotenv.Load()

	// Konfigurasi & logger
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Penyimpanan dokumen lokal (profil & riwayat)
	store, err := storage.NewDocumentStore(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to prepare data directory")
	}
	profiles := repo.NewProfileRepository(store)
	history := repo.NewHistoryRepository(store)

	// Katalog gaya (builtin + overlay YAML opsional)
	catalog, err := styles.Load(cfg.StylesOverlayPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.StylesOverlayPath).Msg("failed to load style overlay")
	}

	// Klien layanan gambar
	client := pollinations.NewClient(pollinations.Options{
		BaseURL:      cfg.PollinationsBaseURL,
		APIKey:       cfg.PollinationsAPIKey,
		Timeout:      cfg.GenerationTimeout,
		RateInterval: cfg.GenerationInterval,
		ModelsTTL:    cfg.ModelsCacheTTL,
		Logger:       logger,
	})

	orchestrator := generate.NewOrchestrator(profiles, history, client, catalog, logger)

	// App container
	app := handlers.NewApp(profiles, history, orchestrator, client, catalog, logger)

	// Bangun router via package httpapi (sudah ada middleware chi di dalamnya)
	router := httpapi.NewRouter(app, cfg)

	// HTTP server wrapper dari infra
	server := infra.NewHTTPServer(cfg, router)

	// Start async
	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
