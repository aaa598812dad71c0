package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"colormaster/internal/domain"
	"colormaster/internal/generate"
	"colormaster/internal/pollinations"
	"colormaster/internal/styles"
)

// App is the handler container holding the pipeline dependencies.
type App struct {
	Profiles     domain.ProfileRepository
	History      domain.HistoryRepository
	Orchestrator *generate.Orchestrator
	Models       *pollinations.Client
	Catalog      *styles.Catalog
	Logger       zerolog.Logger
}

func NewApp(profiles domain.ProfileRepository, history domain.HistoryRepository, orchestrator *generate.Orchestrator, models *pollinations.Client, catalog *styles.Catalog, logger zerolog.Logger) *App {
	return &App{
		Profiles:     profiles,
		History:      history,
		Orchestrator: orchestrator,
		Models:       models,
		Catalog:      catalog,
		Logger:       logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"error": errCode, "message": message})
}
