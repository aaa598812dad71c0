package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"colormaster/internal/http/handlers"
	"colormaster/internal/infra"
	mw "colormaster/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		mw.Logger(app.Logger),
		mw.CORS(cfg.AllowedOrigins),
		mw.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Post("/v1/generate", app.Generate)

	r.Route("/v1/history", func(r chi.Router) {
		r.Get("/", app.HistoryList)
		r.Delete("/{id}", app.HistoryRemove)
	})

	r.Route("/v1/profile", func(r chi.Router) {
		r.Get("/", app.Profile)
		r.Post("/reset", app.ProfileReset)
		r.Post("/plan", app.ProfilePlan)
	})

	r.Get("/v1/models", app.ModelsList)
	r.Get("/v1/styles", app.StylesList)

	return r
}
