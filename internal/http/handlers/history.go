package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"colormaster/internal/domain"
)

func (a *App) HistoryList(w http.ResponseWriter, r *http.Request) {
	pages, err := a.History.List(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load history")
		return
	}
	if pages == nil {
		pages = []domain.ColoringPage{}
	}
	a.json(w, http.StatusOK, map[string]any{"pages": pages})
}

func (a *App) HistoryRemove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id required")
		return
	}
	if err := a.History.Remove(r.Context(), id); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete page")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
