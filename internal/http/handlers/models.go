package handlers

import "net/http"

// ModelsList returns the available model identifiers. The client falls back
// to a fixed list on upstream failure, so this endpoint never errors.
func (a *App) ModelsList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"models": a.Models.ListModels(r.Context())})
}
