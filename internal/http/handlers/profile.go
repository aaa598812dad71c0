package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"colormaster/internal/domain"
)

// Profile returns the current profile snapshot. The UI polls this endpoint
// to reflect updated counters after generations.
func (a *App) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.Profiles.Get(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	a.json(w, http.StatusOK, profile)
}

// ProfileReset restores the daily allotment for the current plan.
func (a *App) ProfileReset(w http.ResponseWriter, r *http.Request) {
	profile, err := a.Profiles.ResetQuota(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to reset quota")
		return
	}
	a.json(w, http.StatusOK, profile)
}

type planRequest struct {
	Plan string `json:"plan"`
}

// ProfilePlan switches between the Free and Pro tiers.
func (a *App) ProfilePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	profile, err := a.Profiles.SetPlan(r.Context(), domain.Plan(req.Plan))
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedPlan) {
			a.error(w, http.StatusBadRequest, "unsupported_plan", "plan must be Free or Pro")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to update plan")
		return
	}
	a.json(w, http.StatusOK, profile)
}
