package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"colormaster/internal/domain"
	"colormaster/internal/pollinations"
)

type generateRequest struct {
	Prompt     string `json:"prompt"`
	Style      string `json:"style"`
	Count      int    `json:"count"`
	Resolution string `json:"resolution"`
	Model      string `json:"model"`
}

type itemFailure struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type generateResponse struct {
	Pages    []domain.ColoringPage `json:"pages"`
	Failures []itemFailure         `json:"failures,omitempty"`
	Profile  domain.UserProfile    `json:"profile"`
}

// Generate runs the full pipeline for one request. Batch progress is not
// streamed over this surface; callers poll the profile endpoint instead.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	outcome, err := a.Orchestrator.Request(r.Context(), domain.GenerationConfig{
		Prompt:     req.Prompt,
		Style:      domain.Style(req.Style),
		Count:      req.Count,
		Resolution: req.Resolution,
		Model:      req.Model,
	}, nil)
	if err != nil {
		a.generateError(w, outcome.Pages, err)
		return
	}

	a.json(w, http.StatusOK, generateResponse{
		Pages:    outcome.Pages,
		Failures: mapFailures(outcome.Failures),
		Profile:  outcome.Profile,
	})
}

func (a *App) generateError(w http.ResponseWriter, produced []domain.ColoringPage, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPrompt):
		a.error(w, http.StatusBadRequest, "invalid_prompt", "prompt must not be empty")
	case errors.Is(err, domain.ErrUnknownStyle):
		a.error(w, http.StatusBadRequest, "unknown_style", "unsupported style preset")
	case errors.Is(err, domain.ErrQuotaExceeded):
		a.error(w, http.StatusForbidden, "quota_exceeded", "daily generations exhausted, upgrade to continue")
	case domain.IsAuthError(err):
		a.Logger.Error().Err(err).Int("produced", len(produced)).Msg("generation credential rejected")
		a.error(w, http.StatusBadGateway, "upstream_unauthorized", "image service rejected the API key")
	default:
		a.Logger.Error().Err(err).Msg("generation failed")
		a.error(w, http.StatusBadGateway, "generation_failed", "image generation failed, please retry")
	}
}

func mapFailures(failures []pollinations.ItemFailure) []itemFailure {
	if len(failures) == 0 {
		return nil
	}
	out := make([]itemFailure, len(failures))
	for i, f := range failures {
		out[i] = itemFailure{Index: f.Index, Message: f.Err.Error()}
	}
	return out
}
