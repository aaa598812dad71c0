package generate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"colormaster/internal/domain"
	"colormaster/internal/pollinations"
	"colormaster/internal/prompt"
	"colormaster/internal/styles"
)

const (
	defaultWidth  = 1024
	defaultHeight = 1324
)

// ImageClient is the remote-generation contract the orchestrator depends on.
type ImageClient interface {
	Generate(ctx context.Context, req pollinations.Request, seed *int) (string, error)
	GenerateBatch(ctx context.Context, req pollinations.Request, count int, onProgress func(completed int)) ([]string, []pollinations.ItemFailure, error)
}

// Outcome reports what a generation request produced. Failures lists batch
// items that did not produce a page; Profile is the refreshed snapshot after
// accounting.
type Outcome struct {
	Pages    []domain.ColoringPage
	Failures []pollinations.ItemFailure
	Profile  domain.UserProfile
}

// Orchestrator runs the generation pipeline: validate against quota, compile
// the prompt, invoke the remote client, persist results, record usage.
type Orchestrator struct {
	profiles domain.ProfileRepository
	history  domain.HistoryRepository
	client   ImageClient
	catalog  *styles.Catalog
	logger   zerolog.Logger
}

func NewOrchestrator(profiles domain.ProfileRepository, history domain.HistoryRepository, client ImageClient, catalog *styles.Catalog, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		profiles: profiles,
		history:  history,
		client:   client,
		catalog:  catalog,
		logger:   logger,
	}
}

// Request validates cfg, performs the remote call(s), persists each produced
// page and charges usage for items actually produced. Validation and quota
// failures happen before any remote call and leave no state behind; pages
// persisted before a mid-batch failure are kept.
func (o *Orchestrator) Request(ctx context.Context, cfg domain.GenerationConfig, onProgress func(completed int)) (Outcome, error) {
	userPrompt := strings.TrimSpace(cfg.Prompt)
	if userPrompt == "" {
		return Outcome{}, domain.ErrInvalidPrompt
	}
	tpl, ok := o.catalog.Lookup(cfg.Style)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", domain.ErrUnknownStyle, cfg.Style)
	}

	profile, err := o.profiles.Get(ctx)
	if err != nil {
		return Outcome{}, err
	}

	count := cfg.Count
	if count <= 0 {
		count = 1
	}
	if max := profile.Plan.Spec().MaxBatchSize; count > max {
		count = max
	}
	if profile.IsFree() && profile.GenerationsRemaining < count {
		return Outcome{}, domain.ErrQuotaExceeded
	}

	model := cfg.Model
	if model == "" {
		model = pollinations.DefaultModel
	}
	width, height := parseResolution(cfg.Resolution)
	req := pollinations.Request{
		Prompt: prompt.Compile(userPrompt, tpl),
		Width:  width,
		Height: height,
		Model:  model,
	}

	if count == 1 {
		return o.single(ctx, cfg, userPrompt, model, req, onProgress)
	}
	return o.batch(ctx, cfg, userPrompt, model, req, count, onProgress)
}

func (o *Orchestrator) single(ctx context.Context, cfg domain.GenerationConfig, userPrompt, model string, req pollinations.Request, onProgress func(int)) (Outcome, error) {
	image, err := o.client.Generate(ctx, req, nil)
	if err != nil {
		return Outcome{}, err
	}
	page := domain.ColoringPage{
		ID:        uuid.NewString(),
		ImageData: image,
		Prompt:    userPrompt,
		Style:     cfg.Style,
		Model:     model,
		CreatedAt: time.Now().UTC(),
	}
	if err := o.history.Append(ctx, page); err != nil {
		return Outcome{}, err
	}
	profile, err := o.profiles.RecordUsage(ctx, 1)
	if err != nil {
		return Outcome{}, err
	}
	if onProgress != nil {
		onProgress(1)
	}
	o.logger.Info().Str("style", string(cfg.Style)).Str("model", model).Msg("generated coloring page")
	return Outcome{Pages: []domain.ColoringPage{page}, Profile: profile}, nil
}

func (o *Orchestrator) batch(ctx context.Context, cfg domain.GenerationConfig, userPrompt, model string, req pollinations.Request, count int, onProgress func(int)) (Outcome, error) {
	group := uuid.NewString()
	images, failures, batchErr := o.client.GenerateBatch(ctx, req, count, onProgress)

	outcome := Outcome{Failures: failures}
	for _, image := range images {
		page := domain.ColoringPage{
			ID:          uuid.NewString(),
			ImageData:   image,
			Prompt:      userPrompt,
			Style:       cfg.Style,
			Model:       model,
			CreatedAt:   time.Now().UTC(),
			IsBulk:      true,
			BulkGroupID: group,
		}
		if err := o.history.Append(ctx, page); err != nil {
			return outcome, err
		}
		outcome.Pages = append(outcome.Pages, page)
	}
	// Usage is charged only for items actually produced; pages persisted
	// before a mid-batch failure stay persisted.
	if len(outcome.Pages) > 0 {
		profile, err := o.profiles.RecordUsage(ctx, len(outcome.Pages))
		if err != nil {
			return outcome, err
		}
		outcome.Profile = profile
	} else {
		profile, err := o.profiles.Get(ctx)
		if err != nil {
			return outcome, err
		}
		outcome.Profile = profile
	}
	if batchErr != nil {
		return outcome, batchErr
	}
	o.logger.Info().Int("requested", count).Int("produced", len(outcome.Pages)).Str("group", group).Msg("generated coloring page batch")
	return outcome, nil
}

// parseResolution interprets a "WxH" string, falling back to the portrait
// print default.
func parseResolution(res string) (int, int) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(res)), "x", 2)
	if len(parts) == 2 {
		w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
		h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultWidth, defaultHeight
}
