package pollinations

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"colormaster/internal/domain"
	"colormaster/internal/prompt"
)

// SeedRange bounds randomly chosen seeds. Distinct seeds across batch items
// avoid duplicate outputs.
const SeedRange = 1_000_000

// DefaultModel is used when the caller does not pick one.
const DefaultModel = "flux"

const modelsCacheKey = "models"

// fallbackModels is returned when the model-listing endpoint is unreachable
// or unusable. Model choice is non-critical metadata, so availability wins
// over correctness here.
var fallbackModels = []string{"flux", "flux-pro", "flux-realism", "any-v4-5", "dreamshaper-8"}

type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	// RateInterval paces generation calls; zero keeps the default.
	RateInterval time.Duration
	// ModelsTTL controls how long a successful model listing is cached.
	ModelsTTL time.Duration
	Logger    zerolog.Logger
}

// Client talks to a Pollinations-style image generation API: a GET endpoint
// taking the prompt as a path segment plus dimension/seed/model parameters,
// and a models listing endpoint. Both require a bearer credential.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
	models     *cache.Cache
	logger     zerolog.Logger
}

func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://gen.pollinations.ai/image"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	interval := opts.RateInterval
	if interval <= 0 {
		interval = time.Second
	}
	ttl := opts.ModelsTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
		token:      strings.TrimSpace(opts.APIKey),
		limiter:    rate.NewLimiter(rate.Every(interval), 2),
		models:     cache.New(ttl, 2*ttl),
		logger:     opts.Logger,
	}
}

// Request describes one remote generation call. Prompt is the final compiled
// prompt text, not yet percent-encoded.
type Request struct {
	Prompt string
	Width  int
	Height int
	Model  string
}

// ItemFailure records a failed item within a batch so partial results never
// silently lose the fact that some items failed.
type ItemFailure struct {
	Index int
	Err   error
}

// ListModels fetches the available model identifiers, normalized to strings.
// Entries may be bare strings or objects carrying an id/name/slug field. On
// any transport or status failure the fixed fallback list is returned
// instead of an error. Successful listings are cached.
func (c *Client) ListModels(ctx context.Context) []string {
	if cached, ok := c.models.Get(modelsCacheKey); ok {
		if names, ok := cached.([]string); ok {
			return names
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return fallbackModels
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("model listing unreachable, using fallback list")
		return fallbackModels
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("model listing failed, using fallback list")
		return fallbackModels
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fallbackModels
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return fallbackModels
	}
	var names []string
	parsed.ForEach(func(_, entry gjson.Result) bool {
		switch {
		case entry.Type == gjson.String:
			names = append(names, entry.String())
		case entry.IsObject():
			for _, field := range []string{"id", "name", "slug"} {
				if v := entry.Get(field); v.Exists() && v.String() != "" {
					names = append(names, v.String())
					return true
				}
			}
			names = append(names, DefaultModel)
		default:
			names = append(names, DefaultModel)
		}
		return true
	})
	if len(names) == 0 {
		return fallbackModels
	}
	c.models.Set(modelsCacheKey, names, cache.DefaultExpiration)
	return names
}

// Generate performs one remote generation call and returns the image as a
// self-contained base64 data URL. A nil seed picks a random one in
// [0, SeedRange). A 401 response is reported as an auth failure; other
// non-2xx statuses and transport errors yield a generic GenerationError.
func (c *Client) Generate(ctx context.Context, req Request, seed *int) (string, error) {
	if c == nil {
		return "", errors.New("pollinations: client not configured")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", domain.ErrInvalidPrompt
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	chosenSeed := rand.Intn(SeedRange)
	if seed != nil {
		chosenSeed = *seed
	}
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	endpoint := fmt.Sprintf("%s/%s?width=%d&height=%d&seed=%d&model=%s&nologo=true",
		c.baseURL, prompt.EncodeForURL(req.Prompt), req.Width, req.Height, chosenSeed, model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &domain.GenerationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", domain.NewGenerationError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.GenerationError{Err: err}
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" || !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}

// GenerateBatch performs count sequential Generate calls with distinct seeds
// and invokes onProgress with the running completed count after each
// success. An auth failure aborts the batch and is returned alongside the
// items produced so far; any other per-item failure is recorded and the
// batch continues. Context is checked before each item so callers can
// cancel mid-batch.
func (c *Client) GenerateBatch(ctx context.Context, req Request, count int, onProgress func(completed int)) ([]string, []ItemFailure, error) {
	if count <= 0 {
		return nil, nil, fmt.Errorf("pollinations: batch count must be positive, got %d", count)
	}

	base := rand.Intn(SeedRange)
	var images []string
	var failures []ItemFailure
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return images, failures, err
		}
		seed := (base + i) % SeedRange
		image, err := c.Generate(ctx, req, &seed)
		if err != nil {
			if domain.IsAuthError(err) {
				return images, failures, err
			}
			c.logger.Warn().Err(err).Int("item", i+1).Int("count", count).Msg("batch item failed")
			failures = append(failures, ItemFailure{Index: i, Err: err})
			continue
		}
		images = append(images, image)
		if onProgress != nil {
			onProgress(len(images))
		}
	}
	return images, failures, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
