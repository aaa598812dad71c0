package domain

import "time"

// Style enumerates the built-in coloring-page aesthetics. Custom styles
// loaded from an overlay file reuse the same type.
type Style string

const (
	StyleKidsCute Style = "Kids Cute"
	StyleKawaii   Style = "Kawaii"
	StyleMandala  Style = "Mandala"
	StyleAnimals  Style = "Animals"
	StyleFlowers  Style = "Flowers"
	StyleFantasy  Style = "Fantasy"
	StyleSimple   Style = "Simple"
	StyleDetailed Style = "Detailed"
)

// ColoringPage is a generated artifact persisted in history. The image is a
// self-contained data URL so history survives independent of the remote
// service. Fields are immutable once created.
type ColoringPage struct {
	ID          string    `json:"id"`
	ImageData   string    `json:"url"`
	Prompt      string    `json:"prompt"`
	Style       Style     `json:"style"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"createdAt"`
	IsBulk      bool      `json:"isBulk,omitempty"`
	BulkGroupID string    `json:"bulkGroupId,omitempty"`
}

// GenerationConfig describes one generation request. Transient, never persisted.
type GenerationConfig struct {
	Prompt     string `json:"prompt"`
	Style      Style  `json:"style"`
	Count      int    `json:"count"`
	Resolution string `json:"resolution"`
	Model      string `json:"model"`
}
