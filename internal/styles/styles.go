package styles

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"colormaster/internal/domain"
)

// Template is the fixed prompt fragment and human label for one
// coloring-page aesthetic. Read-only reference data.
type Template struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Fragment    string `yaml:"fragment"`
}

// Catalog resolves style names to templates. Built-in styles are always
// present; an overlay file may add or override entries.
type Catalog struct {
	templates map[domain.Style]Template
}

var builtin = map[domain.Style]Template{
	domain.StyleKidsCute: {
		Label:       "Kids Cute",
		Description: "Simple, happy characters with bold lines perfect for young children.",
		Fragment:    "ultra-clean coloring book page, cute happy character for kids, bold thick black outlines, minimal details, cartoon style, high contrast, pure white background, no shading, no grayscale.",
	},
	domain.StyleKawaii: {
		Label:       "Kawaii",
		Description: "Japanese-inspired cute aesthetic with minimalist, rounded features.",
		Fragment:    "kawaii style coloring book page, tiny cute characters, big eyes, simple rounded shapes, thick bold black lines, minimalist background, white space, high contrast, black and white line art.",
	},
	domain.StyleMandala: {
		Label:       "Mandala",
		Description: "Intricate geometric and symmetrical patterns for therapeutic coloring.",
		Fragment:    "intricate circular mandala pattern, symmetrical geometric designs, repeating floral motifs, fine black line art, professional coloring page, white background, no shading, balanced composition.",
	},
	domain.StyleAnimals: {
		Label:       "Animals",
		Description: "Realistic or stylized animal illustrations with defined fur/feather patterns.",
		Fragment:    "animal coloring page, professional illustration, clear black line art, fur and texture patterns defined by lines only, high detail, no gradients, white background, thick outlines, nature themed.",
	},
	domain.StyleFlowers: {
		Label:       "Flowers",
		Description: "Botanical drawings and floral arrangements with varying complexity.",
		Fragment:    "botanical coloring page, beautiful flowers and leaves, elegant line work, black and white ink drawing style, high resolution line art, white background, crisp edges, no shading.",
	},
	domain.StyleFantasy: {
		Label:       "Fantasy",
		Description: "Dragons, fairies, and magical landscapes with imaginative details.",
		Fragment:    "fantasy coloring book page, mythical creatures, magical landscape, ethereal line art, detailed ink illustration, black and white, thick outlines for main subjects, no gray tones, high contrast.",
	},
	domain.StyleSimple: {
		Label:       "Simple",
		Description: "Very thick lines and large coloring areas, ideal for toddlers.",
		Fragment:    "toddler coloring page, extremely simple shapes, ultra-thick black outlines, very large areas for coloring, no small details, minimalist art, pure white background, bold line art.",
	},
	domain.StyleDetailed: {
		Label:       "Detailed",
		Description: "Advanced patterns and complex scenes for adult coloring books.",
		Fragment:    "complex adult coloring book page, intricate details, highly detailed line art, professional ink illustration, fine lines mixed with bold outlines, sophisticated composition, white background, no shading.",
	},
}

// Builtin returns a catalog holding only the built-in styles.
func Builtin() *Catalog {
	templates := make(map[domain.Style]Template, len(builtin))
	for style, tpl := range builtin {
		templates[style] = tpl
	}
	return &Catalog{templates: templates}
}

// Load returns the built-in catalog merged with the overlay file at path.
// An empty path yields the built-ins unchanged. Overlay entries override
// built-ins of the same name; entries without a label get one derived from
// the style name.
func Load(path string) (*Catalog, error) {
	catalog := Builtin()
	if path == "" {
		return catalog, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("styles: read overlay: %w", err)
	}
	var overlay map[string]Template
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("styles: parse overlay: %w", err)
	}
	titler := cases.Title(language.English)
	for name, tpl := range overlay {
		if tpl.Fragment == "" {
			return nil, fmt.Errorf("styles: overlay style %q has no fragment", name)
		}
		if tpl.Label == "" {
			tpl.Label = titler.String(name)
		}
		catalog.templates[domain.Style(name)] = tpl
	}
	return catalog, nil
}

// Lookup returns the template for style.
func (c *Catalog) Lookup(style domain.Style) (Template, bool) {
	tpl, ok := c.templates[style]
	return tpl, ok
}

// Names returns all style names in stable sorted order.
func (c *Catalog) Names() []domain.Style {
	names := make([]domain.Style, 0, len(c.templates))
	for style := range c.templates {
		names = append(names, style)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
