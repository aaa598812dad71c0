package prompt

import (
	"net/url"
	"strings"

	"colormaster/internal/styles"
)

// Modifiers is the fixed quality/format suffix applied to every compiled
// prompt. It keeps results print-ready regardless of the chosen style.
const Modifiers = "black and white line art, pure white background, high contrast, no shading, no grayscale, no dither, 300 DPI print quality, professional coloring book illustration, bold edges, clean lines."

// Compile concatenates, in fixed order, the raw user prompt, the style
// template's fragment, and the quality modifiers. Deterministic: no
// randomness, no external state.
func Compile(userPrompt string, tpl styles.Template) string {
	parts := []string{strings.TrimSpace(userPrompt)}
	if fragment := strings.TrimSpace(tpl.Fragment); fragment != "" {
		parts = append(parts, fragment)
	}
	parts = append(parts, Modifiers)
	return strings.Join(parts, ", ")
}

// EncodeForURL percent-encodes a compiled prompt so it can be embedded as a
// URL path segment.
func EncodeForURL(compiled string) string {
	return url.PathEscape(compiled)
}
