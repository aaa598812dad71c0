package prompt

import (
	"net/url"
	"strings"
	"testing"

	"colormaster/internal/styles"
)

func TestCompileOrdering(t *testing.T) {
	tpl := styles.Template{Fragment: "fine black line art, white background."}
	got := Compile("a dragon in a garden", tpl)

	want := "a dragon in a garden, fine black line art, white background., " + Modifiers
	if got != want {
		t.Fatalf("Compile = %q, want %q", got, want)
	}
}

func TestCompileDeterministic(t *testing.T) {
	tpl := styles.Template{Fragment: "mandala pattern."}
	first := Compile("lotus", tpl)
	for i := 0; i < 5; i++ {
		if again := Compile("lotus", tpl); again != first {
			t.Fatalf("Compile not deterministic: %q vs %q", first, again)
		}
	}
}

func TestCompileTrimsPromptWhitespace(t *testing.T) {
	got := Compile("  spaced out  ", styles.Template{Fragment: "f."})
	if strings.HasPrefix(got, " ") || strings.Contains(got, "spaced out  ,") {
		t.Fatalf("whitespace not trimmed: %q", got)
	}
}

func TestEncodeForURL(t *testing.T) {
	raw := "a cat, bold lines & 100% white / clean"
	encoded := EncodeForURL(raw)
	if strings.ContainsAny(encoded, " /") {
		t.Fatalf("unsafe characters survived encoding: %q", encoded)
	}
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		t.Fatalf("PathUnescape: %v", err)
	}
	if decoded != raw {
		t.Fatalf("round trip mismatch: %q != %q", decoded, raw)
	}
}
