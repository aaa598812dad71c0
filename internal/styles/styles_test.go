package styles

import (
	"os"
	"path/filepath"
	"testing"

	"colormaster/internal/domain"
)

func TestBuiltinContainsAllStyles(t *testing.T) {
	catalog := Builtin()
	for _, style := range []domain.Style{
		domain.StyleKidsCute, domain.StyleKawaii, domain.StyleMandala,
		domain.StyleAnimals, domain.StyleFlowers, domain.StyleFantasy,
		domain.StyleSimple, domain.StyleDetailed,
	} {
		tpl, ok := catalog.Lookup(style)
		if !ok {
			t.Fatalf("missing builtin style %q", style)
		}
		if tpl.Fragment == "" || tpl.Label == "" {
			t.Fatalf("style %q has empty template: %+v", style, tpl)
		}
	}
}

func TestLoadOverlayMergesAndDerivesLabel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.yaml")
	overlay := `
space art:
  fragment: "outer space coloring page, planets and rockets, bold line art."
Mandala:
  label: "Zen Mandala"
  description: "Override."
  fragment: "zen mandala line art."
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	custom, ok := catalog.Lookup(domain.Style("space art"))
	if !ok {
		t.Fatalf("overlay style not present")
	}
	if custom.Label != "Space Art" {
		t.Fatalf("derived label = %q, want %q", custom.Label, "Space Art")
	}

	mandala, _ := catalog.Lookup(domain.StyleMandala)
	if mandala.Label != "Zen Mandala" || mandala.Fragment != "zen mandala line art." {
		t.Fatalf("overlay did not override builtin: %+v", mandala)
	}

	// Untouched builtins survive the merge.
	if _, ok := catalog.Lookup(domain.StyleKawaii); !ok {
		t.Fatalf("builtin style lost after overlay")
	}
}

func TestLoadOverlayRejectsEmptyFragment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.yaml")
	if err := os.WriteFile(path, []byte("broken:\n  label: X\n"), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for overlay style without fragment")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Builtin().Names()
	if len(names) != 8 {
		t.Fatalf("expected 8 builtin styles, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
