package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDocumentRoundTrip(t *testing.T) {
	store, err := NewDocumentStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDocumentStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Write(ctx, "profile", doc{Name: "a", Count: 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got doc
	if err := store.Read(ctx, "profile", &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Name != "a" || got.Count != 2 {
		t.Fatalf("unexpected document: %+v", got)
	}
}

func TestDocumentMissingReportsNotExist(t *testing.T) {
	store, _ := NewDocumentStore(t.TempDir())
	var got doc
	err := store.Read(context.Background(), "absent", &got)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestDocumentCorruptSurfacesError(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewDocumentStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	var got doc
	if err := store.Read(context.Background(), "bad", &got); err == nil {
		t.Fatalf("expected decode error for corrupt document")
	}
}

func TestDocumentRejectsPathKeys(t *testing.T) {
	store, _ := NewDocumentStore(t.TempDir())
	for _, key := range []string{"", "../escape", "a/b", `a\b`, ".."} {
		if err := store.Write(context.Background(), key, doc{}); err == nil {
			t.Fatalf("key %q accepted", key)
		}
	}
}

func TestDocumentWriteReplacesWhole(t *testing.T) {
	store, _ := NewDocumentStore(t.TempDir())
	ctx := context.Background()
	_ = store.Write(ctx, "d", map[string]int{"a": 1, "b": 2})
	_ = store.Write(ctx, "d", map[string]int{"c": 3})

	var got map[string]int
	if err := store.Read(ctx, "d", &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got["c"] != 3 {
		t.Fatalf("write did not replace whole document: %v", got)
	}
}
