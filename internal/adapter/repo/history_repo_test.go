package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"colormaster/internal/domain"
	"colormaster/internal/storage"
)

func newHistoryRepo(t *testing.T) *HistoryRepositoryFS {
	t.Helper()
	store, err := storage.NewDocumentStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDocumentStore: %v", err)
	}
	return NewHistoryRepository(store)
}

func page(id string) domain.ColoringPage {
	return domain.ColoringPage{
		ID:        id,
		ImageData: "data:image/png;base64,QQ==",
		Prompt:    "a fox",
		Style:     domain.StyleAnimals,
		Model:     "flux",
		CreatedAt: time.Now().UTC(),
	}
}

func TestAppendOrdersNewestFirst(t *testing.T) {
	r := newHistoryRepo(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		if err := r.Append(ctx, page(id)); err != nil {
			t.Fatalf("Append(%s): %v", id, err)
		}
	}

	pages, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("len = %d, want 3", len(pages))
	}
	want := []string{"third", "second", "first"}
	for i, id := range want {
		if pages[i].ID != id {
			t.Fatalf("pages[%d].ID = %q, want %q", i, pages[i].ID, id)
		}
	}
}

func TestRemoveDeletesMatching(t *testing.T) {
	r := newHistoryRepo(t)
	ctx := context.Background()
	_ = r.Append(ctx, page("keep"))
	_ = r.Append(ctx, page("drop"))

	if err := r.Remove(ctx, "drop"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	pages, _ := r.List(ctx)
	if len(pages) != 1 || pages[0].ID != "keep" {
		t.Fatalf("unexpected pages after remove: %+v", pages)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	r := newHistoryRepo(t)
	ctx := context.Background()
	_ = r.Append(ctx, page("only"))

	if err := r.Remove(ctx, "ghost"); err != nil {
		t.Fatalf("Remove absent id: %v", err)
	}
	pages, _ := r.List(ctx)
	if len(pages) != 1 {
		t.Fatalf("no-op remove changed the list: %+v", pages)
	}
}

func TestListEmptyAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, _ := storage.NewDocumentStore(dir)
	r := NewHistoryRepository(store)
	ctx := context.Background()

	pages, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("expected empty history, got %d", len(pages))
	}

	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt history: %v", err)
	}
	pages, err = r.List(ctx)
	if err != nil {
		t.Fatalf("List on corrupt store: %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("corrupt history not treated as empty: %+v", pages)
	}
}
