package repo

import (
	"context"
	"errors"

	"colormaster/internal/domain"
	"colormaster/internal/storage"
)

const historyDocument = "history"

// HistoryRepositoryFS implements domain.HistoryRepository backed by a JSON
// document on the local filesystem. The full list is replaced on every
// mutation, newest entry first.
type HistoryRepositoryFS struct {
	store *storage.DocumentStore
}

// NewHistoryRepository creates a new HistoryRepositoryFS.
func NewHistoryRepository(store *storage.DocumentStore) *HistoryRepositoryFS {
	return &HistoryRepositoryFS{store: store}
}

// Append inserts page at the front of the list and persists the whole list.
// The store does not deduplicate ids.
func (r *HistoryRepositoryFS) Append(ctx context.Context, page domain.ColoringPage) error {
	return r.store.Update(func() error {
		pages, err := r.load(ctx)
		if err != nil {
			return err
		}
		updated := make([]domain.ColoringPage, 0, len(pages)+1)
		updated = append(updated, page)
		updated = append(updated, pages...)
		return r.store.Write(ctx, historyDocument, updated)
	})
}

// List returns a snapshot of all persisted pages, most recent first.
func (r *HistoryRepositoryFS) List(ctx context.Context) ([]domain.ColoringPage, error) {
	return r.load(ctx)
}

// Remove deletes the entry with the given id and persists. Removing an
// absent id is a no-op.
func (r *HistoryRepositoryFS) Remove(ctx context.Context, id string) error {
	return r.store.Update(func() error {
		pages, err := r.load(ctx)
		if err != nil {
			return err
		}
		updated := pages[:0:0]
		for _, page := range pages {
			if page.ID != id {
				updated = append(updated, page)
			}
		}
		return r.store.Write(ctx, historyDocument, updated)
	})
}

// load reads the stored list; a missing or corrupt document is an empty history.
func (r *HistoryRepositoryFS) load(ctx context.Context) ([]domain.ColoringPage, error) {
	var pages []domain.ColoringPage
	if err := r.store.Read(ctx, historyDocument, &pages); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return []domain.ColoringPage{}, nil
	}
	return pages, nil
}

var _ domain.HistoryRepository = (*HistoryRepositoryFS)(nil)
