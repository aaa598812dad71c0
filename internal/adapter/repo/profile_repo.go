package repo

import (
	"context"
	"fmt"

	"colormaster/internal/domain"
	"colormaster/internal/storage"
)

const profileDocument = "profile"

// ProfileRepositoryFS implements domain.ProfileRepository backed by a JSON
// document on the local filesystem.
type ProfileRepositoryFS struct {
	store *storage.DocumentStore
}

// NewProfileRepository creates a new ProfileRepositoryFS.
func NewProfileRepository(store *storage.DocumentStore) *ProfileRepositoryFS {
	return &ProfileRepositoryFS{store: store}
}

// Get returns the persisted profile, synthesizing and persisting the default
// on first access. Corrupt stored state is treated as absent.
func (r *ProfileRepositoryFS) Get(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.store.Update(func() error {
		var innerErr error
		profile, innerErr = r.load(ctx)
		return innerErr
	})
	return profile, err
}

// RecordUsage increments the total counter by count and, on the metered free
// tier, decrements the remaining credits floored at zero.
func (r *ProfileRepositoryFS) RecordUsage(ctx context.Context, count int) (domain.UserProfile, error) {
	if count <= 0 {
		return domain.UserProfile{}, fmt.Errorf("repo: usage count must be positive, got %d", count)
	}
	var profile domain.UserProfile
	err := r.store.Update(func() error {
		var innerErr error
		profile, innerErr = r.load(ctx)
		if innerErr != nil {
			return innerErr
		}
		profile.TotalGenerated += count
		if profile.IsFree() {
			profile.GenerationsRemaining -= count
			if profile.GenerationsRemaining < 0 {
				profile.GenerationsRemaining = 0
			}
		}
		return r.store.Write(ctx, profileDocument, profile)
	})
	return profile, err
}

// ResetQuota restores the remaining credits to the tier's daily allotment.
func (r *ProfileRepositoryFS) ResetQuota(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.store.Update(func() error {
		var innerErr error
		profile, innerErr = r.load(ctx)
		if innerErr != nil {
			return innerErr
		}
		profile.GenerationsRemaining = profile.Plan.Spec().DailyAllotment
		return r.store.Write(ctx, profileDocument, profile)
	})
	return profile, err
}

// SetPlan switches the profile to the given plan and re-seeds the allotment.
func (r *ProfileRepositoryFS) SetPlan(ctx context.Context, plan domain.Plan) (domain.UserProfile, error) {
	if !plan.Valid() {
		return domain.UserProfile{}, fmt.Errorf("repo: %w: %q", domain.ErrUnsupportedPlan, plan)
	}
	var profile domain.UserProfile
	err := r.store.Update(func() error {
		var innerErr error
		profile, innerErr = r.load(ctx)
		if innerErr != nil {
			return innerErr
		}
		profile.Plan = plan
		profile.GenerationsRemaining = plan.Spec().DailyAllotment
		return r.store.Write(ctx, profileDocument, profile)
	})
	return profile, err
}

// load reads the document, reinitializing defaults when it is missing or
// unusable. Callers must hold the store lock.
func (r *ProfileRepositoryFS) load(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := r.store.Read(ctx, profileDocument, &profile); err == nil && profile.Plan.Valid() {
		return profile, nil
	} else if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.UserProfile{}, ctxErr
	}
	profile = domain.DefaultProfile()
	if err := r.store.Write(ctx, profileDocument, profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

var _ domain.ProfileRepository = (*ProfileRepositoryFS)(nil)
