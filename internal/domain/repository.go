package domain

import "context"

// ProfileRepository owns the single persisted user profile.
type ProfileRepository interface {
	Get(ctx context.Context) (UserProfile, error)
	RecordUsage(ctx context.Context, count int) (UserProfile, error)
	ResetQuota(ctx context.Context) (UserProfile, error)
	SetPlan(ctx context.Context, plan Plan) (UserProfile, error)
}

// HistoryRepository owns the ordered list of generated pages, newest first.
// ID uniqueness is the caller's responsibility; the store does not deduplicate.
type HistoryRepository interface {
	Append(ctx context.Context, page ColoringPage) error
	List(ctx context.Context) ([]ColoringPage, error)
	Remove(ctx context.Context, id string) error
}
