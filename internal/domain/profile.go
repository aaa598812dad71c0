package domain

// Plan enumerates billing plans.
type Plan string

const (
	PlanFree Plan = "Free"
	PlanPro  Plan = "Pro"
)

// ProCreditSentinel stands in for "unlimited" on the Pro plan. The counter
// exists so both tiers serialize the same way; it is never decremented.
const ProCreditSentinel = 999999

// PlanSpec carries the per-tier quota parameters. Only two tiers exist and
// they diverge on exactly these fields.
type PlanSpec struct {
	DailyAllotment int
	MaxBatchSize   int
	Metered        bool
}

var planSpecs = map[Plan]PlanSpec{
	PlanFree: {DailyAllotment: 5, MaxBatchSize: 5, Metered: true},
	PlanPro:  {DailyAllotment: ProCreditSentinel, MaxBatchSize: 20, Metered: false},
}

// Spec returns the quota parameters for the plan. Unknown values are treated
// as Free so a corrupted plan string never grants unlimited credits.
func (p Plan) Spec() PlanSpec {
	if spec, ok := planSpecs[p]; ok {
		return spec
	}
	return planSpecs[PlanFree]
}

// Valid reports whether p is one of the supported plans.
func (p Plan) Valid() bool {
	_, ok := planSpecs[p]
	return ok
}

// UserProfile represents the single local account record.
type UserProfile struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Plan                 Plan   `json:"plan"`
	GenerationsRemaining int    `json:"generationsRemaining"`
	TotalGenerated       int    `json:"totalGenerated"`
}

// DefaultProfile returns the profile synthesized on first access.
func DefaultProfile() UserProfile {
	return UserProfile{
		ID:                   "user-admin",
		Email:                "unlimited_creator@kdpmaster.ai",
		Plan:                 PlanPro,
		GenerationsRemaining: ProCreditSentinel,
		TotalGenerated:       0,
	}
}

// IsFree reports whether the profile is on the metered free tier.
func (u UserProfile) IsFree() bool {
	return u.Plan == PlanFree
}
