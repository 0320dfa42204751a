package plans

import (
	"errors"
	"fmt"
)

// ErrInvalidPlanTier is returned for any tier outside the recognized set.
// Unknown tiers are a hard failure, never silently treated as free.
var ErrInvalidPlanTier = errors.New("invalid plan tier")

// Tier is a subscription plan tier.
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Policy describes the issuance rules attached to a plan tier. The key
// prefix and the short code live next to the limit so the codec and the
// repository cannot drift apart.
type Policy struct {
	// ShortCode is the plan tag frozen onto every issued key (fr/pr/ent).
	ShortCode string
	// KeyPrefix is the human-readable credential prefix for the tier.
	KeyPrefix string
	// KeyLimit is the maximum number of simultaneously active keys.
	KeyLimit int
	// RequestLimit is the monthly request allowance shown on the dashboard.
	RequestLimit int
}

// policies is the process-wide policy table. Loaded once, read-only.
var policies = map[Tier]Policy{
	TierFree:       {ShortCode: "fr", KeyPrefix: "sjm_fr", KeyLimit: 1, RequestLimit: 1000},
	TierPro:        {ShortCode: "pr", KeyPrefix: "sjm_pr", KeyLimit: 3, RequestLimit: 50000},
	TierEnterprise: {ShortCode: "ent", KeyPrefix: "sjm_ent", KeyLimit: 10, RequestLimit: 1000000},
}

// PolicyFor returns the issuance policy for a tier.
func PolicyFor(tier Tier) (Policy, error) {
	p, ok := policies[tier]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrInvalidPlanTier, tier)
	}
	return p, nil
}

// LimitFor returns the active-key issuance limit for a tier.
func LimitFor(tier Tier) (int, error) {
	p, err := PolicyFor(tier)
	if err != nil {
		return 0, err
	}
	return p.KeyLimit, nil
}

// Tiers returns the recognized tiers in ascending plan order.
func Tiers() []Tier {
	return []Tier{TierFree, TierPro, TierEnterprise}
}

// Valid reports whether tier is one of the recognized values.
func Valid(tier Tier) bool {
	_, ok := policies[tier]
	return ok
}
