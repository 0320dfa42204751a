package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyFor_KnownTiers(t *testing.T) {
	tests := []struct {
		tier      Tier
		shortCode string
		prefix    string
		limit     int
	}{
		{TierFree, "fr", "sjm_fr", 1},
		{TierPro, "pr", "sjm_pr", 3},
		{TierEnterprise, "ent", "sjm_ent", 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			p, err := PolicyFor(tt.tier)
			require.NoError(t, err)
			assert.Equal(t, tt.shortCode, p.ShortCode)
			assert.Equal(t, tt.prefix, p.KeyPrefix)
			assert.Equal(t, tt.limit, p.KeyLimit)
		})
	}
}

func TestPolicyFor_UnknownTier(t *testing.T) {
	_, err := PolicyFor("business")
	assert.ErrorIs(t, err, ErrInvalidPlanTier)

	_, err = PolicyFor("")
	assert.ErrorIs(t, err, ErrInvalidPlanTier)
}

func TestLimitFor(t *testing.T) {
	limit, err := LimitFor(TierFree)
	require.NoError(t, err)
	assert.Equal(t, 1, limit)

	_, err = LimitFor("platinum")
	assert.ErrorIs(t, err, ErrInvalidPlanTier)
}

func TestTiers_Order(t *testing.T) {
	tiers := Tiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, TierFree, tiers[0])
	assert.Equal(t, TierEnterprise, tiers[2])
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(TierPro))
	assert.False(t, Valid("starter"))
}
