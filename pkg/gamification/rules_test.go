package gamification

import (
	"testing"

	"github.com/plateful/plateful-backend/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierRank(t *testing.T) {
	assert.Equal(t, 0, TierRank(entities.TierBronze))
	assert.Equal(t, 1, TierRank(entities.TierSilver))
	assert.Equal(t, 2, TierRank(entities.TierGold))
	assert.Equal(t, -1, TierRank("platinum"))
	assert.Equal(t, -1, TierRank(""))
}

func TestDefaultBadgeRulesShape(t *testing.T) {
	require.Len(t, DefaultBadgeRules, 6)

	seen := map[string]bool{}
	for _, rule := range DefaultBadgeRules {
		assert.NotEmpty(t, rule.Key)
		assert.NotEmpty(t, rule.Name)
		assert.NotNil(t, rule.Metric)
		assert.False(t, seen[rule.Key], "duplicate rule key %s", rule.Key)
		seen[rule.Key] = true

		require.Len(t, rule.Tiers, 3, "rule %s", rule.Key)
		prev := -1.0
		for _, tier := range rule.Tiers {
			assert.Greater(t, tier.Threshold, prev, "rule %s tiers must ascend", rule.Key)
			assert.NotEmpty(t, rule.Descriptions[tier.Tier], "rule %s missing %s description", rule.Key, tier.Tier)
			prev = tier.Threshold
		}
	}
}

func TestBadgeRuleMetrics(t *testing.T) {
	state := &entities.UserGamification{
		CurrentStreak:    7,
		TotalWasteKg:     12.5,
		TotalCostUsd:     60.0,
		TotalCo2Kg:       30.0,
		TotalEvents:      9,
		TotalShareEvents: 4,
	}

	metrics := map[string]float64{}
	for _, rule := range DefaultBadgeRules {
		metrics[rule.Key] = rule.Metric(state)
	}

	assert.Equal(t, 12.5, metrics[BadgeWasteSaver])
	assert.Equal(t, 60.0, metrics[BadgeMoneySaver])
	assert.Equal(t, 30.0, metrics[BadgeCarbonHero])
	assert.Equal(t, 7.0, metrics[BadgeStreakMaster])
	assert.Equal(t, 9.0, metrics[BadgeRecipeChef])
	assert.Equal(t, 4.0, metrics[BadgeCommunityHero])
}
