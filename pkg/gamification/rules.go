package gamification

import "github.com/plateful/plateful-backend/entities"

const (
	BadgeWasteSaver    = "waste_saver"
	BadgeMoneySaver    = "money_saver"
	BadgeCarbonHero    = "carbon_hero"
	BadgeStreakMaster  = "streak_master"
	BadgeRecipeChef    = "recipe_chef"
	BadgeCommunityHero = "community_hero"
)

type (
	TierThreshold struct {
		Tier      string
		Threshold float64
	}

	// BadgeRule awards tiers when its metric crosses ordered thresholds.
	// Tiers only advance; the engine never walks a badge back.
	BadgeRule struct {
		Key          string
		Name         string
		Metric       func(state *entities.UserGamification) float64
		Tiers        []TierThreshold
		Descriptions map[string]string
	}
)

// DefaultBadgeRules holds the production thresholds. Ordered ascending
// within each rule so the highest earned tier wins a single pass.
var DefaultBadgeRules = []BadgeRule{
	{
		Key:  BadgeWasteSaver,
		Name: "Food Saver",
		Metric: func(s *entities.UserGamification) float64 { return s.TotalWasteKg },
		Tiers: []TierThreshold{
			{entities.TierBronze, 5},
			{entities.TierSilver, 25},
			{entities.TierGold, 100},
		},
		Descriptions: map[string]string{
			entities.TierBronze: "Prevented 5kg of food waste",
			entities.TierSilver: "Prevented 25kg of food waste",
			entities.TierGold:   "Prevented 100kg of food waste - Food Waste Champion!",
		},
	},
	{
		Key:  BadgeMoneySaver,
		Name: "Penny Pincher",
		Metric: func(s *entities.UserGamification) float64 { return s.TotalCostUsd },
		Tiers: []TierThreshold{
			{entities.TierBronze, 50},
			{entities.TierSilver, 250},
			{entities.TierGold, 1000},
		},
		Descriptions: map[string]string{
			entities.TierBronze: "Saved $50 on groceries",
			entities.TierSilver: "Saved $250 on groceries",
			entities.TierGold:   "Saved $1000 on groceries - Budget Master!",
		},
	},
	{
		Key:  BadgeCarbonHero,
		Name: "Climate Guardian",
		Metric: func(s *entities.UserGamification) float64 { return s.TotalCo2Kg },
		Tiers: []TierThreshold{
			{entities.TierBronze, 10},
			{entities.TierSilver, 50},
			{entities.TierGold, 200},
		},
		Descriptions: map[string]string{
			entities.TierBronze: "Avoided 10kg of CO2 emissions",
			entities.TierSilver: "Avoided 50kg of CO2 emissions",
			entities.TierGold:   "Avoided 200kg of CO2 emissions - Planet Protector!",
		},
	},
	{
		Key:  BadgeStreakMaster,
		Name: "Streak Master",
		Metric: func(s *entities.UserGamification) float64 { return float64(s.CurrentStreak) },
		Tiers: []TierThreshold{
			{entities.TierBronze, 7},
			{entities.TierSilver, 30},
			{entities.TierGold, 100},
		},
		Descriptions: map[string]string{
			entities.TierBronze: "Maintained a 7-day streak",
			entities.TierSilver: "Maintained a 30-day streak",
			entities.TierGold:   "Maintained a 100-day streak - Unstoppable!",
		},
	},
	{
		Key:  BadgeRecipeChef,
		Name: "Home Chef",
		Metric: func(s *entities.UserGamification) float64 { return float64(s.TotalEvents) },
		Tiers: []TierThreshold{
			{entities.TierBronze, 5},
			{entities.TierSilver, 25},
			{entities.TierGold, 100},
		},
		Descriptions: map[string]string{
			entities.TierBronze: "Made 5 recipes",
			entities.TierSilver: "Made 25 recipes",
			entities.TierGold:   "Made 100 recipes - Master Chef!",
		},
	},
	{
		Key:  BadgeCommunityHero,
		Name: "Community Hero",
		Metric: func(s *entities.UserGamification) float64 { return float64(s.TotalShareEvents) },
		Tiers: []TierThreshold{
			{entities.TierBronze, 3},
			{entities.TierSilver, 15},
			{entities.TierGold, 50},
		},
		Descriptions: map[string]string{
			entities.TierBronze: "Shared 3 food items",
			entities.TierSilver: "Shared 15 food items",
			entities.TierGold:   "Shared 50 food items - Neighborhood Hero!",
		},
	},
}

var tierOrder = map[string]int{
	entities.TierBronze: 0,
	entities.TierSilver: 1,
	entities.TierGold:   2,
}

// TierRank orders tiers for monotonic advancement; unknown tiers rank
// below bronze.
func TierRank(tier string) int {
	if rank, ok := tierOrder[tier]; ok {
		return rank
	}
	return -1
}
