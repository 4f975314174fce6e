package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

type BadgeAward struct {
	Tier     string    `json:"tier"`
	EarnedAt time.Time `json:"earned_at"`
}

type UserGamification struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID      `gorm:"uniqueIndex" json:"user_id"`
	CurrentStreak    int            `json:"current_streak"`
	LongestStreak    int            `json:"longest_streak"`
	LastActiveDate   *time.Time     `json:"last_active_date,omitempty"`
	WeeklyGoalKg     float64        `json:"weekly_goal_kg"`
	WeeklyProgressKg float64        `json:"weekly_progress_kg"`
	WeekStartDate    time.Time      `json:"week_start_date"`
	TotalWasteKg     float64        `json:"total_waste_kg"`
	TotalCostUsd     float64        `json:"total_cost_usd"`
	TotalCo2Kg       float64        `json:"total_co2_kg"`
	TotalEvents      int            `json:"total_events"`
	TotalShareEvents int            `json:"total_share_events"`
	Badges           datatypes.JSON `json:"badges"` // badge key -> {tier, earned_at}
	AuditFlagged     bool           `json:"audit_flagged"`

	Timestamp
}

func (g *UserGamification) BadgeMap() map[string]BadgeAward {
	badges := map[string]BadgeAward{}
	if len(g.Badges) == 0 {
		return badges
	}
	_ = json.Unmarshal(g.Badges, &badges)
	return badges
}

func (g *UserGamification) SetBadgeMap(badges map[string]BadgeAward) error {
	if badges == nil {
		badges = map[string]BadgeAward{}
	}
	raw, err := json.Marshal(badges)
	if err != nil {
		return err
	}
	g.Badges = raw
	return nil
}
