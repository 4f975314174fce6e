package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetGamification = "gamification state retrieved successfully"
	MessageSuccessUpdateGoal      = "weekly goal updated successfully"

	MessageFailedGetGamification = "failed to retrieve gamification state"
	MessageFailedUpdateGoal      = "failed to update weekly goal"

	ErrInvalidWeeklyGoal = errors.New("weekly goal must be greater than zero")
)

type (
	StreakInfo struct {
		Current       int        `json:"current"`
		Longest       int        `json:"longest"`
		LastActive    *time.Time `json:"last_active,omitempty"`
		IsActiveToday bool       `json:"is_active_today"`
	}

	WeeklyProgress struct {
		CurrentKg  float64   `json:"current_kg"`
		GoalKg     float64   `json:"goal_kg"`
		Percentage float64   `json:"percentage"`
		WeekStart  time.Time `json:"week_start"`
	}

	BadgeInfo struct {
		Key               string     `json:"key"`
		Name              string     `json:"name"`
		Tier              string     `json:"tier,omitempty"`
		Description       string     `json:"description,omitempty"`
		EarnedAt          *time.Time `json:"earned_at,omitempty"`
		Progress          *float64   `json:"progress,omitempty"`
		NextTierThreshold *float64   `json:"next_tier_threshold,omitempty"`
	}

	// NewBadge is a badge tier earned by the event currently being logged.
	NewBadge struct {
		Key         string    `json:"key"`
		Name        string    `json:"name"`
		Tier        string    `json:"tier"`
		Description string    `json:"description"`
		EarnedAt    time.Time `json:"earned_at"`
	}

	GamificationUpdate struct {
		Streak            int            `json:"streak"`
		IsNewStreakRecord bool           `json:"is_new_streak_record"`
		NewBadges         []NewBadge     `json:"new_badges"`
		WeeklyProgress    WeeklyProgress `json:"weekly_progress"`
	}

	GamificationStateResponse struct {
		UserID      string         `json:"user_id"`
		Streak      StreakInfo     `json:"streak"`
		Badges      []BadgeInfo    `json:"badges"`
		WeeklyGoal  WeeklyProgress `json:"weekly_goal"`
		NextBadge   *BadgeInfo     `json:"next_badge_progress,omitempty"`
		Totals      ImpactTotals   `json:"totals"`
		TotalEvents int            `json:"total_events"`
	}

	UpdateWeeklyGoalRequest struct {
		WeeklyGoalKg float64 `json:"weekly_goal_kg" validate:"required,gt=0,lte=100"`
	}
)
