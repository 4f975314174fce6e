package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogImpact     = "impact calculated and logged successfully"
	MessageSuccessReverseImpact = "impact event reversed successfully"
	MessageSuccessDeleteImpact  = "impact event deleted successfully"
	MessageSuccessGetSummary    = "impact summary retrieved successfully"
	MessageSuccessGetWeek       = "weekly totals retrieved successfully"
	MessageSuccessGetHistory    = "impact history retrieved successfully"
	MessageSuccessExportHistory = "impact history exported successfully"
	MessageSuccessEstimate      = "impact estimated successfully"

	MessageFailedLogImpact     = "failed to log impact event"
	MessageFailedReverseImpact = "failed to reverse impact event"
	MessageFailedDeleteImpact  = "failed to delete impact event"
	MessageFailedGetSummary    = "failed to retrieve impact summary"
	MessageFailedGetWeek       = "failed to retrieve weekly totals"
	MessageFailedGetHistory    = "failed to retrieve impact history"
	MessageFailedExportHistory = "failed to export impact history"
	MessageFailedEstimate      = "failed to estimate impact"

	ErrInvalidQuantity  = errors.New("quantity must be a finite non-negative number")
	ErrEventNotFound    = errors.New("impact event not found")
	ErrEventNotActive   = errors.New("impact event is not active")
	ErrInvalidWeekStart = errors.New("invalid week start date")
)

type (
	IngredientItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	LogImpactRequest struct {
		Source         string                  `json:"source" validate:"required,oneof=recipe fridge_share manual"`
		SourceID       string                  `json:"source_id"`
		IdempotencyKey string                  `json:"idempotency_key" validate:"omitempty,max=128"`
		Ingredients    []IngredientItemRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	// IngredientImpact is both the per-item response breakdown and the
	// shape persisted in the event snapshot.
	IngredientImpact struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		WeightKg float64 `json:"weight_kg"`
		CostUsd  float64 `json:"cost_usd"`
		Co2Kg    float64 `json:"co2_kg"`
		Matched  bool    `json:"matched"`
	}

	ImpactTotals struct {
		WastePreventedKg float64 `json:"waste_prevented_kg"`
		MoneySavedUsd    float64 `json:"money_saved_usd"`
		Co2AvoidedKg     float64 `json:"co2_avoided_kg"`
	}

	LogImpactResponse struct {
		EventID      string              `json:"event_id"`
		Duplicate    bool                `json:"duplicate"`
		Totals       ImpactTotals        `json:"totals"`
		Breakdown    []IngredientImpact  `json:"breakdown"`
		SkippedItems []string            `json:"skipped_items,omitempty"`
		Gamification *GamificationUpdate `json:"gamification,omitempty"`
	}

	ImpactEventResponse struct {
		ID           string             `json:"id"`
		Source       string             `json:"source"`
		SourceID     string             `json:"source_id,omitempty"`
		Ingredients  []IngredientImpact `json:"ingredients"`
		TotalWasteKg float64            `json:"total_waste_kg"`
		TotalCostUsd float64            `json:"total_cost_usd"`
		TotalCo2Kg   float64            `json:"total_co2_kg"`
		Status       string             `json:"status"`
		CreatedAt    time.Time          `json:"created_at"`
	}

	PeriodSummary struct {
		Period     string     `json:"period"`
		WasteKg    float64    `json:"waste_kg"`
		MoneyUsd   float64    `json:"money_usd"`
		Co2Kg      float64    `json:"co2_kg"`
		EventCount int        `json:"event_count"`
		StartDate  *time.Time `json:"start_date,omitempty"`
		EndDate    *time.Time `json:"end_date,omitempty"`
	}

	WeeklySummaryResponse struct {
		ThisWeek   PeriodSummary      `json:"this_week"`
		LastWeek   PeriodSummary      `json:"last_week"`
		AllTime    PeriodSummary      `json:"all_time"`
		WeeklyGoal WeeklyProgress     `json:"weekly_goal"`
		Comparison map[string]float64 `json:"comparison"`
	}

	EstimateImpactRequest struct {
		Ingredients []IngredientItemRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	EstimateRecipeRequest struct {
		RecipeName string `json:"recipe_name" validate:"required"`
	}

	EstimateImpactResponse struct {
		Totals       ImpactTotals       `json:"totals"`
		Breakdown    []IngredientImpact `json:"breakdown,omitempty"`
		SkippedItems []string           `json:"skipped_items,omitempty"`
	}

	ExportHistoryResponse struct {
		FileURL    string `json:"file_url"`
		EventCount int    `json:"event_count"`
	}
)
