package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SourceRecipe      = "recipe"
	SourceFridgeShare = "fridge_share"
	SourceManual      = "manual"

	EventStatusActive   = "active"
	EventStatusReversed = "reversed"
	EventStatusDeleted  = "deleted"
)

type ImpactEvent struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID      `gorm:"index;uniqueIndex:idx_impact_events_user_key" json:"user_id"`
	Source         string         `json:"source"` // recipe, fridge_share, manual
	SourceID       *string        `json:"source_id,omitempty"`
	IdempotencyKey string         `gorm:"uniqueIndex:idx_impact_events_user_key" json:"idempotency_key"`
	Ingredients    datatypes.JSON `json:"ingredients"` // snapshot captured at computation time
	TotalWasteKg   float64        `json:"total_waste_kg"`
	TotalCostUsd   float64        `json:"total_cost_usd"`
	TotalCo2Kg     float64        `json:"total_co2_kg"`
	Status         string         `json:"status"` // active, reversed, deleted

	Timestamp
}
