package entities

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CategoryProduce    = "produce"
	CategoryDairy      = "dairy"
	CategoryProtein    = "protein"
	CategoryGrains     = "grains"
	CategoryCondiments = "condiments"
	CategoryBeverages  = "beverages"
	CategoryFrozen     = "frozen"
	CategoryOther      = "other"
)

type IngredientReference struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string         `gorm:"uniqueIndex" json:"name"`
	Category     string         `json:"category"` // produce, dairy, protein, grains, condiments, beverages, frozen, other
	WeightKg     float64        `json:"weight_kg"`      // average mass per unit
	CostUsd      float64        `json:"cost_usd"`       // average cost per unit
	CarbonKgCo2e float64        `json:"carbon_kg_co2e"` // emission intensity per kg
	Aliases      datatypes.JSON `json:"aliases"`

	Timestamp
}

func (r *IngredientReference) AliasList() []string {
	var aliases []string
	if len(r.Aliases) == 0 {
		return aliases
	}
	_ = json.Unmarshal(r.Aliases, &aliases)
	return aliases
}

func (r *IngredientReference) SetAliasList(aliases []string) error {
	if aliases == nil {
		aliases = []string{}
	}
	raw, err := json.Marshal(aliases)
	if err != nil {
		return err
	}
	r.Aliases = raw
	return nil
}
