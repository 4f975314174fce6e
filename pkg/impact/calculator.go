package impact

import (
	"math"
	"strings"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/pkg/ingredient"
)

type (
	// Calculator turns resolved references and quantities into impact
	// figures. Pure computation, no I/O.
	Calculator interface {
		CalculateItem(ref ingredient.Reference, quantity float64, unit string) (domain.IngredientImpact, error)
		Totals(items []domain.IngredientImpact) domain.ImpactTotals
		EstimateRecipe(recipeName string) domain.ImpactTotals
	}

	calculator struct{}
)

func NewCalculator() Calculator {
	return &calculator{}
}

func (c *calculator) CalculateItem(ref ingredient.Reference, quantity float64, unit string) (domain.IngredientImpact, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return domain.IngredientImpact{}, domain.ErrInvalidQuantity
	}
	if unit == "" {
		unit = "piece"
	}

	weightKg := unitWeightKg(quantity, unit, ref.WeightKg)
	costUsd := unitCostUsd(quantity, unit, ref.CostUsd, ref.WeightKg)
	co2Kg := weightKg * ref.CarbonKgCo2e

	return domain.IngredientImpact{
		Name:     ref.Name,
		Quantity: quantity,
		Unit:     strings.ToLower(strings.TrimSpace(unit)),
		WeightKg: round4(weightKg),
		CostUsd:  round2(costUsd),
		Co2Kg:    round4(co2Kg),
		Matched:  ref.Matched,
	}, nil
}

func (c *calculator) Totals(items []domain.IngredientImpact) domain.ImpactTotals {
	var waste, cost, co2 float64
	for _, item := range items {
		waste += item.WeightKg
		cost += item.CostUsd
		co2 += item.Co2Kg
	}
	return domain.ImpactTotals{
		WastePreventedKg: round4(waste),
		MoneySavedUsd:    round2(cost),
		Co2AvoidedKg:     round4(co2),
	}
}

// EstimateRecipe produces a rough impact figure from a recipe name when
// no ingredient list is available. Baseline is an average home-cooked
// meal, scaled by diet and portion keywords.
func (c *calculator) EstimateRecipe(recipeName string) domain.ImpactTotals {
	name := strings.ToLower(recipeName)

	waste := 0.4
	cost := 8.0
	co2 := 3.0

	switch {
	case containsAny(name, "salad", "vegetable", "vegan", "veggie"):
		co2 *= 0.5
		cost *= 0.7
	case containsAny(name, "beef", "steak", "burger"):
		co2 *= 2.5
		cost *= 1.5
	case containsAny(name, "chicken", "turkey"):
		co2 *= 1.2
	case containsAny(name, "fish", "salmon", "tuna", "shrimp"):
		cost *= 1.3
	}

	switch {
	case containsAny(name, "family", "large", "feast"):
		waste *= 2.0
		cost *= 2.0
		co2 *= 2.0
	case containsAny(name, "small", "mini", "snack"):
		waste *= 0.5
		cost *= 0.5
		co2 *= 0.5
	}

	return domain.ImpactTotals{
		WastePreventedKg: round4(waste),
		MoneySavedUsd:    round2(cost),
		Co2AvoidedKg:     round4(co2),
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
