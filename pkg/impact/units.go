package impact

import "strings"

type unitKind int

const (
	unitWeight unitKind = iota
	unitVolume
	unitCount
)

type unitConversion struct {
	kind unitKind
	// factor converts a quantity to kilograms for weight/volume units,
	// or scales the reference's per-unit weight for count units.
	factor float64
}

// Unit table condensed from USDA serving weights and typical packaging
// sizes. Volume factors are approximate densities for general
// ingredients. Unknown units behave as "piece".
var unitConversions = map[string]unitConversion{
	"kg":     {unitWeight, 1.0},
	"g":      {unitWeight, 0.001},
	"gram":   {unitWeight, 0.001},
	"grams":  {unitWeight, 0.001},
	"lb":     {unitWeight, 0.453592},
	"lbs":    {unitWeight, 0.453592},
	"pound":  {unitWeight, 0.453592},
	"pounds": {unitWeight, 0.453592},
	"oz":     {unitWeight, 0.0283495},
	"ounce":  {unitWeight, 0.0283495},
	"ounces": {unitWeight, 0.0283495},

	"cup":         {unitVolume, 0.24},
	"cups":        {unitVolume, 0.24},
	"tbsp":        {unitVolume, 0.015},
	"tablespoon":  {unitVolume, 0.015},
	"tablespoons": {unitVolume, 0.015},
	"tsp":         {unitVolume, 0.005},
	"teaspoon":    {unitVolume, 0.005},
	"teaspoons":   {unitVolume, 0.005},
	"ml":          {unitVolume, 0.001},
	"l":           {unitVolume, 1.0},
	"liter":       {unitVolume, 1.0},
	"liters":      {unitVolume, 1.0},

	"piece":    {unitCount, 1.0},
	"pieces":   {unitCount, 1.0},
	"item":     {unitCount, 1.0},
	"items":    {unitCount, 1.0},
	"whole":    {unitCount, 1.0},
	"head":     {unitCount, 1.0},
	"bunch":    {unitCount, 1.0},
	"slice":    {unitCount, 0.3},
	"slices":   {unitCount, 0.3},
	"clove":    {unitCount, 0.1},
	"cloves":   {unitCount, 0.1},
	"can":      {unitCount, 0.4},
	"cans":     {unitCount, 0.4},
	"package":  {unitCount, 0.5},
	"packages": {unitCount, 0.5},
	"bag":      {unitCount, 0.5},
	"bags":     {unitCount, 0.5},
	"box":      {unitCount, 0.4},
	"boxes":    {unitCount, 0.4},
	"bottle":   {unitCount, 0.5},
	"bottles":  {unitCount, 0.5},
	"jar":      {unitCount, 0.3},
	"jars":     {unitCount, 0.3},
}

var defaultUnit = unitConversion{unitCount, 1.0}

func lookupUnit(unit string) unitConversion {
	normalized := strings.ToLower(strings.TrimSpace(unit))
	if normalized == "" {
		return defaultUnit
	}
	if conv, ok := unitConversions[normalized]; ok {
		return conv
	}
	return defaultUnit
}

// unitWeightKg converts quantity+unit into kilograms. Count units scale
// the reference's per-unit weight; weight and volume units convert
// directly.
func unitWeightKg(quantity float64, unit string, baseWeightKg float64) float64 {
	conv := lookupUnit(unit)
	if conv.kind == unitCount {
		return quantity * baseWeightKg * conv.factor
	}
	return quantity * conv.factor
}

// unitCostUsd prices a quantity. Count units scale the per-unit
// reference cost; weight and volume units price proportionally to the
// converted weight.
func unitCostUsd(quantity float64, unit string, baseCostUsd, baseWeightKg float64) float64 {
	conv := lookupUnit(unit)
	if conv.kind == unitCount {
		return quantity * baseCostUsd * conv.factor
	}
	weightKg := quantity * conv.factor
	costPerKg := baseCostUsd
	if baseWeightKg > 0 {
		costPerKg = baseCostUsd / baseWeightKg
	}
	return weightKg * costPerKg
}
