package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessSearchIngredients = "ingredients retrieved successfully"
	MessageSuccessResolveIngredient = "ingredient resolved successfully"
	MessageSuccessImportDataset     = "ingredient dataset imported successfully"

	MessageFailedSearchIngredients = "failed to retrieve ingredients"
	MessageFailedResolveIngredient = "failed to resolve ingredient"
	MessageFailedImportDataset     = "failed to import ingredient dataset"

	ErrEmptyDataset   = errors.New("ingredient dataset has no rows")
	ErrInvalidDataset = errors.New("invalid ingredient dataset")
)

type (
	IngredientReferenceResponse struct {
		Name         string   `json:"name"`
		Category     string   `json:"category"`
		WeightKg     float64  `json:"weight_kg"`
		CostUsd      float64  `json:"cost_usd"`
		CarbonKgCo2e float64  `json:"carbon_kg_co2e"`
		Aliases      []string `json:"aliases"`
	}

	ResolveIngredientRequest struct {
		Name string `json:"name" validate:"required"`
	}

	ResolveIngredientResponse struct {
		Query        string  `json:"query"`
		MatchedName  string  `json:"matched_name"`
		Category     string  `json:"category"`
		WeightKg     float64 `json:"weight_kg"`
		CostUsd      float64 `json:"cost_usd"`
		CarbonKgCo2e float64 `json:"carbon_kg_co2e"`
		Score        float64 `json:"score"`
		Matched      bool    `json:"matched"`
	}

	ImportDatasetRequest struct {
		File *multipart.FileHeader `json:"file" form:"file" validate:"required"`
	}

	ImportDatasetResponse struct {
		Imported   int    `json:"imported"`
		ArchiveURL string `json:"archive_url"`
	}

	// DatasetIngredient is one row of an imported or seeded reference dataset.
	DatasetIngredient struct {
		Name         string   `json:"name"`
		Category     string   `json:"category"`
		WeightKg     float64  `json:"weight_kg"`
		CostUsd      float64  `json:"cost_usd"`
		CarbonKgCo2e float64  `json:"carbon_kg_co2e"`
		Aliases      []string `json:"aliases"`
	}
)
