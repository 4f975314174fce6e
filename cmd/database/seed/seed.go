package seed

import (
	"context"
	"encoding/json"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/entities"
	"github.com/plateful/plateful-backend/internal/utils"
	"github.com/plateful/plateful-backend/internal/utils/logging"
	"github.com/plateful/plateful-backend/internal/utils/storage"
	"github.com/plateful/plateful-backend/pkg/ingredient"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run populates the ingredient reference table on first boot. An archived
// dataset in S3 takes precedence over the built-in table so imports survive
// a database rebuild. Non-empty tables are left untouched.
func Run(ctx context.Context, db *gorm.DB, s3 storage.AwsS3, log *logging.Logger) error {
	repository := ingredient.NewIngredientRepository(db)

	count, err := repository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("ingredient references already seeded", "count", count)
		return nil
	}

	rows := defaultDataset
	archiveKey := utils.GetConfig("INGREDIENT_DATASET_KEY")
	if archiveKey == "" {
		archiveKey = "datasets/ingredient-dataset.json"
	}
	if raw, downloadErr := s3.DownloadFile(archiveKey); downloadErr == nil {
		var archived []domain.DatasetIngredient
		if jsonErr := json.Unmarshal(raw, &archived); jsonErr == nil && len(archived) > 0 {
			rows = archived
			log.Info("seeding ingredient references from archived dataset", "key", archiveKey)
		} else {
			log.Warn("archived ingredient dataset unreadable, using built-in table", "key", archiveKey)
		}
	}

	refs := make([]*entities.IngredientReference, 0, len(rows))
	for _, row := range rows {
		category := row.Category
		if category == "" {
			category = entities.CategoryOther
		}
		ref := &entities.IngredientReference{
			ID:           uuid.New(),
			Name:         row.Name,
			Category:     category,
			WeightKg:     row.WeightKg,
			CostUsd:      row.CostUsd,
			CarbonKgCo2e: row.CarbonKgCo2e,
		}
		if err := ref.SetAliasList(row.Aliases); err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	if err := repository.UpsertAll(ctx, refs); err != nil {
		return err
	}

	log.Info("ingredient references seeded", "count", len(refs))
	return nil
}
