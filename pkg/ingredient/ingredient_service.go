package ingredient

import (
	"context"
	"encoding/json"
	"io"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/entities"
	"github.com/plateful/plateful-backend/internal/utils"
	"github.com/plateful/plateful-backend/internal/utils/logging"
	"github.com/plateful/plateful-backend/internal/utils/storage"
	"github.com/google/uuid"
)

type (
	IngredientService interface {
		Search(ctx context.Context, query string, page, limit int) ([]domain.IngredientReferenceResponse, int64, error)
		ResolvePreview(ctx context.Context, req domain.ResolveIngredientRequest) (domain.ResolveIngredientResponse, error)
		ImportDataset(ctx context.Context, req domain.ImportDatasetRequest) (domain.ImportDatasetResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		resolver             Resolver
		s3                   storage.AwsS3
		log                  *logging.Logger
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, resolver Resolver, s3 storage.AwsS3, log *logging.Logger) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		resolver:             resolver,
		s3:                   s3,
		log:                  log,
	}
}

func (s *ingredientService) Search(ctx context.Context, query string, page, limit int) ([]domain.IngredientReferenceResponse, int64, error) {
	refs, count, err := s.ingredientRepository.Search(ctx, query, page, limit)
	if err != nil {
		return nil, 0, domain.WrapStorageError(err)
	}

	response := make([]domain.IngredientReferenceResponse, 0, len(refs))
	for _, ref := range refs {
		response = append(response, domain.IngredientReferenceResponse{
			Name:         ref.Name,
			Category:     ref.Category,
			WeightKg:     ref.WeightKg,
			CostUsd:      ref.CostUsd,
			CarbonKgCo2e: ref.CarbonKgCo2e,
			Aliases:      ref.AliasList(),
		})
	}

	return response, count, nil
}

func (s *ingredientService) ResolvePreview(ctx context.Context, req domain.ResolveIngredientRequest) (domain.ResolveIngredientResponse, error) {
	ref := s.resolver.Resolve(req.Name)

	return domain.ResolveIngredientResponse{
		Query:        req.Name,
		MatchedName:  ref.Name,
		Category:     ref.Category,
		WeightKg:     ref.WeightKg,
		CostUsd:      ref.CostUsd,
		CarbonKgCo2e: ref.CarbonKgCo2e,
		Score:        ref.Score,
		Matched:      ref.Matched,
	}, nil
}

func (s *ingredientService) ImportDataset(ctx context.Context, req domain.ImportDatasetRequest) (domain.ImportDatasetResponse, error) {
	file, err := req.File.Open()
	if err != nil {
		return domain.ImportDatasetResponse{}, domain.ErrInvalidDataset
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return domain.ImportDatasetResponse{}, domain.ErrInvalidDataset
	}

	var rows []domain.DatasetIngredient
	if err := json.Unmarshal(raw, &rows); err != nil {
		return domain.ImportDatasetResponse{}, domain.ErrInvalidDataset
	}
	if len(rows) == 0 {
		return domain.ImportDatasetResponse{}, domain.ErrEmptyDataset
	}

	refs := make([]*entities.IngredientReference, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.WeightKg <= 0 || row.CostUsd < 0 || row.CarbonKgCo2e < 0 {
			return domain.ImportDatasetResponse{}, domain.ErrInvalidDataset
		}
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
			return domain.ImportDatasetResponse{}, domain.ErrInvalidDataset
		}
		refs = append(refs, ref)
	}

	// Archive the raw upload before touching the table; the previous
	// archive object is deleted so the bucket holds only the latest dataset.
	archiveURL := ""
	archiveKey := utils.GetConfig("INGREDIENT_DATASET_KEY")
	if archiveKey == "" {
		archiveKey = "datasets/ingredient-dataset.json"
	}
	if key, uploadErr := s.s3.UpdateFile(archiveKey, req.File, storage.AllowJSON...); uploadErr != nil {
		s.log.Warn("failed to archive ingredient dataset", "error", uploadErr)
	} else {
		archiveURL = s.s3.GetPublicLinkKey(key)
	}

	if err := s.ingredientRepository.UpsertAll(ctx, refs); err != nil {
		return domain.ImportDatasetResponse{}, domain.WrapStorageError(err)
	}

	if err := s.resolver.Reload(ctx); err != nil {
		return domain.ImportDatasetResponse{}, domain.WrapStorageError(err)
	}

	s.log.Info("ingredient dataset imported", "rows", len(refs))

	return domain.ImportDatasetResponse{
		Imported:   len(refs),
		ArchiveURL: archiveURL,
	}, nil
}
