package ingredient

import (
	"context"

	"github.com/plateful/plateful-backend/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	IngredientRepository interface {
		ListAll(ctx context.Context) ([]*entities.IngredientReference, error)
		GetByName(ctx context.Context, name string) (*entities.IngredientReference, error)
		UpsertAll(ctx context.Context, refs []*entities.IngredientReference) error
		Count(ctx context.Context) (int64, error)
		Search(ctx context.Context, query string, page, limit int) ([]*entities.IngredientReference, int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) ListAll(ctx context.Context) ([]*entities.IngredientReference, error) {
	var refs []*entities.IngredientReference
	if err := r.db.WithContext(ctx).Order("name asc").Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *ingredientRepository) GetByName(ctx context.Context, name string) (*entities.IngredientReference, error) {
	var ref entities.IngredientReference
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *ingredientRepository) UpsertAll(ctx context.Context, refs []*entities.IngredientReference) error {
	if len(refs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "weight_kg", "cost_usd", "carbon_kg_co2e", "aliases", "updated_at",
		}),
	}).Create(&refs).Error
}

func (r *ingredientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.IngredientReference{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ingredientRepository) Search(ctx context.Context, query string, page, limit int) ([]*entities.IngredientReference, int64, error) {
	var refs []*entities.IngredientReference
	var count int64
	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Model(&entities.IngredientReference{})
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("name asc").Offset(offset).Limit(limit).Find(&refs).Error; err != nil {
		return nil, 0, err
	}

	return refs, count, nil
}
