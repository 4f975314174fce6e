package ingredient

import (
	"context"
	"testing"

	"github.com/plateful/plateful-backend/entities"
	"github.com/plateful/plateful-backend/internal/utils/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIngredientRepository struct {
	refs []*entities.IngredientReference
	err  error
}

func (s *stubIngredientRepository) ListAll(_ context.Context) ([]*entities.IngredientReference, error) {
	return s.refs, s.err
}

func (s *stubIngredientRepository) GetByName(_ context.Context, _ string) (*entities.IngredientReference, error) {
	return nil, nil
}

func (s *stubIngredientRepository) UpsertAll(_ context.Context, _ []*entities.IngredientReference) error {
	return nil
}

func (s *stubIngredientRepository) Count(_ context.Context) (int64, error) {
	return int64(len(s.refs)), nil
}

func (s *stubIngredientRepository) Search(_ context.Context, _ string, _, _ int) ([]*entities.IngredientReference, int64, error) {
	return s.refs, int64(len(s.refs)), nil
}

func testReference(t *testing.T, name, category string, weight, cost, carbon float64, aliases ...string) *entities.IngredientReference {
	t.Helper()
	ref := &entities.IngredientReference{
		Name:         name,
		Category:     category,
		WeightKg:     weight,
		CostUsd:      cost,
		CarbonKgCo2e: carbon,
	}
	require.NoError(t, ref.SetAliasList(aliases))
	return ref
}

func loadedResolver(t *testing.T) Resolver {
	t.Helper()
	repo := &stubIngredientRepository{refs: []*entities.IngredientReference{
		testReference(t, "tomato", entities.CategoryProduce, 0.15, 0.75, 1.4, "roma tomato", "cherry tomato"),
		testReference(t, "chicken breast", entities.CategoryProtein, 0.17, 3.50, 6.9, "boneless chicken"),
		testReference(t, "green beans", entities.CategoryProduce, 0.15, 2.00, 0.8, "string beans"),
	}}
	r := NewResolver(repo, NewLevenshteinMatcher(), DefaultMatchThreshold, logging.NewNop())
	require.NoError(t, r.Reload(context.Background()))
	return r
}

func TestResolverExactMatch(t *testing.T) {
	r := loadedResolver(t)

	ref := r.Resolve("Tomato")
	assert.True(t, ref.Matched)
	assert.Equal(t, "tomato", ref.Name)
	assert.Equal(t, 1.0, ref.Score)
	assert.Equal(t, 0.15, ref.WeightKg)
}

func TestResolverAliasMatch(t *testing.T) {
	r := loadedResolver(t)

	ref := r.Resolve("roma tomatoes")
	assert.True(t, ref.Matched)
	assert.Equal(t, "tomato", ref.Name)
}

func TestResolverPluralCanonicalName(t *testing.T) {
	// canonical names stored as plurals still resolve because both sides
	// pass through the same normalization
	r := loadedResolver(t)

	ref := r.Resolve("green bean")
	assert.True(t, ref.Matched)
	assert.Equal(t, "green beans", ref.Name)
}

func TestResolverFuzzyMatch(t *testing.T) {
	r := loadedResolver(t)

	ref := r.Resolve("tomatos")
	assert.True(t, ref.Matched)
	assert.Equal(t, "tomato", ref.Name)
	assert.GreaterOrEqual(t, ref.Score, DefaultMatchThreshold)
}

func TestResolverDefaultFallback(t *testing.T) {
	r := loadedResolver(t)

	ref := r.Resolve("xyzfood")
	assert.False(t, ref.Matched)
	assert.Equal(t, "xyzfood", ref.Name)
	assert.Equal(t, DefaultReference.WeightKg, ref.WeightKg)
	assert.Equal(t, DefaultReference.CostUsd, ref.CostUsd)
	assert.Equal(t, DefaultReference.CarbonKgCo2e, ref.CarbonKgCo2e)
	assert.Equal(t, entities.CategoryOther, ref.Category)
}

func TestResolverEmptyQuery(t *testing.T) {
	r := loadedResolver(t)

	ref := r.Resolve("  !! ")
	assert.False(t, ref.Matched)
}

func TestResolverDeterministic(t *testing.T) {
	r := loadedResolver(t)

	first := r.Resolve("chiken breast")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, r.Resolve("chiken breast"))
	}
}

func TestResolverBeforeReload(t *testing.T) {
	repo := &stubIngredientRepository{}
	r := NewResolver(repo, NewLevenshteinMatcher(), DefaultMatchThreshold, logging.NewNop())

	ref := r.Resolve("tomato")
	assert.False(t, ref.Matched)
	assert.Equal(t, "tomato", ref.Name)
}
