package impact

import (
	"context"
	"testing"
	"time"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/entities"
	"github.com/plateful/plateful-backend/internal/utils/logging"
	"github.com/plateful/plateful-backend/internal/utils/storage"
	"github.com/plateful/plateful-backend/pkg/gamification"
	"github.com/plateful/plateful-backend/pkg/ingredient"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mapResolver resolves from a fixed table, everything else falls back to
// the default reference.
type mapResolver struct {
	refs map[string]ingredient.Reference
}

func (r *mapResolver) Resolve(raw string) ingredient.Reference {
	if ref, ok := r.refs[raw]; ok {
		return ref
	}
	ref := ingredient.DefaultReference
	ref.Name = raw
	return ref
}

func (r *mapResolver) Reload(_ context.Context) error { return nil }

type stubImpactRepository struct {
	windows map[time.Time]WindowTotals
	events  []*entities.ImpactEvent
	count   int64

	listPage  int
	listLimit int
}

func (s *stubImpactRepository) CreateEvent(_ context.Context, _ *gorm.DB, _ *entities.ImpactEvent) (bool, error) {
	return true, nil
}

func (s *stubImpactRepository) GetByIdempotencyKey(_ context.Context, _ *gorm.DB, _ uuid.UUID, _ string) (*entities.ImpactEvent, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubImpactRepository) GetByID(_ context.Context, _ uuid.UUID) (*entities.ImpactEvent, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubImpactRepository) GetByIDForUpdate(_ context.Context, _ *gorm.DB, _ uuid.UUID) (*entities.ImpactEvent, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubImpactRepository) UpdateStatus(_ context.Context, _ *gorm.DB, _ uuid.UUID, _ string) error {
	return nil
}

func (s *stubImpactRepository) SumWindow(_ context.Context, _ uuid.UUID, start, _ time.Time) (WindowTotals, error) {
	return s.windows[start], nil
}

func (s *stubImpactRepository) ListByUser(_ context.Context, _ uuid.UUID, page, limit int) ([]*entities.ImpactEvent, int64, error) {
	s.listPage = page
	s.listLimit = limit
	return s.events, s.count, nil
}

func (s *stubImpactRepository) ListAllByUser(_ context.Context, _ uuid.UUID) ([]*entities.ImpactEvent, error) {
	return s.events, nil
}

func testService(repo *stubImpactRepository, gamRepo gamification.GamificationRepository) ImpactService {
	resolver := &mapResolver{refs: map[string]ingredient.Reference{
		"tomato": {Name: "tomato", Category: entities.CategoryProduce, WeightKg: 0.12, CostUsd: 0.50, CarbonKgCo2e: 1.4, Score: 1, Matched: true},
	}}
	engine := gamification.NewEngine(time.UTC, time.Monday, 2.0, gamification.DefaultBadgeRules)
	return NewImpactService(nil, repo, gamRepo, resolver, NewCalculator(), engine, storage.AwsS3{}, logging.NewNop())
}

func TestEstimate(t *testing.T) {
	svc := testService(&stubImpactRepository{}, nil)

	res, err := svc.Estimate(context.Background(), domain.EstimateImpactRequest{
		Ingredients: []domain.IngredientItemRequest{
			{Name: "tomato", Quantity: 3, Unit: "pieces"},
			{Name: "xyzfood", Quantity: 1, Unit: "piece"},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Breakdown, 2)
	assert.Empty(t, res.SkippedItems)
	assert.Equal(t, 0.46, res.Totals.WastePreventedKg)
	assert.Equal(t, 2.50, res.Totals.MoneySavedUsd)
	assert.Equal(t, 0.604, res.Totals.Co2AvoidedKg)
	assert.True(t, res.Breakdown[0].Matched)
	assert.False(t, res.Breakdown[1].Matched)
}

func TestEstimateSkipsInvalidItems(t *testing.T) {
	svc := testService(&stubImpactRepository{}, nil)

	res, err := svc.Estimate(context.Background(), domain.EstimateImpactRequest{
		Ingredients: []domain.IngredientItemRequest{
			{Name: "tomato", Quantity: 1, Unit: "piece"},
			{Name: "tomato", Quantity: -4, Unit: "piece"},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, []string{"tomato"}, res.SkippedItems)
}

func TestEstimateAllInvalidFails(t *testing.T) {
	svc := testService(&stubImpactRepository{}, nil)

	_, err := svc.Estimate(context.Background(), domain.EstimateImpactRequest{
		Ingredients: []domain.IngredientItemRequest{
			{Name: "tomato", Quantity: -1, Unit: "piece"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestEstimateRecipeService(t *testing.T) {
	svc := testService(&stubImpactRepository{}, nil)

	res, err := svc.EstimateRecipe(context.Background(), domain.EstimateRecipeRequest{RecipeName: "beef stew"})
	require.NoError(t, err)

	assert.Equal(t, 7.5, res.Totals.Co2AvoidedKg)
	assert.Empty(t, res.Breakdown)
}

func TestSummarizeWeek(t *testing.T) {
	engine := gamification.NewEngine(time.UTC, time.Monday, 2.0, nil)
	weekStart := engine.WeekStart(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	repo := &stubImpactRepository{windows: map[time.Time]WindowTotals{
		weekStart: {WasteKg: 1.2, CostUsd: 4.0, Co2Kg: 2.4, EventCount: 3},
	}}
	svc := testService(repo, nil)
	userID := uuid.New().String()

	t.Run("explicit date snaps to its week start", func(t *testing.T) {
		res, err := svc.SummarizeWeek(context.Background(), userID, "2026-03-04")
		require.NoError(t, err)

		assert.Equal(t, 1.2, res.WasteKg)
		assert.Equal(t, 4.0, res.MoneyUsd)
		assert.Equal(t, 3, res.EventCount)
		require.NotNil(t, res.StartDate)
		assert.Equal(t, weekStart, *res.StartDate)
		require.NotNil(t, res.EndDate)
		assert.Equal(t, weekStart.AddDate(0, 0, 6), *res.EndDate)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := svc.SummarizeWeek(context.Background(), userID, "03/04/2026")
		assert.ErrorIs(t, err, domain.ErrInvalidWeekStart)
	})

	t.Run("malformed user id rejected", func(t *testing.T) {
		_, err := svc.SummarizeWeek(context.Background(), "nope", "2026-03-04")
		assert.ErrorIs(t, err, domain.ErrParseUUID)
	})
}

func TestGetHistory(t *testing.T) {
	sourceID := "recipe-42"
	event := &entities.ImpactEvent{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Source:       entities.SourceRecipe,
		SourceID:     &sourceID,
		Ingredients:  []byte(`[{"name":"tomato","quantity":3,"unit":"pieces","weight_kg":0.36,"cost_usd":1.5,"co2_kg":0.504,"matched":true}]`),
		TotalWasteKg: 0.36,
		TotalCostUsd: 1.5,
		TotalCo2Kg:   0.504,
		Status:       entities.EventStatusActive,
	}
	repo := &stubImpactRepository{events: []*entities.ImpactEvent{event}, count: 1}
	svc := testService(repo, nil)

	events, count, err := svc.GetHistory(context.Background(), event.UserID.String(), 0, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(1), count)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID.String(), events[0].ID)
	assert.Equal(t, "recipe-42", events[0].SourceID)
	require.Len(t, events[0].Ingredients, 1)
	assert.Equal(t, "tomato", events[0].Ingredients[0].Name)

	// page and limit are clamped before hitting the repository
	assert.Equal(t, 1, repo.listPage)
	assert.Equal(t, historyMaxLimit, repo.listLimit)
}
