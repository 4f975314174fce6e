package impact

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/entities"
	"github.com/plateful/plateful-backend/internal/utils/logging"
	"github.com/plateful/plateful-backend/internal/utils/mailing"
	"github.com/plateful/plateful-backend/internal/utils/storage"
	"github.com/plateful/plateful-backend/pkg/gamification"
	"github.com/plateful/plateful-backend/pkg/ingredient"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	historyDefaultLimit = 10
	historyMaxLimit     = 50
)

type (
	ImpactService interface {
		LogEvent(ctx context.Context, req domain.LogImpactRequest, userID, email string) (domain.LogImpactResponse, error)
		ReverseEvent(ctx context.Context, eventID, userID string) error
		DeleteEvent(ctx context.Context, eventID, userID string) error
		Estimate(ctx context.Context, req domain.EstimateImpactRequest) (domain.EstimateImpactResponse, error)
		EstimateRecipe(ctx context.Context, req domain.EstimateRecipeRequest) (domain.EstimateImpactResponse, error)
		SummarizeWeek(ctx context.Context, userID string, weekStart string) (domain.PeriodSummary, error)
		GetWeeklySummary(ctx context.Context, userID string) (domain.WeeklySummaryResponse, error)
		GetHistory(ctx context.Context, userID string, page, limit int) ([]domain.ImpactEventResponse, int64, error)
		ExportHistory(ctx context.Context, userID string) (domain.ExportHistoryResponse, error)
	}

	impactService struct {
		db                     *gorm.DB
		impactRepository       ImpactRepository
		gamificationRepository gamification.GamificationRepository
		resolver               ingredient.Resolver
		calculator             Calculator
		engine                 *gamification.Engine
		s3                     storage.AwsS3
		log                    *logging.Logger
	}
)

func NewImpactService(
	db *gorm.DB,
	impactRepository ImpactRepository,
	gamificationRepository gamification.GamificationRepository,
	resolver ingredient.Resolver,
	calculator Calculator,
	engine *gamification.Engine,
	s3 storage.AwsS3,
	log *logging.Logger,
) ImpactService {
	return &impactService{
		db:                     db,
		impactRepository:       impactRepository,
		gamificationRepository: gamificationRepository,
		resolver:               resolver,
		calculator:             calculator,
		engine:                 engine,
		s3:                     s3,
		log:                    log,
	}
}

// compute resolves and prices a batch. Items with invalid quantities are
// skipped and reported; the batch fails only when nothing survives.
func (s *impactService) compute(items []domain.IngredientItemRequest) ([]domain.IngredientImpact, []string, error) {
	breakdown := make([]domain.IngredientImpact, 0, len(items))
	var skipped []string

	for _, item := range items {
		ref := s.resolver.Resolve(item.Name)
		impact, err := s.calculator.CalculateItem(ref, item.Quantity, item.Unit)
		if err != nil {
			skipped = append(skipped, item.Name)
			continue
		}
		if !impact.Matched {
			s.log.Debug("unresolved ingredient defaulted", "name", item.Name)
		}
		breakdown = append(breakdown, impact)
	}

	if len(breakdown) == 0 {
		return nil, skipped, domain.ErrInvalidQuantity
	}
	return breakdown, skipped, nil
}

func (s *impactService) LogEvent(ctx context.Context, req domain.LogImpactRequest, userID, email string) (domain.LogImpactResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogImpactResponse{}, domain.ErrParseUUID
	}

	breakdown, skipped, err := s.compute(req.Ingredients)
	if err != nil {
		return domain.LogImpactResponse{}, err
	}
	totals := s.calculator.Totals(breakdown)

	snapshot, err := json.Marshal(breakdown)
	if err != nil {
		return domain.LogImpactResponse{}, err
	}

	idempotencyKey := req.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	now := time.Now()
	var sourceID *string
	if req.SourceID != "" {
		sourceID = &req.SourceID
	}

	event := &entities.ImpactEvent{
		ID:             uuid.New(),
		UserID:         userUUID,
		Source:         req.Source,
		SourceID:       sourceID,
		IdempotencyKey: idempotencyKey,
		Ingredients:    snapshot,
		TotalWasteKg:   totals.WastePreventedKg,
		TotalCostUsd:   totals.MoneySavedUsd,
		TotalCo2Kg:     totals.Co2AvoidedKg,
		Status:         entities.EventStatusActive,
		Timestamp:      entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	var response domain.LogImpactResponse
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := s.impactRepository.CreateEvent(ctx, tx, event)
		if err != nil {
			return err
		}

		if !created {
			// Duplicate submission: hand back the original event without
			// touching aggregates.
			existing, err := s.impactRepository.GetByIdempotencyKey(ctx, tx, userUUID, idempotencyKey)
			if err != nil {
				return err
			}
			response = s.eventToLogResponse(existing)
			response.Duplicate = true
			return nil
		}

		state, err := s.gamificationRepository.GetForUpdate(ctx, tx, userUUID, s.engine.NewState(userUUID, now))
		if err != nil {
			return err
		}

		update := s.engine.Apply(state, gamification.Delta{
			WasteKg:    event.TotalWasteKg,
			CostUsd:    event.TotalCostUsd,
			Co2Kg:      event.TotalCo2Kg,
			Source:     event.Source,
			OccurredAt: event.CreatedAt,
		})

		if err := s.gamificationRepository.Save(ctx, tx, state); err != nil {
			return err
		}

		response = domain.LogImpactResponse{
			EventID:      event.ID.String(),
			Totals:       totals,
			Breakdown:    breakdown,
			SkippedItems: skipped,
			Gamification: &domain.GamificationUpdate{
				Streak:            update.Streak,
				IsNewStreakRecord: update.IsNewStreakRecord,
				NewBadges:         update.NewBadges,
				WeeklyProgress:    s.weeklyProgressOf(state),
			},
		}
		return nil
	})
	if txErr != nil {
		return domain.LogImpactResponse{}, domain.WrapStorageError(txErr)
	}

	if email != "" && response.Gamification != nil && len(response.Gamification.NewBadges) > 0 {
		badges := response.Gamification.NewBadges
		go func() {
			for _, badge := range badges {
				if err := mailing.SendBadgeEarnedMail(email, badge.Name, badge.Tier, badge.Description); err != nil {
					s.log.Warn("failed to send badge mail", "badge", badge.Key, "error", err)
				}
			}
		}()
	}

	return response, nil
}

func (s *impactService) ReverseEvent(ctx context.Context, eventID, userID string) error {
	return s.transition(ctx, eventID, userID, entities.EventStatusReversed)
}

func (s *impactService) DeleteEvent(ctx context.Context, eventID, userID string) error {
	return s.transition(ctx, eventID, userID, entities.EventStatusDeleted)
}

// transition flips an active event to reversed/deleted and debits its
// snapshot totals from the user's aggregates in the same transaction.
func (s *impactService) transition(ctx context.Context, eventID, userID, newStatus string) error {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := s.impactRepository.GetByIDForUpdate(ctx, tx, eventUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEventNotFound
			}
			return err
		}

		if event.UserID != userUUID {
			return domain.ErrUserNotAllowed
		}
		if event.Status != entities.EventStatusActive {
			return domain.ErrEventNotActive
		}

		if err := s.impactRepository.UpdateStatus(ctx, tx, event.ID, newStatus); err != nil {
			return err
		}

		state, err := s.gamificationRepository.GetForUpdate(ctx, tx, userUUID, s.engine.NewState(userUUID, time.Now()))
		if err != nil {
			return err
		}

		update := s.engine.ApplyReversal(state, gamification.Delta{
			WasteKg:    event.TotalWasteKg,
			CostUsd:    event.TotalCostUsd,
			Co2Kg:      event.TotalCo2Kg,
			Source:     event.Source,
			OccurredAt: event.CreatedAt,
		})
		if update.Clamped {
			s.log.Error("reversal clamped totals at zero, row flagged for audit",
				"user_id", userID, "event_id", eventID)
		}

		return s.gamificationRepository.Save(ctx, tx, state)
	})

	switch {
	case txErr == nil:
		return nil
	case errors.Is(txErr, domain.ErrEventNotFound),
		errors.Is(txErr, domain.ErrUserNotAllowed),
		errors.Is(txErr, domain.ErrEventNotActive):
		return txErr
	default:
		return domain.WrapStorageError(txErr)
	}
}

func (s *impactService) Estimate(ctx context.Context, req domain.EstimateImpactRequest) (domain.EstimateImpactResponse, error) {
	breakdown, skipped, err := s.compute(req.Ingredients)
	if err != nil {
		return domain.EstimateImpactResponse{}, err
	}

	return domain.EstimateImpactResponse{
		Totals:       s.calculator.Totals(breakdown),
		Breakdown:    breakdown,
		SkippedItems: skipped,
	}, nil
}

func (s *impactService) EstimateRecipe(ctx context.Context, req domain.EstimateRecipeRequest) (domain.EstimateImpactResponse, error) {
	return domain.EstimateImpactResponse{
		Totals: s.calculator.EstimateRecipe(req.RecipeName),
	}, nil
}

func (s *impactService) SummarizeWeek(ctx context.Context, userID string, weekStart string) (domain.PeriodSummary, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PeriodSummary{}, domain.ErrParseUUID
	}

	start := s.engine.WeekStart(time.Now())
	if weekStart != "" {
		parsed, err := time.ParseInLocation("2006-01-02", weekStart, s.engine.Location())
		if err != nil {
			return domain.PeriodSummary{}, domain.ErrInvalidWeekStart
		}
		start = s.engine.WeekStart(parsed)
	}
	end := start.AddDate(0, 0, 7)

	totals, err := s.impactRepository.SumWindow(ctx, userUUID, start, end)
	if err != nil {
		return domain.PeriodSummary{}, domain.WrapStorageError(err)
	}

	endDate := end.AddDate(0, 0, -1)
	return domain.PeriodSummary{
		Period:     "week",
		WasteKg:    round4(totals.WasteKg),
		MoneyUsd:   round2(totals.CostUsd),
		Co2Kg:      round4(totals.Co2Kg),
		EventCount: int(totals.EventCount),
		StartDate:  &start,
		EndDate:    &endDate,
	}, nil
}

func (s *impactService) GetWeeklySummary(ctx context.Context, userID string) (domain.WeeklySummaryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WeeklySummaryResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	thisWeekStart := s.engine.WeekStart(now)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)

	thisWeek, err := s.periodSummary(ctx, userUUID, "this_week", thisWeekStart)
	if err != nil {
		return domain.WeeklySummaryResponse{}, err
	}
	lastWeek, err := s.periodSummary(ctx, userUUID, "last_week", lastWeekStart)
	if err != nil {
		return domain.WeeklySummaryResponse{}, err
	}

	allTime := domain.PeriodSummary{Period: "all_time"}
	goalKg := s.engine.DefaultGoalKg()
	state, err := s.gamificationRepository.GetByUserID(ctx, userUUID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.WeeklySummaryResponse{}, domain.WrapStorageError(err)
	}
	if state != nil {
		allTime.WasteKg = state.TotalWasteKg
		allTime.MoneyUsd = state.TotalCostUsd
		allTime.Co2Kg = state.TotalCo2Kg
		allTime.EventCount = state.TotalEvents
		goalKg = state.WeeklyGoalKg
	}

	comparison := map[string]float64{}
	if lastWeek.WasteKg > 0 {
		comparison["waste_kg_change"] = round1((thisWeek.WasteKg - lastWeek.WasteKg) / lastWeek.WasteKg * 100)
	}
	if lastWeek.MoneyUsd > 0 {
		comparison["money_usd_change"] = round1((thisWeek.MoneyUsd - lastWeek.MoneyUsd) / lastWeek.MoneyUsd * 100)
	}
	if lastWeek.Co2Kg > 0 {
		comparison["co2_kg_change"] = round1((thisWeek.Co2Kg - lastWeek.Co2Kg) / lastWeek.Co2Kg * 100)
	}

	weeklyGoal := domain.WeeklyProgress{
		CurrentKg: thisWeek.WasteKg,
		GoalKg:    goalKg,
		WeekStart: thisWeekStart,
	}
	if goalKg > 0 {
		weeklyGoal.Percentage = round1(thisWeek.WasteKg / goalKg * 100)
	}

	return domain.WeeklySummaryResponse{
		ThisWeek:   thisWeek,
		LastWeek:   lastWeek,
		AllTime:    allTime,
		WeeklyGoal: weeklyGoal,
		Comparison: comparison,
	}, nil
}

func (s *impactService) GetHistory(ctx context.Context, userID string, page, limit int) ([]domain.ImpactEventResponse, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	events, count, err := s.impactRepository.ListByUser(ctx, userUUID, page, limit)
	if err != nil {
		return nil, 0, domain.WrapStorageError(err)
	}

	response := make([]domain.ImpactEventResponse, 0, len(events))
	for _, event := range events {
		response = append(response, s.eventToResponse(event))
	}

	return response, count, nil
}

func (s *impactService) ExportHistory(ctx context.Context, userID string) (domain.ExportHistoryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExportHistoryResponse{}, domain.ErrParseUUID
	}

	events, err := s.impactRepository.ListAllByUser(ctx, userUUID)
	if err != nil {
		return domain.ExportHistoryResponse{}, domain.WrapStorageError(err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"id", "source", "source_id", "total_waste_kg", "total_cost_usd", "total_co2_kg", "status", "created_at"})
	for _, event := range events {
		sourceID := ""
		if event.SourceID != nil {
			sourceID = *event.SourceID
		}
		_ = writer.Write([]string{
			event.ID.String(),
			event.Source,
			sourceID,
			strconv.FormatFloat(event.TotalWasteKg, 'f', 4, 64),
			strconv.FormatFloat(event.TotalCostUsd, 'f', 2, 64),
			strconv.FormatFloat(event.TotalCo2Kg, 'f', 4, 64),
			event.Status,
			event.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return domain.ExportHistoryResponse{}, err
	}

	objectKey := fmt.Sprintf("exports/impact-history-%s.csv", userID)
	key, err := s.s3.UploadBytes(objectKey, buf.Bytes(), "text/csv")
	if err != nil {
		return domain.ExportHistoryResponse{}, domain.WrapStorageError(err)
	}

	return domain.ExportHistoryResponse{
		FileURL:    s.s3.GetPublicLinkKey(key),
		EventCount: len(events),
	}, nil
}

func (s *impactService) periodSummary(ctx context.Context, userID uuid.UUID, period string, start time.Time) (domain.PeriodSummary, error) {
	end := start.AddDate(0, 0, 7)
	totals, err := s.impactRepository.SumWindow(ctx, userID, start, end)
	if err != nil {
		return domain.PeriodSummary{}, domain.WrapStorageError(err)
	}

	endDate := end.AddDate(0, 0, -1)
	return domain.PeriodSummary{
		Period:     period,
		WasteKg:    round4(totals.WasteKg),
		MoneyUsd:   round2(totals.CostUsd),
		Co2Kg:      round4(totals.Co2Kg),
		EventCount: int(totals.EventCount),
		StartDate:  &start,
		EndDate:    &endDate,
	}, nil
}

func (s *impactService) weeklyProgressOf(state *entities.UserGamification) domain.WeeklyProgress {
	progress := domain.WeeklyProgress{
		CurrentKg: state.WeeklyProgressKg,
		GoalKg:    state.WeeklyGoalKg,
		WeekStart: state.WeekStartDate,
	}
	if state.WeeklyGoalKg > 0 {
		progress.Percentage = round1(state.WeeklyProgressKg / state.WeeklyGoalKg * 100)
	}
	return progress
}

func (s *impactService) eventToLogResponse(event *entities.ImpactEvent) domain.LogImpactResponse {
	return domain.LogImpactResponse{
		EventID: event.ID.String(),
		Totals: domain.ImpactTotals{
			WastePreventedKg: event.TotalWasteKg,
			MoneySavedUsd:    event.TotalCostUsd,
			Co2AvoidedKg:     event.TotalCo2Kg,
		},
		Breakdown: snapshotOf(event),
	}
}

func (s *impactService) eventToResponse(event *entities.ImpactEvent) domain.ImpactEventResponse {
	sourceID := ""
	if event.SourceID != nil {
		sourceID = *event.SourceID
	}
	return domain.ImpactEventResponse{
		ID:           event.ID.String(),
		Source:       event.Source,
		SourceID:     sourceID,
		Ingredients:  snapshotOf(event),
		TotalWasteKg: event.TotalWasteKg,
		TotalCostUsd: event.TotalCostUsd,
		TotalCo2Kg:   event.TotalCo2Kg,
		Status:       event.Status,
		CreatedAt:    event.CreatedAt,
	}
}

func snapshotOf(event *entities.ImpactEvent) []domain.IngredientImpact {
	var items []domain.IngredientImpact
	if len(event.Ingredients) > 0 {
		_ = json.Unmarshal(event.Ingredients, &items)
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
