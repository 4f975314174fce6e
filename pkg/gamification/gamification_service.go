package gamification

import (
	"context"
	"errors"
	"math"

	"github.com/plateful/plateful-backend/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GamificationService interface {
		GetState(ctx context.Context, userID string) (domain.GamificationStateResponse, error)
		UpdateWeeklyGoal(ctx context.Context, req domain.UpdateWeeklyGoalRequest, userID string) error
	}

	gamificationService struct {
		gamificationRepository GamificationRepository
		engine                 *Engine
	}
)

func NewGamificationService(gamificationRepository GamificationRepository, engine *Engine) GamificationService {
	return &gamificationService{
		gamificationRepository: gamificationRepository,
		engine:                 engine,
	}
}

func (s *gamificationService) GetState(ctx context.Context, userID string) (domain.GamificationStateResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GamificationStateResponse{}, domain.ErrParseUUID
	}

	state, err := s.gamificationRepository.GetByUserID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			state = s.engine.NewState(userUUID, s.engine.now())
		} else {
			return domain.GamificationStateResponse{}, domain.WrapStorageError(err)
		}
	}

	today := s.engine.dateOf(s.engine.now())
	streak := domain.StreakInfo{
		Current:    state.CurrentStreak,
		Longest:    state.LongestStreak,
		LastActive: state.LastActiveDate,
	}
	if state.LastActiveDate != nil {
		streak.IsActiveToday = s.engine.dateOf(*state.LastActiveDate).Equal(today)
	}

	held := state.BadgeMap()
	badges := make([]domain.BadgeInfo, 0, len(s.engine.rules))
	var nextBadge *domain.BadgeInfo
	closestProgress := -1.0

	for _, rule := range s.engine.rules {
		value := rule.Metric(state)
		award, has := held[rule.Key]

		if has {
			info := domain.BadgeInfo{
				Key:         rule.Key,
				Name:        rule.Name,
				Tier:        award.Tier,
				Description: rule.Descriptions[award.Tier],
			}
			earnedAt := award.EarnedAt
			info.EarnedAt = &earnedAt
			if next, ok := nextTier(rule, TierRank(award.Tier)); ok {
				progress := progressPct(value, next.Threshold)
				info.Progress = &progress
				threshold := next.Threshold
				info.NextTierThreshold = &threshold
			}
			badges = append(badges, info)
		}

		// Closest unearned tier feeds the "next badge" hint.
		currentRank := -1
		if has {
			currentRank = TierRank(award.Tier)
		}
		if next, ok := nextTier(rule, currentRank); ok && value < next.Threshold {
			progress := value / next.Threshold * 100
			if progress > closestProgress {
				closestProgress = progress
				rounded := progressPct(value, next.Threshold)
				threshold := next.Threshold
				nextBadge = &domain.BadgeInfo{
					Key:               rule.Key,
					Name:              rule.Name,
					Tier:              next.Tier,
					Description:       rule.Descriptions[next.Tier],
					Progress:          &rounded,
					NextTierThreshold: &threshold,
				}
			}
		}
	}

	weekStart := s.engine.WeekStart(s.engine.now())
	weekly := domain.WeeklyProgress{
		CurrentKg: state.WeeklyProgressKg,
		GoalKg:    state.WeeklyGoalKg,
		WeekStart: weekStart,
	}
	if weekStart.After(state.WeekStartDate) {
		// The stored window is stale; progress reads as 0 until the next
		// event rolls the row over.
		weekly.CurrentKg = 0
	}
	if weekly.GoalKg > 0 {
		weekly.Percentage = round1(weekly.CurrentKg / weekly.GoalKg * 100)
	}

	return domain.GamificationStateResponse{
		UserID:     userID,
		Streak:     streak,
		Badges:     badges,
		WeeklyGoal: weekly,
		NextBadge:  nextBadge,
		Totals: domain.ImpactTotals{
			WastePreventedKg: state.TotalWasteKg,
			MoneySavedUsd:    state.TotalCostUsd,
			Co2AvoidedKg:     state.TotalCo2Kg,
		},
		TotalEvents: state.TotalEvents,
	}, nil
}

func (s *gamificationService) UpdateWeeklyGoal(ctx context.Context, req domain.UpdateWeeklyGoalRequest, userID string) error {
	if req.WeeklyGoalKg <= 0 {
		return domain.ErrInvalidWeeklyGoal
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	seed := s.engine.NewState(userUUID, s.engine.now())
	if err := s.gamificationRepository.SetWeeklyGoal(ctx, userUUID, seed, req.WeeklyGoalKg); err != nil {
		return domain.WrapStorageError(err)
	}
	return nil
}

func nextTier(rule BadgeRule, currentRank int) (TierThreshold, bool) {
	for _, tier := range rule.Tiers {
		if TierRank(tier.Tier) > currentRank {
			return tier, true
		}
	}
	return TierThreshold{}, false
}

func progressPct(value, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	pct := value / threshold * 100
	if pct > 100 {
		pct = 100
	}
	return round1(pct)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
