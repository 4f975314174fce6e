package gamification

import (
	"math"
	"strings"
	"time"

	"github.com/plateful/plateful-backend/domain"
	"github.com/plateful/plateful-backend/entities"
	"github.com/google/uuid"
)

type (
	// Delta is one event's contribution to a user's state. OccurredAt is
	// the event's own timestamp; streak and rollover decisions use it,
	// never the processing clock.
	Delta struct {
		WasteKg    float64
		CostUsd    float64
		Co2Kg      float64
		Source     string
		OccurredAt time.Time
	}

	// Update reports what changed when a delta was applied.
	Update struct {
		Streak            int
		IsNewStreakRecord bool
		NewBadges         []domain.NewBadge
		Clamped           bool
	}

	// Engine is the pure per-user state machine: week rollover, streak
	// transitions, running totals, and badge evaluation. It owns the
	// calendar configuration so every caller agrees on week boundaries.
	Engine struct {
		loc           *time.Location
		weekStartDay  time.Weekday
		defaultGoalKg float64
		rules         []BadgeRule
		now           func() time.Time
	}
)

func NewEngine(loc *time.Location, weekStartDay time.Weekday, defaultGoalKg float64, rules []BadgeRule) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if defaultGoalKg <= 0 {
		defaultGoalKg = 2.0
	}
	return &Engine{
		loc:           loc,
		weekStartDay:  weekStartDay,
		defaultGoalKg: defaultGoalKg,
		rules:         rules,
		now:           time.Now,
	}
}

// ParseWeekday maps a configured day name to a weekday, defaulting to
// Monday.
func ParseWeekday(name string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

// WeekStart returns the start-of-week boundary (00:00 on the configured
// day) for the week containing t.
func (e *Engine) WeekStart(t time.Time) time.Time {
	t = t.In(e.loc)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.loc)
	offset := (int(day.Weekday()) - int(e.weekStartDay) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// DefaultGoalKg exposes the configured weekly goal default.
func (e *Engine) DefaultGoalKg() float64 {
	return e.defaultGoalKg
}

// Location exposes the configured reference timezone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// NewState builds the lazily-created row for a user's first event.
func (e *Engine) NewState(userID uuid.UUID, at time.Time) *entities.UserGamification {
	state := &entities.UserGamification{
		ID:            uuid.New(),
		UserID:        userID,
		WeeklyGoalKg:  e.defaultGoalKg,
		WeekStartDate: e.WeekStart(at),
	}
	_ = state.SetBadgeMap(map[string]entities.BadgeAward{})
	return state
}

// Apply folds one logged event into the state: rollover, streak,
// totals/progress, then the badge pass.
func (e *Engine) Apply(state *entities.UserGamification, delta Delta) Update {
	e.rollover(state, delta.OccurredAt)

	eventDate := e.dateOf(delta.OccurredAt)
	switch {
	case state.LastActiveDate != nil && e.dateOf(*state.LastActiveDate).Equal(eventDate):
		// Already active on this date; streak unchanged.
	case state.LastActiveDate != nil && e.dateOf(*state.LastActiveDate).AddDate(0, 0, 1).Equal(eventDate):
		state.CurrentStreak++
	default:
		state.CurrentStreak = 1
	}
	isNewRecord := state.CurrentStreak > state.LongestStreak
	if isNewRecord {
		state.LongestStreak = state.CurrentStreak
	}
	state.LastActiveDate = &eventDate

	state.WeeklyProgressKg = round4(state.WeeklyProgressKg + delta.WasteKg)
	state.TotalWasteKg = round4(state.TotalWasteKg + delta.WasteKg)
	state.TotalCostUsd = round2(state.TotalCostUsd + delta.CostUsd)
	state.TotalCo2Kg = round4(state.TotalCo2Kg + delta.Co2Kg)
	state.TotalEvents++
	if delta.Source == entities.SourceFridgeShare {
		state.TotalShareEvents++
	}

	return Update{
		Streak:            state.CurrentStreak,
		IsNewStreakRecord: isNewRecord,
		NewBadges:         e.evaluateBadges(state),
	}
}

// ApplyReversal subtracts an event's contribution. Totals clamp at zero
// and flag the row for audit; streak and badges are never walked back.
// Weekly progress is only debited when the event falls inside the
// current tracking window.
func (e *Engine) ApplyReversal(state *entities.UserGamification, delta Delta) Update {
	e.rollover(state, e.now())

	clamped := false
	sub := func(current, amount float64, round func(float64) float64) float64 {
		next := round(current - amount)
		if next < 0 {
			clamped = true
			return 0
		}
		return next
	}

	state.TotalWasteKg = sub(state.TotalWasteKg, delta.WasteKg, round4)
	state.TotalCostUsd = sub(state.TotalCostUsd, delta.CostUsd, round2)
	state.TotalCo2Kg = sub(state.TotalCo2Kg, delta.Co2Kg, round4)

	if !e.WeekStart(delta.OccurredAt).Before(state.WeekStartDate) {
		state.WeeklyProgressKg = sub(state.WeeklyProgressKg, delta.WasteKg, round4)
	}

	if state.TotalEvents > 0 {
		state.TotalEvents--
	} else {
		clamped = true
	}
	if delta.Source == entities.SourceFridgeShare {
		if state.TotalShareEvents > 0 {
			state.TotalShareEvents--
		} else {
			clamped = true
		}
	}

	if clamped {
		state.AuditFlagged = true
	}

	return Update{
		Streak:  state.CurrentStreak,
		Clamped: clamped,
	}
}

// rollover resets the weekly window when at falls into a later week.
// Skipped weeks are not recomputed retroactively.
func (e *Engine) rollover(state *entities.UserGamification, at time.Time) {
	weekStart := e.WeekStart(at)
	if weekStart.After(state.WeekStartDate) {
		state.WeekStartDate = weekStart
		state.WeeklyProgressKg = 0
	}
}

func (e *Engine) evaluateBadges(state *entities.UserGamification) []domain.NewBadge {
	badges := state.BadgeMap()
	var earned []domain.NewBadge

	for _, rule := range e.rules {
		value := rule.Metric(state)
		currentRank := -1
		if held, ok := badges[rule.Key]; ok {
			currentRank = TierRank(held.Tier)
		}

		bestTier := ""
		for _, tier := range rule.Tiers {
			if value >= tier.Threshold && TierRank(tier.Tier) > currentRank {
				bestTier = tier.Tier
			}
		}
		if bestTier == "" {
			continue
		}

		earnedAt := e.now().UTC()
		badges[rule.Key] = entities.BadgeAward{Tier: bestTier, EarnedAt: earnedAt}
		earned = append(earned, domain.NewBadge{
			Key:         rule.Key,
			Name:        rule.Name,
			Tier:        bestTier,
			Description: rule.Descriptions[bestTier],
			EarnedAt:    earnedAt,
		})
	}

	if len(earned) > 0 {
		_ = state.SetBadgeMap(badges)
	}
	return earned
}

// dateOf truncates a timestamp to midnight in the reference timezone.
func (e *Engine) dateOf(t time.Time) time.Time {
	t = t.In(e.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.loc)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
