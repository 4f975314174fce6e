package gamification

import (
	"testing"
	"time"

	"github.com/plateful/plateful-backend/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(time.UTC, time.Monday, 2.0, DefaultBadgeRules)
	e.now = func() time.Time {
		return time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func newTestState(t *testing.T, e *Engine, at time.Time) *entities.UserGamification {
	t.Helper()
	state := e.NewState(uuid.New(), at)
	require.NotNil(t, state)
	return state
}

func TestWeekStart(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday snaps to monday",
			in:   time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday is its own week start",
			in:   time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to previous monday",
			in:   time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.WeekStart(tt.in))
		})
	}
}

func TestWeekStartSundayConfig(t *testing.T) {
	e := NewEngine(time.UTC, time.Sunday, 2.0, nil)

	got := e.WeekStart(time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseWeekday(t *testing.T) {
	assert.Equal(t, time.Sunday, ParseWeekday("Sunday"))
	assert.Equal(t, time.Friday, ParseWeekday(" friday "))
	assert.Equal(t, time.Monday, ParseWeekday(""))
	assert.Equal(t, time.Monday, ParseWeekday("someday"))
}

func TestApplyFirstEvent(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)

	update := e.Apply(state, Delta{WasteKg: 0.5, CostUsd: 2.0, Co2Kg: 1.0, Source: entities.SourceRecipe, OccurredAt: at})

	assert.Equal(t, 1, update.Streak)
	assert.True(t, update.IsNewStreakRecord)
	assert.Equal(t, 0.5, state.TotalWasteKg)
	assert.Equal(t, 2.0, state.TotalCostUsd)
	assert.Equal(t, 1.0, state.TotalCo2Kg)
	assert.Equal(t, 0.5, state.WeeklyProgressKg)
	assert.Equal(t, 1, state.TotalEvents)
	require.NotNil(t, state.LastActiveDate)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), *state.LastActiveDate)
}

func TestApplyStreakTransitions(t *testing.T) {
	e := testEngine(t)
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	state := newTestState(t, e, day1)

	t.Run("consecutive days increment", func(t *testing.T) {
		e.Apply(state, Delta{WasteKg: 0.1, OccurredAt: day1})
		update := e.Apply(state, Delta{WasteKg: 0.1, OccurredAt: day1.AddDate(0, 0, 1)})
		assert.Equal(t, 2, update.Streak)
	})

	t.Run("same day does not increment", func(t *testing.T) {
		update := e.Apply(state, Delta{WasteKg: 0.1, OccurredAt: day1.AddDate(0, 0, 1).Add(5 * time.Hour)})
		assert.Equal(t, 2, update.Streak)
		assert.False(t, update.IsNewStreakRecord)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		update := e.Apply(state, Delta{WasteKg: 0.1, OccurredAt: day1.AddDate(0, 0, 5)})
		assert.Equal(t, 1, update.Streak)
		assert.False(t, update.IsNewStreakRecord)
	})

	t.Run("longest streak survives the reset", func(t *testing.T) {
		assert.Equal(t, 2, state.LongestStreak)
	})
}

func TestApplyWeekRollover(t *testing.T) {
	e := testEngine(t)
	week1 := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, week1)

	e.Apply(state, Delta{WasteKg: 1.5, OccurredAt: week1})
	assert.Equal(t, 1.5, state.WeeklyProgressKg)

	week2 := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	e.Apply(state, Delta{WasteKg: 0.3, OccurredAt: week2})

	assert.Equal(t, 0.3, state.WeeklyProgressKg)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), state.WeekStartDate)
	assert.Equal(t, 1.8, state.TotalWasteKg)
}

func TestApplyOutOfOrderEventKeepsWindow(t *testing.T) {
	e := testEngine(t)
	current := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, current)
	e.Apply(state, Delta{WasteKg: 0.5, OccurredAt: current})

	// a late event from last week must not rewind the window
	stale := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	e.Apply(state, Delta{WasteKg: 0.2, OccurredAt: stale})

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), state.WeekStartDate)
	assert.Equal(t, 0.7, state.WeeklyProgressKg)
}

func TestApplyAwardsBadges(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)

	update := e.Apply(state, Delta{WasteKg: 6.0, CostUsd: 10.0, Co2Kg: 12.0, OccurredAt: at})

	keys := map[string]string{}
	for _, b := range update.NewBadges {
		keys[b.Key] = b.Tier
	}
	assert.Equal(t, entities.TierBronze, keys[BadgeWasteSaver])
	assert.Equal(t, entities.TierBronze, keys[BadgeCarbonHero])
	assert.NotContains(t, keys, BadgeMoneySaver)

	badges := state.BadgeMap()
	assert.Equal(t, entities.TierBronze, badges[BadgeWasteSaver].Tier)
}

func TestApplySkipsToHighestTier(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)

	update := e.Apply(state, Delta{WasteKg: 120.0, OccurredAt: at})

	var wasteTier string
	for _, b := range update.NewBadges {
		if b.Key == BadgeWasteSaver {
			wasteTier = b.Tier
		}
	}
	// one big event lands on gold directly, no intermediate awards
	assert.Equal(t, entities.TierGold, wasteTier)
}

func TestApplyBadgeNotReawarded(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)

	first := e.Apply(state, Delta{WasteKg: 6.0, OccurredAt: at})
	second := e.Apply(state, Delta{WasteKg: 1.0, OccurredAt: at.Add(time.Hour)})

	assert.NotEmpty(t, first.NewBadges)
	for _, b := range second.NewBadges {
		assert.NotEqual(t, BadgeWasteSaver, b.Key)
	}
}

func TestApplyCommunityBadgeCountsShares(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)

	var last Update
	for i := 0; i < 3; i++ {
		last = e.Apply(state, Delta{WasteKg: 0.1, Source: entities.SourceFridgeShare, OccurredAt: at.Add(time.Duration(i) * time.Minute)})
	}

	assert.Equal(t, 3, state.TotalShareEvents)
	var found bool
	for _, b := range last.NewBadges {
		if b.Key == BadgeCommunityHero {
			found = true
			assert.Equal(t, entities.TierBronze, b.Tier)
		}
	}
	assert.True(t, found)
}

func TestApplyReversal(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)
	e.Apply(state, Delta{WasteKg: 0.5, CostUsd: 2.0, Co2Kg: 1.0, OccurredAt: at})
	e.Apply(state, Delta{WasteKg: 0.3, CostUsd: 1.0, Co2Kg: 0.5, OccurredAt: at.Add(time.Hour)})

	update := e.ApplyReversal(state, Delta{WasteKg: 0.5, CostUsd: 2.0, Co2Kg: 1.0, OccurredAt: at})

	assert.False(t, update.Clamped)
	assert.False(t, state.AuditFlagged)
	assert.Equal(t, 0.3, state.TotalWasteKg)
	assert.Equal(t, 1.0, state.TotalCostUsd)
	assert.Equal(t, 0.5, state.TotalCo2Kg)
	assert.Equal(t, 0.3, state.WeeklyProgressKg)
	assert.Equal(t, 1, state.TotalEvents)
}

func TestApplyReversalKeepsStreakAndBadges(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)
	e.Apply(state, Delta{WasteKg: 6.0, OccurredAt: at})

	e.ApplyReversal(state, Delta{WasteKg: 6.0, OccurredAt: at})

	assert.Equal(t, 1, state.CurrentStreak)
	badges := state.BadgeMap()
	assert.Equal(t, entities.TierBronze, badges[BadgeWasteSaver].Tier)
}

func TestApplyReversalClampsAndFlags(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)
	e.Apply(state, Delta{WasteKg: 0.2, CostUsd: 1.0, Co2Kg: 0.3, OccurredAt: at})

	update := e.ApplyReversal(state, Delta{WasteKg: 5.0, CostUsd: 10.0, Co2Kg: 9.0, OccurredAt: at})

	assert.True(t, update.Clamped)
	assert.True(t, state.AuditFlagged)
	assert.Equal(t, 0.0, state.TotalWasteKg)
	assert.Equal(t, 0.0, state.TotalCostUsd)
	assert.Equal(t, 0.0, state.TotalCo2Kg)
}

func TestApplyReversalFlagsShareCountUnderflow(t *testing.T) {
	e := testEngine(t)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, at)
	e.Apply(state, Delta{WasteKg: 0.4, Source: entities.SourceManual, OccurredAt: at})

	update := e.ApplyReversal(state, Delta{WasteKg: 0.4, Source: entities.SourceFridgeShare, OccurredAt: at})

	assert.True(t, update.Clamped)
	assert.True(t, state.AuditFlagged)
	assert.Equal(t, 0, state.TotalShareEvents)
	assert.Equal(t, 0.0, state.TotalWasteKg)
}

func TestApplyReversalStaleWeekSkipsWeeklyDebit(t *testing.T) {
	e := testEngine(t)
	lastWeek := time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)
	state := newTestState(t, e, lastWeek)
	e.Apply(state, Delta{WasteKg: 1.0, OccurredAt: lastWeek})

	// the clock has moved into a new week; the reversal rolls the window
	// over and must not debit the fresh weekly progress
	e.ApplyReversal(state, Delta{WasteKg: 1.0, OccurredAt: lastWeek})

	assert.Equal(t, 0.0, state.WeeklyProgressKg)
	assert.Equal(t, 0.0, state.TotalWasteKg)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), state.WeekStartDate)
}

func TestNewState(t *testing.T) {
	e := testEngine(t)
	userID := uuid.New()
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	state := e.NewState(userID, at)

	assert.Equal(t, userID, state.UserID)
	assert.Equal(t, 2.0, state.WeeklyGoalKg)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), state.WeekStartDate)
	assert.Empty(t, state.BadgeMap())
	assert.Equal(t, 0, state.CurrentStreak)
}
