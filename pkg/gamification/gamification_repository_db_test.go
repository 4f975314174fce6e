package gamification

import (
	"context"
	"testing"
	"time"

	"github.com/plateful/plateful-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetWeeklyGoalCreatesRow(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewGamificationRepository(tx)
	e := NewEngine(time.UTC, time.Monday, 2.0, DefaultBadgeRules)
	userID := uuid.New()

	seed := e.NewState(userID, time.Now())
	require.NoError(t, repo.SetWeeklyGoal(context.Background(), userID, seed, 4.5))

	state, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, state.WeeklyGoalKg)
	assert.Equal(t, 0.0, state.TotalWasteKg)
}

func TestSetWeeklyGoalPreservesCommittedTotals(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewGamificationRepository(tx)
	e := NewEngine(time.UTC, time.Monday, 2.0, DefaultBadgeRules)
	userID := uuid.New()

	// Simulate an event commit landing after the goal request read the
	// row: the goal write must not carry a stale snapshot over it.
	state, err := repo.GetForUpdate(context.Background(), tx, userID, e.NewState(userID, time.Now()))
	require.NoError(t, err)
	state.TotalWasteKg = 12.0
	state.TotalEvents = 4
	require.NoError(t, repo.Save(context.Background(), tx, state))

	require.NoError(t, repo.SetWeeklyGoal(context.Background(), userID, e.NewState(userID, time.Now()), 5.0))

	after, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, after.WeeklyGoalKg)
	assert.Equal(t, 12.0, after.TotalWasteKg)
	assert.Equal(t, 4, after.TotalEvents)
}
