package gamification

import (
	"context"

	"github.com/plateful/plateful-backend/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// GamificationRepository owns the user_gamification row. Methods
	// accepting a tx participate in the caller's transaction; nil falls
	// back to the base handle.
	GamificationRepository interface {
		GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserGamification, error)
		// GetForUpdate locks the user's row for the duration of tx,
		// creating it from seed when it does not exist yet. The row lock
		// is what serializes concurrent writes for a single user.
		GetForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, seed *entities.UserGamification) (*entities.UserGamification, error)
		Save(ctx context.Context, tx *gorm.DB, state *entities.UserGamification) error
		// SetWeeklyGoal writes only the goal column, creating the row
		// from seed when it does not exist yet. A full-row save here
		// could overwrite totals committed by a concurrent event.
		SetWeeklyGoal(ctx context.Context, userID uuid.UUID, seed *entities.UserGamification, goalKg float64) error
	}

	gamificationRepository struct {
		db *gorm.DB
	}
)

func NewGamificationRepository(db *gorm.DB) GamificationRepository {
	return &gamificationRepository{db: db}
}

func (r *gamificationRepository) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *gamificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserGamification, error) {
	var state entities.UserGamification
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *gamificationRepository) GetForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, seed *entities.UserGamification) (*entities.UserGamification, error) {
	db := r.handle(tx).WithContext(ctx)

	// Race-safe lazy create: losing inserters hit the unique index and
	// fall through to the locked select.
	if seed != nil {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(seed).Error; err != nil {
			return nil, err
		}
	}

	var state entities.UserGamification
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *gamificationRepository) Save(ctx context.Context, tx *gorm.DB, state *entities.UserGamification) error {
	return r.handle(tx).WithContext(ctx).Save(state).Error
}

func (r *gamificationRepository) SetWeeklyGoal(ctx context.Context, userID uuid.UUID, seed *entities.UserGamification, goalKg float64) error {
	db := r.db.WithContext(ctx)

	if seed != nil {
		seed.WeeklyGoalKg = goalKg
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(seed).Error; err != nil {
			return err
		}
	}

	return db.Model(&entities.UserGamification{}).
		Where("user_id = ?", userID).
		Update("weekly_goal_kg", goalKg).Error
}
