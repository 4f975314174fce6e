package impact

import (
	"context"
	"time"

	"github.com/plateful/plateful-backend/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// WindowTotals is the aggregate of active events in a time window.
	WindowTotals struct {
		WasteKg    float64
		CostUsd    float64
		Co2Kg      float64
		EventCount int64
	}

	// ImpactRepository persists impact events. Write methods take an
	// optional tx so the event insert and the gamification update share
	// one atomic unit; nil falls back to the base handle.
	ImpactRepository interface {
		// CreateEvent inserts the event unless its (user_id,
		// idempotency_key) pair already exists. Returns false without
		// error on the duplicate path.
		CreateEvent(ctx context.Context, tx *gorm.DB, event *entities.ImpactEvent) (bool, error)
		GetByIdempotencyKey(ctx context.Context, tx *gorm.DB, userID uuid.UUID, key string) (*entities.ImpactEvent, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.ImpactEvent, error)
		// GetByIDForUpdate locks the event row within tx.
		GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*entities.ImpactEvent, error)
		UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
		SumWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) (WindowTotals, error)
		ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.ImpactEvent, int64, error)
		ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ImpactEvent, error)
	}

	impactRepository struct {
		db *gorm.DB
	}
)

func NewImpactRepository(db *gorm.DB) ImpactRepository {
	return &impactRepository{db: db}
}

func (r *impactRepository) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *impactRepository) CreateEvent(ctx context.Context, tx *gorm.DB, event *entities.ImpactEvent) (bool, error) {
	result := r.handle(tx).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "idempotency_key"}},
		DoNothing: true,
	}).Create(event)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *impactRepository) GetByIdempotencyKey(ctx context.Context, tx *gorm.DB, userID uuid.UUID, key string) (*entities.ImpactEvent, error) {
	var event entities.ImpactEvent
	if err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *impactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ImpactEvent, error) {
	var event entities.ImpactEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *impactRepository) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*entities.ImpactEvent, error) {
	var event entities.ImpactEvent
	if err := r.handle(tx).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *impactRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	return r.handle(tx).WithContext(ctx).Model(&entities.ImpactEvent{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *impactRepository) SumWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) (WindowTotals, error) {
	var totals WindowTotals
	err := r.db.WithContext(ctx).Model(&entities.ImpactEvent{}).
		Select("COALESCE(SUM(total_waste_kg), 0) as waste_kg, COALESCE(SUM(total_cost_usd), 0) as cost_usd, COALESCE(SUM(total_co2_kg), 0) as co2_kg, COUNT(*) as event_count").
		Where("user_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			userID, entities.EventStatusActive, start, end).
		Scan(&totals).Error
	if err != nil {
		return WindowTotals{}, err
	}
	return totals, nil
}

func (r *impactRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.ImpactEvent, int64, error) {
	var events []*entities.ImpactEvent
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.ImpactEvent{}).
		Where("user_id = ? AND status <> ?", userID, entities.EventStatusDeleted)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, count, nil
}

func (r *impactRepository) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ImpactEvent, error) {
	var events []*entities.ImpactEvent
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
