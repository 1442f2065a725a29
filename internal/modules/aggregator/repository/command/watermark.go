package command

import (
	"context"
	"time"

	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const watermarkRowID = 1

type watermarkRepository struct {
	db database.Database
}

func NewWatermarkRepository(db database.Database) repository.WatermarkRepository {
	return &watermarkRepository{db: db}
}

// Get returns the last aggregated timestamp, initializing the single
// watermark row to the Unix epoch the first time it's read.
func (r *watermarkRepository) Get(ctx context.Context) (time.Time, error) {
	var wm entity.Watermark
	err := r.db.WithContext(ctx).Where("id = ?", watermarkRowID).First(&wm).Error
	if err == gorm.ErrRecordNotFound {
		epoch := time.Unix(0, 0).UTC()
		wm = entity.Watermark{ID: watermarkRowID, LastAggregatedAt: epoch}
		if err := r.db.WithContext(ctx).Create(&wm).Error; err != nil {
			return time.Time{}, database.MapDBError(err)
		}
		return epoch, nil
	}
	if err != nil {
		return time.Time{}, database.MapDBError(err)
	}
	return wm.LastAggregatedAt, nil
}

// Advance moves the watermark forward to `to`. Callers must only invoke
// this after every kind in the tick has been upserted successfully —
// advancing on partial failure would silently drop events.
func (r *watermarkRepository) Advance(ctx context.Context, to time.Time) error {
	wm := entity.Watermark{ID: watermarkRowID, LastAggregatedAt: to}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_aggregated_at": to,
		}),
	}).Create(&wm).Error
	return database.MapDBError(err)
}
