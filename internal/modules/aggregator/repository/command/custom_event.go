package command

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
	"voyago/core-api/internal/pkg/uid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type customEventAggRepository struct {
	db        database.Database
	recompute bool
}

func NewCustomEventAggRepository(db database.Database, recompute bool) repository.CommandRepository[entity.CustomEventAgg] {
	return &customEventAggRepository{db: db, recompute: recompute}
}

func (r *customEventAggRepository) Upsert(ctx context.Context, rows []entity.CustomEventAgg) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uid.NewUUID()
		}
	}

	eventsCount := gorm.Expr("agg_custom_events.events_count + excluded.events_count")
	if r.recompute {
		eventsCount = gorm.Expr("excluded.events_count")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "time_bucket"}, {Name: "project_id"}, {Name: "event_name"}, {Name: "page"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"events_count":    eventsCount,
			"unique_users":    gorm.Expr("excluded.unique_users"),
			"unique_sessions": gorm.Expr("excluded.unique_sessions"),
		}),
	}).Create(&rows).Error

	return database.MapDBError(err)
}
