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

type clickAggRepository struct {
	db        database.Database
	recompute bool
}

func NewClickAggRepository(db database.Database, recompute bool) repository.CommandRepository[entity.ClickAgg] {
	return &clickAggRepository{db: db, recompute: recompute}
}

func (r *clickAggRepository) Upsert(ctx context.Context, rows []entity.ClickAgg) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uid.NewUUID()
		}
	}

	clicksCountAssignment := gorm.Expr("agg_clicks.clicks_count + excluded.clicks_count")
	if r.recompute {
		clicksCountAssignment = gorm.Expr("excluded.clicks_count")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "time_bucket"}, {Name: "project_id"}, {Name: "page"}, {Name: "element_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"clicks_count":    clicksCountAssignment,
			"unique_users":    gorm.Expr("excluded.unique_users"),
			"unique_sessions": gorm.Expr("excluded.unique_sessions"),
		}),
	}).Create(&rows).Error

	return database.MapDBError(err)
}
