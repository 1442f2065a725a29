/*
|------------------------------------------------------------------------------------
| REPOSITORY ARCHITECTURAL STANDARDS — UPSERT
|------------------------------------------------------------------------------------
| Implements spec §4.G's documented upsert policy verbatim: counts
| accumulate (existing + new), uniques replace with the freshly computed
| value. RecomputeMode swaps the accumulate expression for a flat replace,
| matching the "free to offer a recompute mode" allowance.
|------------------------------------------------------------------------------------
*/
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

type pageViewAggRepository struct {
	db        database.Database
	recompute bool
}

func NewPageViewAggRepository(db database.Database, recompute bool) repository.CommandRepository[entity.PageViewAgg] {
	return &pageViewAggRepository{db: db, recompute: recompute}
}

func (r *pageViewAggRepository) Upsert(ctx context.Context, rows []entity.PageViewAgg) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uid.NewUUID()
		}
	}

	viewsCountAssignment := gorm.Expr("agg_page_views.views_count + excluded.views_count")
	if r.recompute {
		viewsCountAssignment = gorm.Expr("excluded.views_count")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "time_bucket"}, {Name: "project_id"}, {Name: "page"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"views_count":     viewsCountAssignment,
			"unique_users":    gorm.Expr("excluded.unique_users"),
			"unique_sessions": gorm.Expr("excluded.unique_sessions"),
		}),
	}).Create(&rows).Error

	return database.MapDBError(err)
}
