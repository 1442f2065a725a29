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

type errorAggRepository struct {
	db        database.Database
	recompute bool
}

func NewErrorAggRepository(db database.Database, recompute bool) repository.CommandRepository[entity.ErrorAgg] {
	return &errorAggRepository{db: db, recompute: recompute}
}

func (r *errorAggRepository) Upsert(ctx context.Context, rows []entity.ErrorAgg) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uid.NewUUID()
		}
	}

	errorsCount := gorm.Expr("agg_errors.errors_count + excluded.errors_count")
	warningCount := gorm.Expr("agg_errors.warning_count + excluded.warning_count")
	criticalCount := gorm.Expr("agg_errors.critical_count + excluded.critical_count")
	if r.recompute {
		errorsCount = gorm.Expr("excluded.errors_count")
		warningCount = gorm.Expr("excluded.warning_count")
		criticalCount = gorm.Expr("excluded.critical_count")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "time_bucket"}, {Name: "project_id"}, {Name: "page"}, {Name: "error_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"errors_count":   errorsCount,
			"warning_count":  warningCount,
			"critical_count": criticalCount,
			"unique_users":   gorm.Expr("excluded.unique_users"),
		}),
	}).Create(&rows).Error

	return database.MapDBError(err)
}
