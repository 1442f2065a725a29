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

type performanceAggRepository struct {
	db        database.Database
	recompute bool
}

func NewPerformanceAggRepository(db database.Database, recompute bool) repository.CommandRepository[entity.PerformanceAgg] {
	return &performanceAggRepository{db: db, recompute: recompute}
}

// Upsert accumulates samples_count (it is a plain count, same as every
// sibling kind's count column) and replaces every avg/p95 column, which
// are recomputed from the latest batch each tick rather than accumulated.
func (r *performanceAggRepository) Upsert(ctx context.Context, rows []entity.PerformanceAgg) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uid.NewUUID()
		}
	}

	samplesCountAssignment := gorm.Expr("agg_performance.samples_count + excluded.samples_count")
	if r.recompute {
		samplesCountAssignment = gorm.Expr("excluded.samples_count")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "time_bucket"}, {Name: "project_id"}, {Name: "page"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"samples_count":           samplesCountAssignment,
			"avg_ttfb_ms":             gorm.Expr("excluded.avg_ttfb_ms"),
			"p95_ttfb_ms":             gorm.Expr("excluded.p95_ttfb_ms"),
			"avg_fcp_ms":              gorm.Expr("excluded.avg_fcp_ms"),
			"p95_fcp_ms":              gorm.Expr("excluded.p95_fcp_ms"),
			"avg_lcp_ms":              gorm.Expr("excluded.avg_lcp_ms"),
			"p95_lcp_ms":              gorm.Expr("excluded.p95_lcp_ms"),
			"avg_total_page_load_ms": gorm.Expr("excluded.avg_total_page_load_ms"),
			"p95_total_page_load_ms": gorm.Expr("excluded.p95_total_page_load_ms"),
		}),
	}).Create(&rows).Error

	return database.MapDBError(err)
}
