package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
)

type pageViewAggRepository struct {
	DB database.Database
}

func NewPageViewAggRepository(db database.Database) *pageViewAggRepository {
	return &pageViewAggRepository{DB: db}
}

func (r *pageViewAggRepository) GetPageViewsAgg(ctx context.Context, f repository.PageViewAggFilter) ([]entity.PageViewAgg, error) {
	q := r.DB.WithContext(ctx).Model(&entity.PageViewAgg{}).Where("project_id = ?", f.ProjectID)

	if !f.TimeRange.From.IsZero() {
		q = q.Where("time_bucket >= ?", f.TimeRange.From)
	}
	if !f.TimeRange.To.IsZero() {
		q = q.Where("time_bucket < ?", f.TimeRange.To)
	}
	if f.Page != "" {
		q = q.Where("page = ?", f.Page)
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 1000
	}

	var rows []entity.PageViewAgg
	err := q.Order("time_bucket DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
