package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
)

type clickAggRepository struct {
	DB database.Database
}

func NewClickAggRepository(db database.Database) *clickAggRepository {
	return &clickAggRepository{DB: db}
}

func (r *clickAggRepository) GetClicksAgg(ctx context.Context, f repository.ClickAggFilter) ([]entity.ClickAgg, error) {
	q := r.DB.WithContext(ctx).Model(&entity.ClickAgg{}).Where("project_id = ?", f.ProjectID)

	if !f.TimeRange.From.IsZero() {
		q = q.Where("time_bucket >= ?", f.TimeRange.From)
	}
	if !f.TimeRange.To.IsZero() {
		q = q.Where("time_bucket < ?", f.TimeRange.To)
	}
	if f.Page != "" {
		q = q.Where("page = ?", f.Page)
	}
	if f.ElementID != "" {
		q = q.Where("element_id = ?", f.ElementID)
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 1000
	}

	var rows []entity.ClickAgg
	err := q.Order("time_bucket DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
