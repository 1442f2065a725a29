package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
)

type customEventAggRepository struct {
	DB database.Database
}

func NewCustomEventAggRepository(db database.Database) *customEventAggRepository {
	return &customEventAggRepository{DB: db}
}

func (r *customEventAggRepository) GetCustomEventsAgg(ctx context.Context, f repository.CustomEventAggFilter) ([]entity.CustomEventAgg, error) {
	q := r.DB.WithContext(ctx).Model(&entity.CustomEventAgg{}).Where("project_id = ?", f.ProjectID)

	if !f.TimeRange.From.IsZero() {
		q = q.Where("time_bucket >= ?", f.TimeRange.From)
	}
	if !f.TimeRange.To.IsZero() {
		q = q.Where("time_bucket < ?", f.TimeRange.To)
	}
	if f.EventName != "" {
		q = q.Where("event_name = ?", f.EventName)
	}
	if f.Page != "" {
		q = q.Where("page = ?", f.Page)
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 1000
	}

	var rows []entity.CustomEventAgg
	err := q.Order("time_bucket DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
