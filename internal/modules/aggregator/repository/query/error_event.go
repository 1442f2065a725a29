package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/aggregator/entity"
	"voyago/core-api/internal/modules/aggregator/repository"
)

type errorAggRepository struct {
	DB database.Database
}

func NewErrorAggRepository(db database.Database) *errorAggRepository {
	return &errorAggRepository{DB: db}
}

func (r *errorAggRepository) GetErrorsAgg(ctx context.Context, f repository.ErrorAggFilter) ([]entity.ErrorAgg, error) {
	q := r.DB.WithContext(ctx).Model(&entity.ErrorAgg{}).Where("project_id = ?", f.ProjectID)

	if !f.TimeRange.From.IsZero() {
		q = q.Where("time_bucket >= ?", f.TimeRange.From)
	}
	if !f.TimeRange.To.IsZero() {
		q = q.Where("time_bucket < ?", f.TimeRange.To)
	}
	if f.Page != "" {
		q = q.Where("page = ?", f.Page)
	}
	if f.ErrorType != "" {
		q = q.Where("error_type = ?", f.ErrorType)
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 1000
	}

	var rows []entity.ErrorAgg
	err := q.Order("time_bucket DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
