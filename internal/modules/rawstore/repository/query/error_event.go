package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
)

type errorEventRepository struct {
	DB database.Database
}

var _ repository.ErrorQueryRepository = (*errorEventRepository)(nil)

func NewErrorEventRepository(db database.Database) repository.ErrorQueryRepository {
	return &errorEventRepository{DB: db}
}

func (r *errorEventRepository) Get(ctx context.Context, f repository.ErrorFilter) ([]entity.ErrorEvent, error) {
	q := r.DB.WithContext(ctx).Model(&entity.ErrorEvent{})

	if f.TimeRange.Start > 0 {
		q = q.Where("timestamp >= ?", f.TimeRange.Start*1000)
	}
	if f.TimeRange.End > 0 {
		q = q.Where("timestamp <= ?", f.TimeRange.End*1000)
	}
	if f.PageFilter != "" {
		q = q.Where("page LIKE ?", "%"+f.PageFilter+"%")
	}
	if f.ErrorTypeFilter != "" {
		q = q.Where("error_type LIKE ?", "%"+f.ErrorTypeFilter+"%")
	}
	if f.SeverityFilter > 0 {
		q = q.Where("severity >= ?", f.SeverityFilter)
	}
	if f.UserIDFilter != "" {
		q = q.Where("user_id LIKE ?", "%"+f.UserIDFilter+"%")
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 100
	}

	var rows []entity.ErrorEvent
	err := q.Order("timestamp DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
