package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
)

type customEventRepository struct {
	DB database.Database
}

var _ repository.CustomEventQueryRepository = (*customEventRepository)(nil)

func NewCustomEventRepository(db database.Database) repository.CustomEventQueryRepository {
	return &customEventRepository{DB: db}
}

func (r *customEventRepository) Get(ctx context.Context, f repository.CustomEventFilter) ([]entity.CustomEvent, error) {
	q := r.DB.WithContext(ctx).Model(&entity.CustomEvent{})

	if f.TimeRange.Start > 0 {
		q = q.Where("timestamp >= ?", f.TimeRange.Start*1000)
	}
	if f.TimeRange.End > 0 {
		q = q.Where("timestamp <= ?", f.TimeRange.End*1000)
	}
	if f.NameFilter != "" {
		q = q.Where("name LIKE ?", "%"+f.NameFilter+"%")
	}
	if f.UserIDFilter != "" {
		q = q.Where("user_id LIKE ?", "%"+f.UserIDFilter+"%")
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 100
	}

	var rows []entity.CustomEvent
	err := q.Order("timestamp DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
