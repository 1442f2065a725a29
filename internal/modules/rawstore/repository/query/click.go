package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
)

type clickRepository struct {
	DB database.Database
}

var _ repository.ClickQueryRepository = (*clickRepository)(nil)

func NewClickRepository(db database.Database) repository.ClickQueryRepository {
	return &clickRepository{DB: db}
}

func (r *clickRepository) Get(ctx context.Context, f repository.ClickFilter) ([]entity.Click, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Click{})

	if f.TimeRange.Start > 0 {
		q = q.Where("timestamp >= ?", f.TimeRange.Start*1000)
	}
	if f.TimeRange.End > 0 {
		q = q.Where("timestamp <= ?", f.TimeRange.End*1000)
	}
	if f.PageFilter != "" {
		q = q.Where("page LIKE ?", "%"+f.PageFilter+"%")
	}
	if f.ElementIDFilter != "" {
		q = q.Where("element_id LIKE ?", "%"+f.ElementIDFilter+"%")
	}
	if f.UserIDFilter != "" {
		q = q.Where("user_id LIKE ?", "%"+f.UserIDFilter+"%")
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 100
	}

	var rows []entity.Click
	err := q.Order("timestamp DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
