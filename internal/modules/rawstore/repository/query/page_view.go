/*
|------------------------------------------------------------------------------------
| REPOSITORY ARCHITECTURAL STANDARDS — READ SIDE
|------------------------------------------------------------------------------------
| CQRS read side: context-aware, errors mapped through
| database.MapDBError, "not found" is an empty slice rather than a
| sentinel error.
|------------------------------------------------------------------------------------
*/
package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
)

type pageViewRepository struct {
	DB database.Database
}

var _ repository.PageViewQueryRepository = (*pageViewRepository)(nil)

func NewPageViewRepository(db database.Database) repository.PageViewQueryRepository {
	return &pageViewRepository{DB: db}
}

func (r *pageViewRepository) Get(ctx context.Context, f repository.PageViewFilter) ([]entity.PageView, error) {
	q := r.DB.WithContext(ctx).Model(&entity.PageView{})

	if f.TimeRange.Start > 0 {
		q = q.Where("timestamp >= ?", f.TimeRange.Start*1000)
	}
	if f.TimeRange.End > 0 {
		q = q.Where("timestamp <= ?", f.TimeRange.End*1000)
	}
	if f.PageFilter != "" {
		q = q.Where("page LIKE ?", "%"+f.PageFilter+"%")
	}
	if f.UserIDFilter != "" {
		q = q.Where("user_id LIKE ?", "%"+f.UserIDFilter+"%")
	}

	limit := f.Pagination.Limit
	if limit <= 0 {
		limit = 100
	}

	var rows []entity.PageView
	err := q.Order("timestamp DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
