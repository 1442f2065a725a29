package query

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
)

type performanceRepository struct {
	DB database.Database
}

var _ repository.PerformanceQueryRepository = (*performanceRepository)(nil)

func NewPerformanceRepository(db database.Database) repository.PerformanceQueryRepository {
	return &performanceRepository{DB: db}
}

func (r *performanceRepository) Get(ctx context.Context, f repository.PerformanceFilter) ([]entity.Performance, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Performance{})

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

	var rows []entity.Performance
	err := q.Order("timestamp DESC").
		Limit(limit).
		Offset(f.Pagination.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, database.MapDBError(err)
	}
	return rows, nil
}
