package repository

import (
	"context"
	"time"

	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/monitor/entity"
)

type uptimeRepository struct {
	db database.Database
}

func NewUptimeRepository(db database.Database) UptimeRepository {
	return &uptimeRepository{db: db}
}

func (r *uptimeRepository) Stat(ctx context.Context, serviceName string, since time.Time) (PeriodStat, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Log{}).
		Where("service_name = ? AND timestamp >= ?", serviceName, since).
		Count(&total).Error; err != nil {
		return PeriodStat{}, database.MapDBError(err)
	}

	var ok int64
	if err := r.db.WithContext(ctx).Model(&entity.Log{}).
		Where("service_name = ? AND log_message = ? AND timestamp >= ?", serviceName, string(entity.ResultOK), since).
		Count(&ok).Error; err != nil {
		return PeriodStat{}, database.MapDBError(err)
	}

	return PeriodStat{OK: ok, Total: total}, nil
}
