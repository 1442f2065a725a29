package repository

import (
	"context"

	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/monitor/entity"
	"voyago/core-api/internal/pkg/uid"
)

type logRepository struct {
	db database.Database
}

func NewLogRepository(db database.Database) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Append(ctx context.Context, log entity.Log) error {
	if log.ID == "" {
		log.ID = uid.NewUUID()
	}
	return database.MapDBError(r.db.WithContext(ctx).Create(&log).Error)
}
