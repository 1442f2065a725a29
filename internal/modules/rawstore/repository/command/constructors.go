package command

import (
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
)

func NewPageViewRepository(db database.Database) repository.RawCommandRepository[entity.PageView] {
	return newRawRepository[entity.PageView](db)
}

func NewClickRepository(db database.Database) repository.RawCommandRepository[entity.Click] {
	return newRawRepository[entity.Click](db)
}

func NewPerformanceRepository(db database.Database) repository.RawCommandRepository[entity.Performance] {
	return newRawRepository[entity.Performance](db)
}

func NewErrorEventRepository(db database.Database) repository.RawCommandRepository[entity.ErrorEvent] {
	return newRawRepository[entity.ErrorEvent](db)
}

func NewCustomEventRepository(db database.Database) repository.RawCommandRepository[entity.CustomEvent] {
	return newRawRepository[entity.CustomEvent](db)
}
