/*
|------------------------------------------------------------------------------------
| REPOSITORY ARCHITECTURAL STANDARDS
|------------------------------------------------------------------------------------
| Command side: thin wrapper over
| BaseRepository, error mapping delegated to database.MapDBError, no
| business logic here. One generic implementation serves all five event
| kinds since "insert one typed row" is identical across them.
|------------------------------------------------------------------------------------
*/
package command

import (
	"context"
	database "voyago/core-api/internal/infrastructure/db"
	"voyago/core-api/internal/modules/rawstore/repository"
	baserepo "voyago/core-api/internal/pkg/repository"
)

type rawRepository[T any] struct {
	*baserepo.BaseRepository[T]
}

func newRawRepository[T any](db database.Database) repository.RawCommandRepository[T] {
	return &rawRepository[T]{
		BaseRepository: &baserepo.BaseRepository[T]{
			DB:          db,
			ErrorMapper: database.MapDBError,
		},
	}
}

func (r *rawRepository[T]) Insert(ctx context.Context, e *T) error {
	return r.Create(ctx, e)
}

// NewPageViewRepository, NewClickRepository, etc. are thin named
// constructors so dependency-injection sites read naturally — the teacher's
// pattern of one `New<Entity>Repository` per concrete repository type.
