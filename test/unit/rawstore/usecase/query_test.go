package usecase_test

import (
	"context"
	"testing"

	"voyago/core-api/internal/modules/events/entity"
	"voyago/core-api/internal/modules/rawstore/repository"
	"voyago/core-api/internal/modules/rawstore/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPageViewQueryRepository struct{ mock.Mock }

func (m *MockPageViewQueryRepository) Get(ctx context.Context, f repository.PageViewFilter) ([]entity.PageView, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]entity.PageView), args.Error(1)
}

func TestGetPageViews_TotalCountEqualsLenOfItems(t *testing.T) {
	repo := new(MockPageViewQueryRepository)
	rows := []entity.PageView{{Page: "/a"}, {Page: "/b"}, {Page: "/c"}}
	repo.On("Get", mock.Anything, mock.Anything).Return(rows, nil)

	uc := usecase.NewRawQueryUseCase(usecase.QueryRepositories{PageView: repo})
	items, total, err := uc.GetPageViews(context.Background(), repository.PageViewFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 3)
}

func TestGetPageViews_EmptyResultYieldsZeroTotal(t *testing.T) {
	repo := new(MockPageViewQueryRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return([]entity.PageView{}, nil)

	uc := usecase.NewRawQueryUseCase(usecase.QueryRepositories{PageView: repo})
	items, total, err := uc.GetPageViews(context.Background(), repository.PageViewFilter{Pagination: repository.Pagination{Offset: 100}})

	assert.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
}

func TestGetPageViews_PropagatesRepositoryError(t *testing.T) {
	repo := new(MockPageViewQueryRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return([]entity.PageView(nil), assert.AnError)

	uc := usecase.NewRawQueryUseCase(usecase.QueryRepositories{PageView: repo})
	_, total, err := uc.GetPageViews(context.Background(), repository.PageViewFilter{})

	assert.Error(t, err)
	assert.Equal(t, 0, total)
}

// Boundary property (spec §8): an empty PageFilter is passed through
// unchanged rather than rewritten to some "match nothing" sentinel — it is
// the repository's job to treat "" as "no page constraint, return all rows
// for the project".
func TestGetPageViews_EmptyPageFilterIsPassedThroughUnmodified(t *testing.T) {
	repo := new(MockPageViewQueryRepository)
	all := []entity.PageView{{Page: "/a"}, {Page: "/b"}}
	repo.On("Get", mock.Anything, mock.MatchedBy(func(f repository.PageViewFilter) bool {
		return f.PageFilter == ""
	})).Return(all, nil)

	uc := usecase.NewRawQueryUseCase(usecase.QueryRepositories{PageView: repo})
	items, total, err := uc.GetPageViews(context.Background(), repository.PageViewFilter{PageFilter: ""})

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)
}

// Boundary property (spec §8): requesting an offset equal to the row count
// yields an empty page, not an error.
func TestGetPageViews_OffsetAtRowCountReturnsEmptyPage(t *testing.T) {
	repo := new(MockPageViewQueryRepository)
	repo.On("Get", mock.Anything, mock.MatchedBy(func(f repository.PageViewFilter) bool {
		return f.Pagination.Offset == 3
	})).Return([]entity.PageView{}, nil)

	uc := usecase.NewRawQueryUseCase(usecase.QueryRepositories{PageView: repo})
	items, total, err := uc.GetPageViews(context.Background(), repository.PageViewFilter{
		Pagination: repository.Pagination{Offset: 3, Limit: 20},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
}
