package mocks

import (
	"context"

	"github.com/metinatakli/cinex-admin/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error)
	calls      int
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	m.calls++
	return m.GetAllFunc(ctx, filters)
}

// Calls reports how many times GetAll was invoked.
func (m *MockMovieRepo) Calls() int {
	return m.calls
}
