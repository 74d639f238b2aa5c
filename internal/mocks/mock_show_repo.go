package mocks

import (
	"context"

	"github.com/metinatakli/cinex-admin/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockShowRepo struct {
	mock.Mock
	domain.ShowRepository
}

func (m *MockShowRepo) GetAllByTheatre(ctx context.Context, theatreID int) ([]domain.Show, error) {
	args := m.Called(ctx, theatreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Show), args.Error(1)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
