package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepo struct {
	mock.Mock
	domain.OrderRepository
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepo) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]*domain.Order, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.Order), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockOrderRepo) GetByIdAndUserId(ctx context.Context, id, userId int) (*domain.Order, error) {
	args := m.Called(ctx, id, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
