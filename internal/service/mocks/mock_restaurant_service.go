package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restaurantform/internal/model"
	"restaurantform/internal/state"
)

type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) Append(ctx context.Context, d model.RestaurantDraft) model.RestaurantList {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(model.RestaurantList)
}

func (m *MockRestaurantService) List(ctx context.Context) model.RestaurantList {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(model.RestaurantList)
}

func (m *MockRestaurantService) Subscribe(fn func(model.RestaurantList)) state.Unsubscribe {
	args := m.Called(fn)
	if args.Get(0) == nil {
		return func() {}
	}
	return args.Get(0).(state.Unsubscribe)
}
