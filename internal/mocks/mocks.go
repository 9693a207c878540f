package mocks

import (
	"context"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/infra"
	"storefront-api/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

type MockProductClient struct {
	mock.Mock
}

type MockUserClient struct {
	mock.Mock
}

type MockLookupClient struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockProductClient) GetProductById(ctx context.Context, productId uint64) (*infra.ProductInfo, error) {
	args := m.Called(ctx, productId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.ProductInfo), args.Error(1)
}

func (m *MockUserClient) GetUserById(ctx context.Context, userId uint64) (*infra.UserInfo, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.UserInfo), args.Error(1)
}

func (m *MockLookupClient) DeliveryLocations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLookupClient) DeliveryTimes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uint64, status domain.OrderStatus, page, limit int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, userID, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindUpcoming(ctx context.Context, userID uint64, today time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindPast(ctx context.Context, userID uint64, today time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.Order, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) StatusCounts(ctx context.Context, f repository.ListFilter) (map[domain.OrderStatus]int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.OrderStatus]int64), args.Error(1)
}

func (m *MockOrderRepository) SumTotal(ctx context.Context, f repository.ListFilter) (float64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(float64), args.Error(1)
}
