package repository

import (
	"context"
	"time"

	"storefront-api/internal/domain"
)

// ListFilter is the admin listing predicate. Statistics reuse the same
// filter so counts and revenue always agree with the visible listing.
type ListFilter struct {
	Status domain.OrderStatus // zero value matches any status
	Search string             // case-insensitive substring on product/customer fields
	Page   int
	Limit  int
}

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByUser(ctx context.Context, userID uint64, status domain.OrderStatus, page, limit int) ([]domain.Order, int64, error)
	FindUpcoming(ctx context.Context, userID uint64, today time.Time) ([]domain.Order, error)
	FindPast(ctx context.Context, userID uint64, today time.Time) ([]domain.Order, error)
	List(ctx context.Context, f ListFilter) ([]domain.Order, int64, error)
	StatusCounts(ctx context.Context, f ListFilter) (map[domain.OrderStatus]int64, error)
	SumTotal(ctx context.Context, f ListFilter) (float64, error)
}
