package mysql

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	result := r.db.WithContext(ctx).Create(order)
	if result.Error != nil {
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

// Update writes the whole record in one statement so a cancellation lands
// with its reason and timestamp together, or not at all.
func (r *orderRepo) Update(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(ctx context.Context, userID uint64, status domain.OrderStatus, page, limit int) ([]domain.Order, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Order{}).Where("user_id = ?", userID)
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var (
		out   []domain.Order
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scope().WithContext(gctx).
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&out).Error
	})
	g.Go(func() error {
		return scope().WithContext(gctx).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *orderRepo) FindUpcoming(ctx context.Context, userID uint64, today time.Time) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status NOT IN ?", []domain.OrderStatus{domain.StatusDelivered, domain.StatusCancelled}).
		Where("delivery_date >= ?", today).
		Order("delivery_date ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindPast(ctx context.Context, userID uint64, today time.Time) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("(status IN ? OR delivery_date < ?)",
			[]domain.OrderStatus{domain.StatusDelivered, domain.StatusCancelled}, today).
		Order("delivery_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) List(ctx context.Context, f repository.ListFilter) ([]domain.Order, int64, error) {
	var (
		out   []domain.Order
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, f).
			Order("created_at DESC").
			Offset((f.Page - 1) * f.Limit).
			Limit(f.Limit).
			Find(&out).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, f).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *orderRepo) StatusCounts(ctx context.Context, f repository.ListFilter) (map[domain.OrderStatus]int64, error) {
	var rows []struct {
		Status domain.OrderStatus
		Count  int64
	}
	err := r.filtered(ctx, f).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *orderRepo) SumTotal(ctx context.Context, f repository.ListFilter) (float64, error) {
	var sum float64
	err := r.filtered(ctx, f).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// filtered applies the shared admin predicate: optional status, optional
// case-insensitive substring match on the denormalized search columns.
func (r *orderRepo) filtered(ctx context.Context, f repository.ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"(LOWER(product_name) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ?)",
			needle, needle, needle,
		)
	}
	return q
}
