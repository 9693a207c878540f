package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
	"storefront-api/internal/infra"
	rabbit "storefront-api/internal/infra/rabbitmq"
	"storefront-api/internal/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	dateLayout      = "2006-01-02"
	productCacheTTL = time.Minute
	defaultLimit    = 10
	maxLimit        = 100
)

// OrderService owns the order lifecycle: creation, owner edits and
// cancellation, admin transitions, and the derived read views.
type OrderService struct {
	repo        repository.OrderRepository
	prodClient  infra.ProductClientInterface
	userClient  infra.UserClientInterface
	lookups     infra.LookupClientInterface
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
	blackout    time.Weekday
	now         func() time.Time
	logger      *zap.SugaredLogger
}

func NewOrderService(
	r repository.OrderRepository,
	p infra.ProductClientInterface,
	u infra.UserClientInterface,
	l infra.LookupClientInterface,
	pub rabbit.PublisherInterface,
	blackout time.Weekday,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		repo:       r,
		prodClient: p,
		userClient: u,
		lookups:    l,
		publisher:  pub,
		blackout:   blackout,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

type CreateOrderInput struct {
	ProductID        uint64
	Quantity         int64
	PurchaseDate     string
	DeliveryTime     string
	DeliveryLocation string
	Message          string
}

// UpdateOrderInput carries the owner-editable fields. Nil pointers leave the
// current value untouched.
type UpdateOrderInput struct {
	DeliveryTime     *string
	DeliveryLocation *string
	Message          *string
}

type Page struct {
	Orders     []domain.Order `json:"orders"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int64          `json:"total"`
	TotalPages int64          `json:"totalPages"`
}

type Statistics struct {
	TotalOrders      int64   `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	PendingOrders    int64   `json:"pendingOrders"`
	ConfirmedOrders  int64   `json:"confirmedOrders"`
	ProcessingOrders int64   `json:"processingOrders"`
	ShippedOrders    int64   `json:"shippedOrders"`
	DeliveredOrders  int64   `json:"deliveredOrders"`
	CancelledOrders  int64   `json:"cancelledOrders"`
}

// CreateOrder validates the intent against the product catalog, the blackout
// rule and the delivery value sets, then persists a pending order with the
// product's price snapshotted. The stock check is advisory: nothing is
// reserved or decremented.
func (s *OrderService) CreateOrder(ctx context.Context, actor auth.Identity, in CreateOrderInput) (*domain.Order, error) {
	prod, err := s.getProductWithCache(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, ErrProductNotFound
	}

	var errs []string

	if in.Quantity < 1 {
		errs = append(errs, "quantity must be at least 1")
	} else if in.Quantity > prod.Stock {
		errs = append(errs, fmt.Sprintf("quantity exceeds available stock (%d)", prod.Stock))
	}

	deliveryDate, dateErrs := s.validateDeliveryDate(in.PurchaseDate)
	errs = append(errs, dateErrs...)

	times, err := s.lookups.DeliveryTimes(ctx)
	if err != nil {
		return nil, err
	}
	if !contains(times, in.DeliveryTime) {
		errs = append(errs, "preferredDeliveryTime is not one of the available delivery times")
	}

	locations, err := s.lookups.DeliveryLocations(ctx)
	if err != nil {
		return nil, err
	}
	if !contains(locations, in.DeliveryLocation) {
		errs = append(errs, "preferredDeliveryLocation is not one of the available delivery locations")
	}

	if len(errs) > 0 {
		return nil, validationFailed(errs...)
	}

	user, err := s.userClient.GetUserById(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := s.now()
	order := &domain.Order{
		UserID:           actor.UserID,
		ProductID:        prod.ID,
		ProductName:      prod.Name,
		CustomerName:     user.Name,
		CustomerEmail:    user.Email,
		UnitPrice:        prod.Price,
		Quantity:         in.Quantity,
		Total:            prod.Price * float64(in.Quantity),
		DeliveryDate:     deliveryDate,
		DeliveryTime:     in.DeliveryTime,
		DeliveryLocation: in.DeliveryLocation,
		Message:          in.Message,
		Status:           domain.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	go s.publish(context.Background(), "order.created", domain.OrderCreatedEvent{
		OrderID:      order.ID,
		UserID:       order.UserID,
		ProductID:    order.ProductID,
		Quantity:     order.Quantity,
		Total:        order.Total,
		DeliveryDate: order.DeliveryDate,
		CreatedAt:    order.CreatedAt,
	})

	return order, nil
}

// GetOrder returns a single order to its owner or to an administrator.
func (s *OrderService) GetOrder(ctx context.Context, actor auth.Identity, id uint64) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !actor.IsAdmin() && order.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	return order, nil
}

// UpdateOrder lets the owner change delivery preferences while the order is
// still in its editable window. Status is never touched here.
func (s *OrderService) UpdateOrder(ctx context.Context, actor auth.Identity, id uint64, in UpdateOrderInput) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if !order.Status.Editable() {
		return nil, ErrForbidden
	}

	var errs []string

	if in.DeliveryTime != nil {
		times, err := s.lookups.DeliveryTimes(ctx)
		if err != nil {
			return nil, err
		}
		if !contains(times, *in.DeliveryTime) {
			errs = append(errs, "preferredDeliveryTime is not one of the available delivery times")
		}
	}
	if in.DeliveryLocation != nil {
		locations, err := s.lookups.DeliveryLocations(ctx)
		if err != nil {
			return nil, err
		}
		if !contains(locations, *in.DeliveryLocation) {
			errs = append(errs, "preferredDeliveryLocation is not one of the available delivery locations")
		}
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs...)
	}

	if in.DeliveryTime != nil {
		order.DeliveryTime = *in.DeliveryTime
	}
	if in.DeliveryLocation != nil {
		order.DeliveryLocation = *in.DeliveryLocation
	}
	if in.Message != nil {
		order.Message = *in.Message
	}
	order.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder is the one owner-driven transition. A non-empty reason is
// required, and only early-lifecycle orders can be cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, actor auth.Identity, id uint64, reason string) (*domain.Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, validationFailed("reason is required to cancel an order")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if !order.Status.Cancellable() {
		return nil, ErrForbidden
	}

	order.Status = domain.StatusCancelled
	order.CancellationReason = reason
	order.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	go s.publish(context.Background(), "order.cancelled", domain.OrderCancelledEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		Reason:      order.CancellationReason,
		CancelledAt: order.UpdatedAt,
	})

	return order, nil
}

// UpdateStatus is the admin transition: any enumerated status is reachable
// from any non-terminal state, deliberately permissive so mis-clicks can be
// corrected.
func (s *OrderService) UpdateStatus(ctx context.Context, actor auth.Identity, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, validationFailed(fmt.Sprintf("unknown status %q", status))
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status.Terminal() {
		return nil, ErrForbidden
	}

	from := order.Status
	order.Status = status
	if status == domain.StatusCancelled && order.CancellationReason == "" {
		order.CancellationReason = "Cancelled by administrator"
	}
	order.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	go s.publish(context.Background(), "order.status_changed", domain.OrderStatusChangedEvent{
		OrderID:   order.ID,
		From:      from,
		To:        order.Status,
		UpdatedAt: order.UpdatedAt,
	})

	return order, nil
}

// MyOrders is the owner's paginated listing with an optional status filter.
func (s *OrderService) MyOrders(ctx context.Context, actor auth.Identity, status string, page, limit int) (*Page, error) {
	statusFilter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	page, limit = normalizePage(page, limit)

	orders, total, err := s.repo.FindByUser(ctx, actor.UserID, statusFilter, page, limit)
	if err != nil {
		return nil, err
	}
	return newPage(orders, page, limit, total), nil
}

// UpcomingOrders returns the owner's open orders with a delivery date on or
// after today, soonest first.
func (s *OrderService) UpcomingOrders(ctx context.Context, actor auth.Identity) ([]domain.Order, error) {
	return s.repo.FindUpcoming(ctx, actor.UserID, s.today())
}

// PastOrders returns the owner's finished or already-delivered-by-date
// orders, most recent first.
func (s *OrderService) PastOrders(ctx context.Context, actor auth.Identity) ([]domain.Order, error) {
	return s.repo.FindPast(ctx, actor.UserID, s.today())
}

// ListOrders is the admin listing over all orders.
func (s *OrderService) ListOrders(ctx context.Context, actor auth.Identity, status, search string, page, limit int) (*Page, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	statusFilter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	page, limit = normalizePage(page, limit)

	orders, total, err := s.repo.List(ctx, repository.ListFilter{
		Status: statusFilter,
		Search: search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	return newPage(orders, page, limit, total), nil
}

// Statistics aggregates counts and revenue over the same predicate as the
// admin listing so the dashboard numbers always match what is listed.
func (s *OrderService) Statistics(ctx context.Context, actor auth.Identity, status, search string) (*Statistics, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	statusFilter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	filter := repository.ListFilter{Status: statusFilter, Search: search}

	counts, err := s.repo.StatusCounts(ctx, filter)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.SumTotal(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		TotalRevenue:     revenue,
		PendingOrders:    counts[domain.StatusPending],
		ConfirmedOrders:  counts[domain.StatusConfirmed],
		ProcessingOrders: counts[domain.StatusProcessing],
		ShippedOrders:    counts[domain.StatusShipped],
		DeliveredOrders:  counts[domain.StatusDelivered],
		CancelledOrders:  counts[domain.StatusCancelled],
	}
	for _, n := range counts {
		stats.TotalOrders += n
	}
	return stats, nil
}

func (s *OrderService) DeliveryLocations(ctx context.Context) ([]string, error) {
	return s.lookups.DeliveryLocations(ctx)
}

func (s *OrderService) DeliveryTimes(ctx context.Context) ([]string, error) {
	return s.lookups.DeliveryTimes(ctx)
}

func (s *OrderService) getProductWithCache(ctx context.Context, productId uint64) (*infra.ProductInfo, error) {
	cacheKey := fmt.Sprintf("product:%d", productId)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var prod infra.ProductInfo
			if err := json.Unmarshal([]byte(cached), &prod); err == nil {
				return &prod, nil
			}
		}
	}

	prod, err := s.prodClient.GetProductById(ctx, productId)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && prod != nil {
		if data, err := json.Marshal(prod); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return prod, nil
}

func (s *OrderService) publish(ctx context.Context, pattern string, data any) {
	if err := s.publisher.Publish(ctx, pattern, data); err != nil {
		s.logger.Errorw("failed to publish event", "pattern", pattern, "error", err)
	}
}

// validateDeliveryDate enforces the future-date rule and the configurable
// blackout weekday.
func (s *OrderService) validateDeliveryDate(raw string) (time.Time, []string) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, []string{"purchaseDate must be a valid date in YYYY-MM-DD format"}
	}

	var errs []string
	if !date.After(s.today()) {
		errs = append(errs, "purchaseDate must be a future date")
	}
	if date.Weekday() == s.blackout {
		errs = append(errs, fmt.Sprintf("delivery is not available on %s", s.blackout))
	}
	return date, errs
}

func (s *OrderService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseStatusFilter(status string) (domain.OrderStatus, error) {
	if status == "" || status == "all" {
		return "", nil
	}
	parsed := domain.OrderStatus(status)
	if !parsed.Valid() {
		return "", validationFailed(fmt.Sprintf("unknown status %q", status))
	}
	return parsed, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func newPage(orders []domain.Order, page, limit int, total int64) *Page {
	if orders == nil {
		orders = []domain.Order{}
	}
	return &Page{
		Orders:     orders,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
