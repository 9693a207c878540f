package http

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  *services.OrderService
	verifier *auth.Verifier
	logger   *zap.SugaredLogger
}

func NewHandler(s *services.OrderService, v *auth.Verifier, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: s, verifier: v, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	orders := r.Group("/orders", AuthMiddleware(h.verifier))

	orders.GET("/delivery-locations", h.DeliveryLocations)
	orders.GET("/delivery-times", h.DeliveryTimes)

	orders.POST("", h.CreateOrder)
	orders.GET("/my-orders", h.MyOrders)
	orders.GET("/upcoming", h.UpcomingOrders)
	orders.GET("/past", h.PastOrders)
	orders.GET("/:id", h.GetOrder)
	orders.PUT("/:id", h.UpdateOrder)
	orders.PATCH("/:id/cancel", h.CancelOrder)

	orders.GET("", RequireAdmin(), h.ListOrders)
	orders.PATCH("/:id/status", RequireAdmin(), h.UpdateStatus)
	orders.GET("/admin/statistics", RequireAdmin(), h.Statistics)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", []string{err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), identityFrom(c), services.CreateOrderInput{
		ProductID:        req.ProductID,
		Quantity:         req.Quantity,
		PurchaseDate:     req.PurchaseDate,
		DeliveryTime:     req.DeliveryTime,
		DeliveryLocation: req.DeliveryLocation,
		Message:          req.Message,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	success(c, http.StatusCreated, "Order created successfully", gin.H{"order": order})
}

func (h *Handler) MyOrders(c *gin.Context) {
	page, limit := pageParams(c)
	status := c.DefaultQuery("status", "all")

	result, err := h.service.MyOrders(c.Request.Context(), identityFrom(c), status, page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	success(c, http.StatusOK, "", pageData(result))
}

func (h *Handler) UpcomingOrders(c *gin.Context) {
	orders, err := h.service.UpcomingOrders(c.Request.Context(), identityFrom(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"orders": orders})
}

func (h *Handler) PastOrders(c *gin.Context) {
	orders, err := h.service.PastOrders(c.Request.Context(), identityFrom(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"orders": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"order": order})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", []string{err.Error()})
		return
	}

	order, err := h.service.UpdateOrder(c.Request.Context(), identityFrom(c), id, services.UpdateOrderInput{
		DeliveryTime:     req.DeliveryTime,
		DeliveryLocation: req.DeliveryLocation,
		Message:          req.Message,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "Order updated successfully", gin.H{"order": order})
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", []string{err.Error()})
		return
	}

	order, err := h.service.CancelOrder(c.Request.Context(), identityFrom(c), id, req.Reason)
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "Order cancelled successfully", gin.H{"order": order})
}

func (h *Handler) ListOrders(c *gin.Context) {
	page, limit := pageParams(c)
	status := c.DefaultQuery("status", "all")
	search := c.Query("search")

	result, err := h.service.ListOrders(c.Request.Context(), identityFrom(c), status, search, page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "", pageData(result))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", []string{err.Error()})
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), identityFrom(c), id, domain.OrderStatus(req.Status))
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "Order status updated successfully", gin.H{"order": order})
}

func (h *Handler) Statistics(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	search := c.Query("search")

	stats, err := h.service.Statistics(c.Request.Context(), identityFrom(c), status, search)
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "", stats)
}

func (h *Handler) DeliveryLocations(c *gin.Context) {
	locations, err := h.service.DeliveryLocations(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"deliveryLocations": locations})
}

func (h *Handler) DeliveryTimes(c *gin.Context) {
	times, err := h.service.DeliveryTimes(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	success(c, http.StatusOK, "", gin.H{"deliveryTimes": times})
}

// renderError maps the workflow's error taxonomy onto HTTP. Anything
// unrecognized is an internal failure whose detail stays out of the response.
func (h *Handler) renderError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		fail(c, http.StatusBadRequest, "Validation failed", verr.Errors)
	case errors.Is(err, services.ErrProductNotFound):
		fail(c, http.StatusNotFound, "Product not found", nil)
	case errors.Is(err, services.ErrOrderNotFound):
		fail(c, http.StatusNotFound, "Order not found", nil)
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusUnauthorized, "User not found in request", nil)
	case errors.Is(err, services.ErrForbidden):
		fail(c, http.StatusForbidden, "You are not allowed to perform this action", nil)
	default:
		h.logger.Errorw("request failed", "path", c.FullPath(), "error", err)
		fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func orderID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid order id", nil)
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

func pageData(p *services.Page) gin.H {
	return gin.H{
		"orders": p.Orders,
		"pagination": Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: p.TotalPages,
		},
	}
}

func success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{Status: "success", Message: message, Data: data})
}

func fail(c *gin.Context, code int, message string, errs []string) {
	c.JSON(code, Response{Status: "error", Message: message, Errors: errs})
}
