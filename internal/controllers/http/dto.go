package http

type CreateOrderRequest struct {
	ProductID        uint64 `json:"productId" binding:"required"`
	Quantity         int64  `json:"quantity" binding:"required"`
	PurchaseDate     string `json:"purchaseDate" binding:"required"`
	DeliveryTime     string `json:"preferredDeliveryTime" binding:"required"`
	DeliveryLocation string `json:"preferredDeliveryLocation" binding:"required"`
	Message          string `json:"message"`
}

type UpdateOrderRequest struct {
	DeliveryTime     *string `json:"preferredDeliveryTime"`
	DeliveryLocation *string `json:"preferredDeliveryLocation"`
	Message          *string `json:"message"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}
