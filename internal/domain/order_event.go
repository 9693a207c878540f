package domain

import "time"

type OrderCreatedEvent struct {
	OrderID      uint64    `json:"orderId"`
	UserID       uint64    `json:"userId"`
	ProductID    uint64    `json:"productId"`
	Quantity     int64     `json:"quantity"`
	Total        float64   `json:"total"`
	DeliveryDate time.Time `json:"deliveryDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderCancelledEvent struct {
	OrderID     uint64    `json:"orderId"`
	UserID      uint64    `json:"userId"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelledAt"`
}

type OrderStatusChangedEvent struct {
	OrderID   uint64      `json:"orderId"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
