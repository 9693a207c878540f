package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// AllStatuses is the full enumerated set, in forward-path order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal statuses admit no further transition.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Cancellable reports whether the owner may still cancel the order.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Editable reports whether the owner may still change delivery preferences.
// Editing and cancelling share the same early-lifecycle window.
func (s OrderStatus) Editable() bool {
	return s.Cancellable()
}

type Order struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `json:"userId" gorm:"not null;index"`
	ProductID uint64 `json:"productId" gorm:"not null;index"`

	// Snapshots taken at creation time so later catalog or directory edits
	// never rewrite historical orders, and so admin search does not need
	// cross-service joins.
	ProductName   string  `json:"productName" gorm:"size:255;not null"`
	CustomerName  string  `json:"customerName" gorm:"size:255;not null"`
	CustomerEmail string  `json:"customerEmail" gorm:"size:255;not null"`
	UnitPrice     float64 `json:"unitPrice" gorm:"not null"`

	Quantity int64   `json:"quantity" gorm:"not null"`
	Total    float64 `json:"total" gorm:"not null"`

	DeliveryDate     time.Time `json:"deliveryDate" gorm:"not null;index"`
	DeliveryTime     string    `json:"deliveryTime" gorm:"size:64;not null"`
	DeliveryLocation string    `json:"deliveryLocation" gorm:"size:128;not null"`
	Message          string    `json:"message,omitempty" gorm:"type:text"`

	Status             OrderStatus `json:"status" gorm:"type:enum('pending','confirmed','processing','shipped','delivered','cancelled');default:'pending';index"`
	CancellationReason string      `json:"cancellationReason,omitempty" gorm:"size:512"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
