package services

import (
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/infra"
)

func CreateMockOrder(id, userId, productId uint64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:               id,
		UserID:           userId,
		ProductID:        productId,
		ProductName:      TestProductName,
		CustomerName:     TestCustomerName,
		CustomerEmail:    TestCustomerEmail,
		UnitPrice:        TestProductPrice,
		Quantity:         TestQuantity,
		Total:            TestProductPrice * float64(TestQuantity),
		DeliveryDate:     time.Now().AddDate(0, 0, 7),
		DeliveryTime:     TestDeliveryTime,
		DeliveryLocation: TestDeliveryLocation,
		Status:           status,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func CreateMockProduct(id uint64, name string, price float64, stock int64) *infra.ProductInfo {
	return &infra.ProductInfo{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

const (
	TestProductID        = uint64(1)
	TestOrderID          = uint64(1)
	TestUserID           = uint64(10)
	TestProductName      = "Test Product"
	TestProductPrice     = float64(20)
	TestProductStock     = int64(5)
	TestQuantity         = int64(3)
	TestCustomerName     = "Test Customer"
	TestCustomerEmail    = "customer@example.com"
	TestDeliveryTime     = "Morning (8AM - 12PM)"
	TestDeliveryLocation = "Front Door"
)
