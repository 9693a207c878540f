package infra

import "context"

type ProductClientInterface interface {
	GetProductById(ctx context.Context, id uint64) (*ProductInfo, error)
}

type UserClientInterface interface {
	GetUserById(ctx context.Context, id uint64) (*UserInfo, error)
}

type LookupClientInterface interface {
	DeliveryLocations(ctx context.Context) ([]string, error)
	DeliveryTimes(ctx context.Context) ([]string, error)
}

var _ ProductClientInterface = (*ProductClient)(nil)
var _ UserClientInterface = (*UserClient)(nil)
var _ LookupClientInterface = (*LookupClient)(nil)
