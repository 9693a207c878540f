package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

const lookupCacheTTL = 5 * time.Minute

// LookupClient fetches the enumerated delivery value sets from the lookup
// service. Results are cached in Redis since the sets change rarely.
type LookupClient struct {
	baseURL     string
	httpClient  *http.Client
	redisClient *redis.Client
}

func NewLookupClient(baseURL string, timeout time.Duration, rdb *redis.Client) *LookupClient {
	return &LookupClient{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: timeout},
		redisClient: rdb,
	}
}

func (c *LookupClient) DeliveryLocations(ctx context.Context) ([]string, error) {
	return c.valueSet(ctx, "delivery-locations")
}

func (c *LookupClient) DeliveryTimes(ctx context.Context) ([]string, error) {
	return c.valueSet(ctx, "delivery-times")
}

func (c *LookupClient) valueSet(ctx context.Context, name string) ([]string, error) {
	cacheKey := "lookup:" + name

	if c.redisClient != nil {
		cached, err := c.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var values []string
			if err := json.Unmarshal([]byte(cached), &values); err == nil {
				return values, nil
			}
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, name), nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup service returned status %d", resp.StatusCode)
	}

	var values []string
	if err := json.NewDecoder(resp.Body).Decode(&values); err != nil {
		return nil, err
	}

	if c.redisClient != nil {
		if data, err := json.Marshal(values); err == nil {
			c.redisClient.Set(ctx, cacheKey, data, lookupCacheTTL)
		}
	}
	return values, nil
}
