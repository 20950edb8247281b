package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shelf-service/internal/core/domain"
)

const (
	catalogGenKey       = "shelf:gen:catalog"
	shopperGenKeyPrefix = "shelf:gen:shopper:"
	productsKeyPrefix   = "shelf:products:"
	defaultProductsTTL  = 5 * time.Minute
)

// RedisAdapter caches product query results. Entries are keyed by the
// catalog generation and the shopper generation; invalidation bumps a
// generation so older entries become unreachable and expire by TTL.
type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	if ttl <= 0 {
		ttl = defaultProductsTTL
	}
	return &RedisAdapter{client: client, ttl: ttl}
}

func shopperGenKey(shopperID string) string {
	return shopperGenKeyPrefix + shopperID
}

func productsKey(version string, q domain.ProductQuery) string {
	return fmt.Sprintf("%s%s:%q:%q:%q:%d", productsKeyPrefix, version, q.ShopperID, q.Category, q.Brand, q.Limit)
}

func (r *RedisAdapter) version(ctx context.Context, shopperID string) (string, error) {
	vals, err := r.client.MGet(ctx, catalogGenKey, shopperGenKey(shopperID)).Result()
	if err != nil {
		return "", fmt.Errorf("read generations: %w", err)
	}

	gens := [2]string{"0", "0"}
	for i, v := range vals {
		if s, ok := v.(string); ok {
			gens[i] = s
		}
	}
	return gens[0] + "." + gens[1], nil
}

func (r *RedisAdapter) GetProducts(ctx context.Context, q domain.ProductQuery) ([]domain.RankedProduct, string, bool, error) {
	version, err := r.version(ctx, q.ShopperID)
	if err != nil {
		return nil, "", false, err
	}

	data, err := r.client.Get(ctx, productsKey(version, q)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, false, nil
	}
	if err != nil {
		return nil, "", false, fmt.Errorf("get products: %w", err)
	}

	var products []domain.RankedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		// Treat a corrupt entry as a miss; the next write replaces it.
		return nil, version, false, nil
	}
	return products, version, true, nil
}

func (r *RedisAdapter) SetProducts(ctx context.Context, q domain.ProductQuery, version string, products []domain.RankedProduct) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	return r.client.Set(ctx, productsKey(version, q), data, r.ttl).Err()
}

func (r *RedisAdapter) InvalidateShopper(ctx context.Context, shopperID string) error {
	return r.client.Incr(ctx, shopperGenKey(shopperID)).Err()
}

func (r *RedisAdapter) InvalidateCatalog(ctx context.Context) error {
	return r.client.Incr(ctx, catalogGenKey).Err()
}

// NewRedisClient connects and pings.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     100,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
