// Package cache кеширует карточки товаров для чтения каталога.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const keyPrefix = "storefront:product:"

// ProductCache хранит товары по идентификатору.
type ProductCache interface {
	// Get возвращает товар и признак попадания.
	Get(ctx context.Context, id string) (domain.Product, bool, error)
	Set(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, ids ...string) error
}

type cachedProduct struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RedisProductCache хранит товары в Redis в виде JSON с TTL.
type RedisProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisProductCache создаёт кеш поверх клиента Redis.
func NewRedisProductCache(client redis.Cmdable, ttl time.Duration) *RedisProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisProductCache{client: client, ttl: ttl}
}

// Key возвращает ключ Redis для товара.
func Key(id string) string {
	return keyPrefix + id
}

func (c *RedisProductCache) Get(ctx context.Context, id string) (domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Product{}, false, nil
		}
		return domain.Product{}, false, fmt.Errorf("redis get product %s: %w", id, err)
	}

	var cp cachedProduct
	if err := json.Unmarshal(raw, &cp); err != nil {
		return domain.Product{}, false, fmt.Errorf("decode cached product %s: %w", id, err)
	}
	return domain.Product{
		ID:        cp.ID,
		Name:      cp.Name,
		Price:     cp.Price,
		Quantity:  cp.Quantity,
		CreatedAt: cp.CreatedAt,
		UpdatedAt: cp.UpdatedAt,
	}, true, nil
}

func (c *RedisProductCache) Set(ctx context.Context, product domain.Product) error {
	raw, err := Encode(product)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, Key(product.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set product %s: %w", product.ID, err)
	}
	return nil
}

func (c *RedisProductCache) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, Key(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete products: %w", err)
	}
	return nil
}

// Encode сериализует товар в формат кеша.
func Encode(product domain.Product) ([]byte, error) {
	raw, err := json.Marshal(cachedProduct{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  product.Quantity,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode product %s: %w", product.ID, err)
	}
	return raw, nil
}

// Noop — кеш, который ничего не хранит.
type Noop struct{}

func (Noop) Get(context.Context, string) (domain.Product, bool, error) {
	return domain.Product{}, false, nil
}

func (Noop) Set(context.Context, domain.Product) error { return nil }

func (Noop) Delete(context.Context, ...string) error { return nil }

var (
	_ ProductCache = (*RedisProductCache)(nil)
	_ ProductCache = Noop{}
)
