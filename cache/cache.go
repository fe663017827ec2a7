package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/krishnapandey24/brandbox-backend/logger"
)

var (
	rdb *redis.Client
	ttl = 5 * time.Minute
)

// Init connects the optional read cache. When REDIS_ADDR is not set the
// cache stays disabled and every lookup falls through to the database.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("redis unavailable, cache disabled", zap.Error(err))
		return
	}
	rdb = client
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// GetProduct returns the cached product detail payload, if any. Redis
// errors are treated as a miss so the database stays authoritative.
func GetProduct(ctx context.Context, id uint) ([]byte, bool) {
	if rdb == nil {
		return nil, false
	}
	data, err := rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func SetProduct(ctx context.Context, id uint, payload []byte) {
	if rdb == nil {
		return
	}
	if err := rdb.Set(ctx, productKey(id), payload, ttl).Err(); err != nil {
		logger.Log.Warn("failed to cache product", zap.Uint("product_id", id), zap.Error(err))
	}
}

// InvalidateProduct drops the cached detail after a media attach or an
// update touches the product.
func InvalidateProduct(ctx context.Context, id uint) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, productKey(id)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate product cache", zap.Uint("product_id", id), zap.Error(err))
	}
}
