package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/kapu/skills-catalog-go/pkg/errors"
)

// CacheService keeps rendered catalog pages in Redis so repeated filter and
// locale combinations skip the render path. Misses and Redis outages degrade
// to a plain render, never to an error page.
type CacheService struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PageTTL  time.Duration
}

func NewCacheService(cfg CacheConfig, logger *zap.Logger) (*CacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, apperrors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	ttl := cfg.PageTTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &CacheService{
		client: client,
		logger: logger,
		ttl:    ttl,
	}, nil
}

// GetPage returns a cached rendered page. A miss or a Redis error both
// report "not found".
func (c *CacheService) GetPage(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warn("Page cache get failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, true
}

func (c *CacheService) SetPage(ctx context.Context, key, html string) {
	if err := c.client.Set(ctx, key, html, c.ttl).Err(); err != nil {
		c.logger.Warn("Page cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *CacheService) Close() error {
	return c.client.Close()
}
