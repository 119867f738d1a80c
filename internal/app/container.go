package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/skills-catalog-go/internal/config"
	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/service"
	"github.com/kapu/skills-catalog-go/internal/service/cache"
	"github.com/kapu/skills-catalog-go/internal/service/database"
	"github.com/kapu/skills-catalog-go/internal/web"
)

// Container bundles the loaded catalog and assembled services for the server.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Catalog *domain.Catalog
	Cache   *cache.CacheService // nil when disabled

	closers []func()
}

// NewServer builds a catalog server on top of the container's state.
func (c *Container) NewServer() (*web.Server, error) {
	if c == nil || c.Catalog == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	return web.NewServer(c.Config, c.Logger, c.Catalog, c.Cache)
}

// Close tears down infrastructure connections in reverse build order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles infrastructure and runs the initial catalog load. A primary
// store that cannot be reached is logged and skipped so the loader falls back
// to the flat file; a failed load itself is fatal and no server is built.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	var store service.SkillStore
	if cfg.Postgres.Enabled {
		postgresSvc, pgErr := database.NewPostgresService(database.PostgresConfig{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
		}, logger)
		if pgErr != nil {
			logger.Warn("Primary skill store unreachable, flat file will serve the catalog", zap.Error(pgErr))
		} else {
			closers = append(closers, func() {
				_ = postgresSvc.Close()
			})
			store = service.NewSkillRepository(postgresSvc, logger)
		}
	}

	loader := service.NewCatalogLoader(store, cfg.Data.SkillsFile, cfg.Data.SourcesFile, logger)
	catalog, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var pageCache *cache.CacheService
	if cfg.Redis.Enabled {
		pageCache, err = cache.NewCacheService(cache.CacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PageTTL:  cfg.Redis.PageTTL,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", err)
		}
		closers = append(closers, func() {
			_ = pageCache.Close()
		})
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog,
		Cache:   pageCache,
		closers: closers,
	}, nil
}
