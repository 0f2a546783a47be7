package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"rentwise/internal/config"
	"rentwise/internal/scheduler"
	mem "rentwise/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideBuildingCache, provideScheduler),
	fx.Invoke(startScheduler),
)

func provideBuildingCache(cfg *config.Config) mem.BuildingCache {
	if !cfg.Cache.Enabled {
		return mem.NoopBuildingCache{}
	}
	return mem.NewBuildingTTLCache(cfg.Cache.CacheTTL())
}

func provideScheduler(cfg *config.Config, cache mem.BuildingCache, logger *zap.Logger) *scheduler.Scheduler {
	return scheduler.NewScheduler(cfg.Cache, cache, logger)
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
}
