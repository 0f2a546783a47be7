package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"rentwise/internal/config"
	mem "rentwise/pkg/memcache"
)

// Scheduler runs the periodic cache sweep
type Scheduler struct {
	cron      *cron.Cron
	cache     mem.BuildingCache
	config    config.CacheConfig
	logger    *zap.Logger
	isRunning bool
}

func NewScheduler(cfg config.CacheConfig, cache mem.BuildingCache, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		cache:  cache,
		config: cfg,
		logger: logger,
	}
}

// Start registers the sweep job. It is a no-op when the cache is disabled.
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("scheduler: cache disabled, sweep not scheduled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.SweepSpec, s.sweep); err != nil {
		return fmt.Errorf("schedule cache sweep %q: %w", s.config.SweepSpec, err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler: started", zap.String("sweep_spec", s.config.SweepSpec))
	return nil
}

func (s *Scheduler) Stop() {
	if s.isRunning {
		<-s.cron.Stop().Done()
		s.isRunning = false
		s.logger.Info("scheduler: stopped")
	}
}

func (s *Scheduler) sweep() {
	if dropped := s.cache.Sweep(); dropped > 0 {
		s.logger.Debug("scheduler: swept expired building aggregates", zap.Int("dropped", dropped))
	}
}
