// Package mem holds short-lived in-process caches.
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rentwise/internal/models/response_models"
)

type BuildingCache interface {
	Get(id uuid.UUID) (response_models.BuildingWithRatings, bool)
	Set(id uuid.UUID, building response_models.BuildingWithRatings)

	// Invalidate drops the entry so the next read recomputes aggregates.
	Invalidate(id uuid.UUID)

	// Sweep removes expired entries and returns how many were dropped.
	Sweep() int
}

type entry struct {
	building  response_models.BuildingWithRatings
	expiresAt time.Time
}

type BuildingTTLCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[uuid.UUID]entry
}

func NewBuildingTTLCache(ttl time.Duration) *BuildingTTLCache {
	return &BuildingTTLCache{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[uuid.UUID]entry),
	}
}

func (s *BuildingTTLCache) Get(id uuid.UUID) (response_models.BuildingWithRatings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || s.now().After(e.expiresAt) {
		return response_models.BuildingWithRatings{}, false
	}
	return e.building, true
}

func (s *BuildingTTLCache) Set(id uuid.UUID, building response_models.BuildingWithRatings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		building:  building,
		expiresAt: s.now().Add(s.ttl),
	}
}

func (s *BuildingTTLCache) Invalidate(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *BuildingTTLCache) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	dropped := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			dropped++
		}
	}
	return dropped
}

// NoopBuildingCache is used when caching is disabled.
type NoopBuildingCache struct{}

func (NoopBuildingCache) Get(uuid.UUID) (response_models.BuildingWithRatings, bool) {
	return response_models.BuildingWithRatings{}, false
}

func (NoopBuildingCache) Set(uuid.UUID, response_models.BuildingWithRatings) {}

func (NoopBuildingCache) Invalidate(uuid.UUID) {}

func (NoopBuildingCache) Sweep() int { return 0 }
