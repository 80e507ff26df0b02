package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"lifepath/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrInvalidHorizon = errors.New("horizon years must be positive")

// Store is an optional shared cache tier, typically Redis, holding results as
// JSON documents.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

type Stats struct {
	Hits         int64 `json:"hits"`
	Misses       int64 `json:"misses"`
	RemoteHits   int64 `json:"remoteHits"`
	Computations int64 `json:"computations"`
	Entries      int   `json:"entries"`
}

// Simulator memoizes Project. Concurrent calls for the same key share one
// computation; calls for different keys proceed independently.
type Simulator struct {
	cache  Cache
	remote Store
	group  singleflight.Group
	logger *zap.Logger

	hits         atomic.Int64
	misses       atomic.Int64
	remoteHits   atomic.Int64
	computations atomic.Int64
}

type Option func(*Simulator)

// WithRemoteStore adds a second cache tier consulted on local misses.
func WithRemoteStore(store Store) Option {
	return func(s *Simulator) {
		s.remote = store
	}
}

// NewSimulator builds a Simulator around cache. A nil cache gets a default
// sized LRU.
func NewSimulator(cache Cache, logger *zap.Logger, opts ...Option) *Simulator {
	if cache == nil {
		cache, _ = NewLRUCache(DefaultCacheSize)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Simulator{
		cache:  cache,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate returns the projection for the (inputs, template, horizon) triple,
// computing it at most once per key while the key stays cached.
func (s *Simulator) Simulate(ctx context.Context, in models.UserInputs, tpl models.PathTemplate, horizonYears int) (*models.SimulationResult, error) {
	if horizonYears <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizonYears)
	}

	key := NewKey(in, tpl.ID, horizonYears)
	if result, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return result, nil
	}

	v, _, _ := s.group.Do(key.String(), func() (interface{}, error) {
		// A flight for this key may have completed after our first lookup.
		if result, ok := s.cache.Get(key); ok {
			s.hits.Add(1)
			return result, nil
		}
		s.misses.Add(1)

		result := s.loadRemote(ctx, key)
		if result == nil {
			projected := Project(in, tpl, horizonYears)
			result = &projected
			s.computations.Add(1)
			s.storeRemote(ctx, key, result)
			s.logger.Debug("Simulation computed",
				zap.String("path_id", tpl.ID),
				zap.Int("horizon_years", horizonYears),
			)
		}
		s.cache.Add(key, result)
		return result, nil
	})

	return v.(*models.SimulationResult), nil
}

// Stats reports cache effectiveness counters.
func (s *Simulator) Stats() Stats {
	return Stats{
		Hits:         s.hits.Load(),
		Misses:       s.misses.Load(),
		RemoteHits:   s.remoteHits.Load(),
		Computations: s.computations.Load(),
		Entries:      s.cache.Len(),
	}
}

// Purge drops every locally cached result.
func (s *Simulator) Purge() {
	s.cache.Purge()
}

func (s *Simulator) loadRemote(ctx context.Context, key Key) *models.SimulationResult {
	if s.remote == nil {
		return nil
	}
	raw, ok := s.remote.Get(ctx, key.String())
	if !ok {
		return nil
	}
	var result models.SimulationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("Discarding unreadable remote simulation entry", zap.String("key", key.String()), zap.Error(err))
		return nil
	}
	s.remoteHits.Add(1)
	return &result
}

func (s *Simulator) storeRemote(ctx context.Context, key Key, result *models.SimulationResult) {
	if s.remote == nil {
		return
	}
	// NaN figures from degenerate inputs cannot be encoded; those stay local.
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Debug("Skipping remote cache for simulation", zap.String("key", key.String()), zap.Error(err))
		return
	}
	if err := s.remote.Set(ctx, key.String(), string(data)); err != nil {
		s.logger.Warn("Failed to write remote simulation cache", zap.String("key", key.String()), zap.Error(err))
	}
}
