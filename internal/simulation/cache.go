package simulation

import (
	"fmt"
	"math"

	"lifepath/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 1024

// Key identifies a simulation by the inputs the model actually reads.
// Floats are stored as canonical bit patterns so that -0/+0 and all NaNs
// collapse to one key each.
type Key struct {
	StartingSavings      uint64
	MonthlyLifestyleCost uint64
	PathID               string
	HorizonYears         int
}

func NewKey(in models.UserInputs, pathID string, horizonYears int) Key {
	return Key{
		StartingSavings:      canonicalBits(in.StartingSavings),
		MonthlyLifestyleCost: canonicalBits(in.MonthlyLifestyleCost),
		PathID:               pathID,
		HorizonYears:         horizonYears,
	}
}

// String renders the key for string-keyed stores (singleflight, Redis).
func (k Key) String() string {
	return fmt.Sprintf("sim:v1:%q:%d:%016x:%016x", k.PathID, k.HorizonYears, k.StartingSavings, k.MonthlyLifestyleCost)
}

func canonicalBits(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return math.Float64bits(math.NaN())
	case v == 0:
		return 0
	}
	return math.Float64bits(v)
}

// Cache stores computed results in process. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key Key) (*models.SimulationResult, bool)
	Add(key Key, result *models.SimulationResult)
	Len() int
	Purge()
}

// LRUCache is a bounded Cache that evicts the least recently used result.
type LRUCache struct {
	entries *lru.Cache[Key, *models.SimulationResult]
}

func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[Key, *models.SimulationResult](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation cache: %w", err)
	}
	return &LRUCache{entries: entries}, nil
}

func (c *LRUCache) Get(key Key) (*models.SimulationResult, bool) {
	return c.entries.Get(key)
}

func (c *LRUCache) Add(key Key, result *models.SimulationResult) {
	c.entries.Add(key, result)
}

func (c *LRUCache) Len() int {
	return c.entries.Len()
}

func (c *LRUCache) Purge() {
	c.entries.Purge()
}
