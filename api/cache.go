package api

import (
	"encoding/json"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/cespare/xxhash/v2"
)

// DefaultCacheSize is the number of simulation results kept when none is configured.
const DefaultCacheSize = 256

// resultCache memoizes simulation responses by policy and request content.
// Simulations are deterministic, so a hit is always a valid answer.
type resultCache struct {
	items *cache.Cache[uint64, *SimulateResponse]
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &resultCache{
		items: cache.New(cache.AsLRU[uint64, *SimulateResponse](lru.WithCapacity(capacity))),
	}
}

// key digests the canonical JSON encoding of req under the policy name.
func (c *resultCache) key(policy string, req SimulateRequest) (uint64, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	d := xxhash.New()
	_, _ = d.WriteString(policy)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(body)
	return d.Sum64(), nil
}

func (c *resultCache) get(key uint64) (*SimulateResponse, bool) {
	return c.items.Get(key)
}

func (c *resultCache) set(key uint64, resp *SimulateResponse) {
	c.items.Set(key, resp)
}
