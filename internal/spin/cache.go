package spin

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// resultCache holds fulfilled requests. The fields it serves (player, state,
// result) never change after fulfillment, so entries are never stale.
type resultCache struct {
	lru *expirable.LRU[uuid.UUID, *domain.SpinRequest]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	return &resultCache{
		lru: expirable.NewLRU[uuid.UUID, *domain.SpinRequest](size, nil, ttl),
	}
}

func (c *resultCache) Get(id uuid.UUID) (*domain.SpinRequest, bool) {
	return c.lru.Get(id)
}

// Set ignores requests that are not yet fulfilled
func (c *resultCache) Set(req *domain.SpinRequest) {
	if req == nil || !req.IsFulfilled() || req.Result == nil {
		return
	}
	cached := *req
	result := *req.Result
	cached.Result = &result
	c.lru.Add(req.ID, &cached)
}
