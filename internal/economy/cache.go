package economy

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/driftbyte/fluxforge/internal/domain"
)

// listingCache is a small read cache in front of the marketplace price board.
// Prices move only when sales land, so a short TTL keeps the prices endpoint
// off the database without serving stale quotes for long.
type listingCache struct {
	lru *expirable.LRU[string, []domain.MarketplaceListing]
}

// boardKey caches the full price board as a single entry.
const boardKey = "board"

func newListingCache(size int, ttl time.Duration) *listingCache {
	return &listingCache{
		lru: expirable.NewLRU[string, []domain.MarketplaceListing](size, nil, ttl),
	}
}

// GetAll returns the cached price board, if present.
func (c *listingCache) GetAll() ([]domain.MarketplaceListing, bool) {
	return c.lru.Get(boardKey)
}

// SetAll stores the full price board.
func (c *listingCache) SetAll(listings []domain.MarketplaceListing) {
	c.lru.Add(boardKey, listings)
}

// Invalidate drops the board after a sale moves a price.
func (c *listingCache) Invalidate(t domain.FragmentType, r domain.Rarity) {
	c.lru.Remove(boardKey)
}
