// Package simcache caches computed similarity responses in a key-value
// store. The engine is deterministic, so cached responses never go
// stale before their TTL; the TTL only bounds memory in the store.
package simcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ayatlab/verseref/internal/db"
	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/domain/simquery"
)

const keyPrefix = "verseref:simcache:"

// DefaultTTL bounds how long cached responses live in the store.
const DefaultTTL = 24 * time.Hour

// store is the consumer interface for the cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache stores similarity responses keyed by source address + options.
type Cache struct {
	store  store
	ttl    time.Duration
	logger *zap.Logger
}

// New creates a response cache over a key-value store.
func New(s store, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: s, ttl: DefaultTTL, logger: logger}
}

// WithTTL overrides the entry TTL.
func (c *Cache) WithTTL(ttl time.Duration) *Cache {
	if ttl > 0 {
		c.ttl = ttl
	}
	return c
}

// Get returns a cached response if present. Store failures are logged
// and reported as misses; the cache must never fail a request.
func (c *Cache) Get(
	ctx context.Context, addr domain.VerseAddress, req *simquery.Request,
) (domain.SimilarityResponse, bool) {
	key := cacheKey(addr, req)
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("similarity cache read failed", zap.String("key", key), zap.Error(err))
		}
		return domain.SimilarityResponse{}, false
	}

	var resp domain.SimilarityResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("similarity cache entry corrupt", zap.String("key", key), zap.Error(err))
		return domain.SimilarityResponse{}, false
	}
	return resp, true
}

// Set stores a response. Failures are logged and swallowed.
func (c *Cache) Set(
	ctx context.Context, addr domain.VerseAddress, req *simquery.Request,
	resp domain.SimilarityResponse,
) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("similarity cache encode failed", zap.Error(err))
		return
	}
	key := cacheKey(addr, req)
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("similarity cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(addr domain.VerseAddress, req *simquery.Request) string {
	h := sha256.Sum256([]byte(addr.String() + "|" + req.CacheKeyFields()))
	return keyPrefix + hex.EncodeToString(h[:])
}
