// Package db abstracts the key-value store backing the similarity
// response cache.
package db

import (
	"context"
	"time"
)

// Store is the key-value contract the cache layer consumes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}
