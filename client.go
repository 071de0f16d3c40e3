// Package verseref resolves free-form Quran references and computes
// verse-to-verse similarity, fully in process.
package verseref

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/ayatlab/verseref/internal/db/redis"
	"github.com/ayatlab/verseref/internal/repository/corpus"
	"github.com/ayatlab/verseref/internal/repository/simcache"
	"github.com/ayatlab/verseref/internal/resolver"
	"github.com/ayatlab/verseref/internal/similarity"
	resolveuc "github.com/ayatlab/verseref/internal/usecase/resolve"
	similaruc "github.com/ayatlab/verseref/internal/usecase/similar"
	versesuc "github.com/ayatlab/verseref/internal/usecase/verses"
)

const defaultCacheReadiness = 10 * time.Second

// Client is the verseref SDK entry point. Safe for concurrent use.
type Client struct {
	idx        *corpus.Index
	store      interface{ Close() }
	resolveSvc *resolveuc.Service
	similarSvc *similaruc.Service
	versesSvc  *versesuc.Service
}

// New loads the corpus and wires the engine. A corpus source is
// required (use WithCorpusPath or WithCorpusReader).
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{requireComplete: true}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	idx, err := loadCorpus(cfg)
	if err != nil {
		return nil, fmt.Errorf("verseref: %w", err)
	}

	return wireClient(idx, cfg)
}

func loadCorpus(cfg *clientConfig) (*corpus.Index, error) {
	loadOpts := corpus.LoadOptions{RequireComplete: cfg.requireComplete}
	switch {
	case cfg.corpusReader != nil:
		return corpus.Load(cfg.corpusReader, loadOpts)
	case cfg.corpusPath != "":
		return corpus.LoadFile(cfg.corpusPath, loadOpts)
	default:
		return nil, errors.New("corpus source required (use WithCorpusPath or WithCorpusReader)")
	}
}

func wireClient(idx *corpus.Index, cfg *clientConfig) (*Client, error) {
	c := &Client{
		idx:        idx,
		resolveSvc: resolveuc.New(idx, resolver.New(idx), cfg.logger),
		versesSvc:  versesuc.New(idx),
	}

	engine := similarity.New(idx)
	if cfg.workers > 0 {
		engine = engine.WithWorkers(cfg.workers)
	}
	c.similarSvc = similaruc.New(engine, cfg.logger)

	if len(cfg.cacheAddrs) > 0 {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Username: cfg.cacheUsername,
			Password: cfg.cachePassword,
			DB:       cfg.cacheDB,
		})
		if err != nil {
			return nil, fmt.Errorf("verseref: create cache store: %w", err)
		}
		if err := store.WaitForReady(context.Background(), defaultCacheReadiness); err != nil {
			store.Close()
			return nil, fmt.Errorf("verseref: cache not ready: %w", err)
		}
		cache := simcache.New(store, cfg.logger)
		if cfg.cacheTTL > 0 {
			cache = cache.WithTTL(cfg.cacheTTL)
		}
		c.store = store
		c.similarSvc = c.similarSvc.WithCache(cache)
	}

	return c, nil
}

// Close releases the cache connection, if any.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// VerseCount returns the number of loaded verses.
func (c *Client) VerseCount() int {
	return c.idx.Len()
}

// Resolve classifies raw user input and returns a resolution decision.
func (c *Client) Resolve(ctx context.Context, query string) (ResolveResult, error) {
	res, err := c.resolveSvc.Resolve(ctx, query)
	if err != nil {
		return ResolveResult{}, fmt.Errorf("resolve: %w", err)
	}
	return resolveResultFromDomain(res), nil
}

// Verse returns the verse at (surah, ayah).
func (c *Client) Verse(ctx context.Context, surah, ayah int) (Verse, error) {
	v, err := c.versesSvc.Verse(ctx, surah, ayah)
	if err != nil {
		return Verse{}, fmt.Errorf("verse: %w", err)
	}
	return verseFromDomain(v), nil
}

// Surahs returns the canonical 114-surah table.
func (c *Client) Surahs(ctx context.Context) ([]SurahInfo, error) {
	infos, err := c.versesSvc.Surahs(ctx)
	if err != nil {
		return nil, fmt.Errorf("surahs: %w", err)
	}
	out := make([]SurahInfo, len(infos))
	for i, s := range infos {
		out[i] = SurahInfo{
			Number: s.Number,
			Ayahs:  s.Ayahs,
			NameAr: s.NameAr,
			NameEn: s.NameEn,
		}
	}
	return out, nil
}

// Similar starts a fluent similarity query for the verse at (surah, ayah).
func (c *Client) Similar(surah, ayah int) *SimilarBuilder {
	return &SimilarBuilder{client: c, surah: surah, ayah: ayah}
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	corpusPath      string
	corpusReader    io.Reader
	requireComplete bool
	workers         int
	logger          *zap.Logger

	cacheAddrs    []string
	cacheUsername string
	cachePassword string
	cacheDB       int
	cacheTTL      time.Duration
}

// WithCorpusPath loads the verse dataset from a JSON file.
func WithCorpusPath(path string) Option {
	return func(c *clientConfig) { c.corpusPath = path }
}

// WithCorpusReader loads the verse dataset from r.
func WithCorpusReader(r io.Reader) Option {
	return func(c *clientConfig) { c.corpusReader = r }
}

// WithPartialCorpus accepts datasets that do not cover all 6236 verses.
func WithPartialCorpus() Option {
	return func(c *clientConfig) { c.requireComplete = false }
}

// WithWorkers sets the similarity scan parallelism (default GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(c *clientConfig) { c.workers = n }
}

// WithLogger attaches a zap logger (default: no-op).
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithRedisCache enables the similarity response cache.
func WithRedisCache(addrs []string, password string) Option {
	return func(c *clientConfig) {
		c.cacheAddrs = addrs
		c.cachePassword = password
	}
}

// WithCacheTTL overrides the cache entry lifetime.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) { c.cacheTTL = ttl }
}
