// Package similar wraps the similarity engine with caching and
// instrumentation.
package similar

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/domain/simquery"
	"github.com/ayatlab/verseref/internal/metrics"
)

// Service serves similarity queries.
type Service struct {
	engine Engine
	cache  ResponseCache
	logger *zap.Logger
}

// New creates a similarity service.
func New(engine Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{engine: engine, logger: logger}
}

// WithCache attaches a response cache.
func (s *Service) WithCache(cache ResponseCache) *Service {
	s.cache = cache
	return s
}

// Similar returns the ranked similarity matches for addr, serving from
// the response cache when possible.
func (s *Service) Similar(
	ctx context.Context, addr domain.VerseAddress, req *simquery.Request,
) (domain.SimilarityResponse, error) {
	if s.cache != nil {
		if resp, ok := s.cache.Get(ctx, addr, req); ok {
			metrics.SimilarityCacheTotal.WithLabelValues("hit").Inc()
			return resp, nil
		}
		metrics.SimilarityCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	resp, err := s.engine.Similar(ctx, addr, req)
	if err != nil {
		return domain.SimilarityResponse{}, err
	}
	metrics.SimilarityDuration.Observe(time.Since(start).Seconds())

	s.logger.Debug("similarity scan",
		zap.String("source", addr.String()),
		zap.Int("total", resp.TotalSimilar),
		zap.Int("returned", len(resp.Matches)),
		zap.Int64("ms", resp.SearchTimeMs),
	)

	if s.cache != nil {
		s.cache.Set(ctx, addr, req, resp)
	}
	return resp, nil
}
