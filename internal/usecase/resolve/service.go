// Package resolve orchestrates the disambiguation flow: normalizer →
// reference parser → text resolver → decision policy.
package resolve

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/metrics"
	"github.com/ayatlab/verseref/internal/normalize"
	"github.com/ayatlab/verseref/internal/policy"
	"github.com/ayatlab/verseref/internal/refparse"
)

// Service resolves arbitrary user input to verse addresses.
type Service struct {
	corpus   CorpusReader
	resolver CandidateResolver
	logger   *zap.Logger
}

// New creates a resolution service.
func New(corpus CorpusReader, resolver CandidateResolver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{corpus: corpus, resolver: resolver, logger: logger}
}

// Resolve classifies raw input and returns a decision with candidates.
// Free text whose normalized form is under the minimum length returns
// domain.ErrInputTooShort; everything else downgrades gracefully to a
// not-found decision rather than failing.
func (s *Service) Resolve(ctx context.Context, raw string) (domain.ResolveResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ResolveResult{}, err
	}
	start := time.Now()

	normalized := normalize.Normalize(raw)
	result, err := s.resolveNormalized(normalized)
	if err != nil {
		return domain.ResolveResult{}, err
	}

	result.QueryOriginal = strings.TrimSpace(raw)
	result.QueryNormalized = normalized

	metrics.ResolveDecisionsTotal.WithLabelValues(string(result.Decision)).Inc()
	metrics.ResolveDuration.Observe(time.Since(start).Seconds())

	s.logger.Debug("resolved query",
		zap.String("normalized", normalized),
		zap.String("decision", string(result.Decision)),
		zap.Int("candidates", len(result.Candidates)),
	)
	return result, nil
}

func (s *Service) resolveNormalized(normalized string) (domain.ResolveResult, error) {
	ref := refparse.Parse(normalized, s.corpus)

	if addr, ok := ref.Address(); ok {
		// A structured reference with an out-of-range ayah is an
		// honest miss, not a request error.
		v, loaded := s.corpus.Verse(addr)
		if !s.corpus.ValidAddress(addr) || !loaded {
			return domain.ResolveResult{Decision: domain.DecisionNotFound}, nil
		}
		best := domain.Candidate{
			Address:    v.Address,
			Snippet:    v.Text,
			Confidence: 1.0,
			MatchType:  domain.MatchExact,
		}
		return domain.ResolveResult{
			Decision:  domain.DecisionAuto,
			BestMatch: &best,
		}, nil
	}

	candidates, err := s.resolver.Resolve(ref.Text())
	if err != nil {
		return domain.ResolveResult{}, err
	}
	return policy.Decide(candidates, normalized), nil
}
