// Package similarity ranks corpus verses against a source verse across
// six independent metrics combined into one deterministic score.
package similarity

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/domain/simquery"
	"github.com/ayatlab/verseref/internal/repository/corpus"
)

// connectionPriority breaks ties when several sub-scores share the
// maximum: earlier entries win.
var connectionPriority = []domain.ConnectionType{
	domain.ConnectionLexical,
	domain.ConnectionThematic,
	domain.ConnectionConceptual,
	domain.ConnectionGrammatical,
	domain.ConnectionSemantic,
	domain.ConnectionRootBased,
}

// Engine computes ranked similarity match sets over the corpus index.
type Engine struct {
	idx     *corpus.Index
	workers int
}

// New creates a similarity engine. The corpus scan is sharded across
// GOMAXPROCS workers by default.
func New(idx *corpus.Index) *Engine {
	return &Engine{idx: idx, workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers overrides the scan parallelism (minimum 1).
func (e *Engine) WithWorkers(n int) *Engine {
	if n > 0 {
		e.workers = n
	}
	return e
}

// Similar computes the ranked, filtered similarity match set for the
// verse at addr. The scan is deterministic: identical inputs and
// options always produce identical results.
func (e *Engine) Similar(
	ctx context.Context, addr domain.VerseAddress, req *simquery.Request,
) (domain.SimilarityResponse, error) {
	start := time.Now()

	if !e.idx.ValidAddress(addr) {
		return domain.SimilarityResponse{}, fmt.Errorf(
			"%w: %s", domain.ErrInvalidReference, addr)
	}
	source, ok := e.idx.Verse(addr)
	if !ok {
		return domain.SimilarityResponse{}, fmt.Errorf(
			"%w: %s not in loaded corpus", domain.ErrVerseNotFound, addr)
	}

	matches, err := e.scan(ctx, source, req)
	if err != nil {
		return domain.SimilarityResponse{}, err
	}

	total := len(matches)
	themeCounts := make(map[string]int)
	typeCounts := make(map[domain.ConnectionType]int)
	for _, m := range matches {
		typeCounts[m.Connection]++
		if v, ok := e.idx.Verse(m.Address); ok {
			for _, t := range v.Themes {
				themeCounts[t]++
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Scores.Combined != matches[j].Scores.Combined {
			return matches[i].Scores.Combined > matches[j].Scores.Combined
		}
		return matches[i].Address.Before(matches[j].Address)
	})
	if len(matches) > req.TopK() {
		matches = matches[:req.TopK()]
	}

	return domain.SimilarityResponse{
		SourceVerse:     source,
		Matches:         matches,
		ThemeCounts:     themeCounts,
		ConnectionTypes: typeCounts,
		TotalSimilar:    total,
		SearchTimeMs:    time.Since(start).Milliseconds(),
	}, nil
}

// scan scores every candidate verse against the source, sharded across
// workers. Each shard writes disjoint slice positions, so no locking.
func (e *Engine) scan(
	ctx context.Context, source domain.Verse, req *simquery.Request,
) ([]domain.SimilarityMatch, error) {
	n := e.idx.Len()
	slots := make([]*domain.SimilarityMatch, n)

	srcTokens := toSet(source.Tokens)

	g, gctx := errgroup.WithContext(ctx)
	shard := (n + e.workers - 1) / e.workers
	for w := 0; w < e.workers; w++ {
		lo := w * shard
		hi := min(lo+shard, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for pos := lo; pos < hi; pos++ {
				if pos%512 == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				v := e.idx.At(pos)
				if v.Address == source.Address {
					continue
				}
				if req.ExcludeSameSura() && v.Address.Surah == source.Address.Surah {
					continue
				}
				if m := e.match(source, srcTokens, v, pos, req); m != nil {
					slots[pos] = m
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("similarity scan: %w", err)
	}

	matches := make([]domain.SimilarityMatch, 0, 64)
	for _, m := range slots {
		if m != nil {
			matches = append(matches, *m)
		}
	}
	return matches, nil
}

// match scores one candidate verse and applies the per-match filters.
// Returns nil when the verse is filtered out.
func (e *Engine) match(
	source domain.Verse, srcTokens map[string]struct{},
	v domain.Verse, pos int, req *simquery.Request,
) *domain.SimilarityMatch {
	scores := scoreVerses(source, v, srcTokens, e.idx.TokenSet(pos))
	if scores.Combined < req.MinScore() {
		return nil
	}
	if req.Theme() != "" && !contains(v.Themes, req.Theme()) {
		return nil
	}
	conn := connectionType(scores)
	if ct := req.ConnectionType(); ct != "" && conn != ct {
		return nil
	}

	return &domain.SimilarityMatch{
		Address:      v.Address,
		Text:         v.Text,
		Scores:       scores,
		Connection:   conn,
		Strength:     strength(scores.Combined),
		SharedWords:  sharedSorted(source.Tokens, v.Tokens),
		SharedRoots:  sharedSorted(source.Roots, v.Roots),
		SharedThemes: sharedSorted(source.Themes, v.Themes),
	}
}

// connectionType picks the sub-metric with the highest score, resolving
// ties by the fixed priority order.
func connectionType(s domain.SimilarityScores) domain.ConnectionType {
	byType := map[domain.ConnectionType]float64{
		domain.ConnectionLexical:     s.Jaccard,
		domain.ConnectionThematic:    s.Cosine,
		domain.ConnectionConceptual:  s.ConceptOverlap,
		domain.ConnectionGrammatical: s.Grammatical,
		domain.ConnectionSemantic:    s.Semantic,
		domain.ConnectionRootBased:   s.RootBased,
	}
	best := connectionPriority[0]
	for _, t := range connectionPriority[1:] {
		if byType[t] > byType[best] {
			best = t
		}
	}
	return best
}

// strength buckets a combined score: Strong >= 0.6, Moderate >= 0.3,
// Weak below.
func strength(combined float64) domain.ConnectionStrength {
	switch {
	case combined >= 0.6:
		return domain.StrengthStrong
	case combined >= 0.3:
		return domain.StrengthModerate
	default:
		return domain.StrengthWeak
	}
}

func contains(items []string, want string) bool {
	for _, t := range items {
		if t == want {
			return true
		}
	}
	return false
}
