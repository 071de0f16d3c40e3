// Package resolver matches free-text queries against the corpus. Three
// strategies run in a fixed order: exact normalized-text lookup, token
// overlap biased toward the query size, and character-level fuzzy
// similarity; each verse's confidence is the maximum of the latter two.
package resolver

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/normalize"
	"github.com/ayatlab/verseref/internal/repository/corpus"
)

// MinInputRunes is the minimum normalized query length.
const MinInputRunes = 3

// overlapBias weights the token-overlap denominator toward the query's
// token count, so a short query fully contained in a long verse still
// scores high: score = |I∩V| / (bias·|I| + (1-bias)·|I∪V|).
const overlapBias = 0.7

// scoreFloor drops verses whose best score is indistinguishable from
// noise before ranking.
const scoreFloor = 0.05

// Resolver ranks corpus verses against free-text queries.
type Resolver struct {
	idx *corpus.Index
}

// New creates a resolver over the given corpus index.
func New(idx *corpus.Index) *Resolver {
	return &Resolver{idx: idx}
}

// Resolve returns up to domain.MaxCandidates verses ranked descending
// by confidence, ties broken by canonical verse order. The query must
// already be normalized. Queries under MinInputRunes runes signal
// domain.ErrInputTooShort.
func (r *Resolver) Resolve(normalized string) ([]domain.Candidate, error) {
	if utf8.RuneCountInString(normalized) < MinInputRunes {
		return nil, fmt.Errorf("%w: %q has fewer than %d characters",
			domain.ErrInputTooShort, normalized, MinInputRunes)
	}

	if v, ok := r.idx.ExactNormalized(normalized); ok {
		return []domain.Candidate{{
			Address:        v.Address,
			Snippet:        v.Text,
			Confidence:     1.0,
			MatchType:      domain.MatchExact,
			HighlightSpans: []domain.Span{{Start: 0, End: utf8.RuneCountInString(v.Normalized)}},
		}}, nil
	}

	tokens := normalize.Tokens(normalized)
	inputSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		inputSet[t] = struct{}{}
	}

	type scored struct {
		pos     int
		conf    float64
		overlap float64
	}
	best := make(map[int]*scored)

	// Token overlap over verses sharing at least one token.
	shared := r.idx.CandidatesForTokens(tokens)
	it := shared.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		s := overlapScore(inputSet, r.idx.TokenSet(pos))
		if s > 0 {
			best[pos] = &scored{pos: pos, conf: s, overlap: s}
		}
	}

	// Character fuzzy over the whole corpus, pruned by the length
	// bound so distant verses cost nothing.
	queryRunes := []rune(normalized)
	for pos := 0; pos < r.idx.Len(); pos++ {
		v := r.idx.At(pos)
		bound := similarityBound(len(queryRunes), utf8.RuneCountInString(v.Normalized))
		if bound < scoreFloor {
			continue
		}
		if cur, ok := best[pos]; ok && bound <= cur.conf {
			continue
		}
		s := charSimilarity(queryRunes, []rune(v.Normalized))
		if s < scoreFloor {
			continue
		}
		if cur, ok := best[pos]; ok {
			if s > cur.conf {
				cur.conf = s
			}
		} else {
			best[pos] = &scored{pos: pos, conf: s}
		}
	}

	ranked := make([]*scored, 0, len(best))
	for _, s := range best {
		if s.conf >= scoreFloor {
			ranked = append(ranked, s)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].conf != ranked[j].conf {
			return ranked[i].conf > ranked[j].conf
		}
		return ranked[i].pos < ranked[j].pos
	})
	if len(ranked) > domain.MaxCandidates {
		ranked = ranked[:domain.MaxCandidates]
	}

	out := make([]domain.Candidate, 0, len(ranked))
	for _, s := range ranked {
		v := r.idx.At(s.pos)
		c := domain.Candidate{
			Address:    v.Address,
			Snippet:    v.Text,
			Confidence: s.conf,
		}
		// The stronger strategy names the match type.
		if s.overlap >= s.conf {
			c.MatchType = domain.MatchPartial
			c.HighlightSpans = highlightSpans(v, inputSet)
		} else {
			c.MatchType = domain.MatchFuzzy
		}
		out = append(out, c)
	}
	return out, nil
}

// overlapScore is the size-biased token overlap of the query set I and
// verse set V.
func overlapScore(input, verse map[string]struct{}) float64 {
	if len(input) == 0 || len(verse) == 0 {
		return 0
	}
	inter := 0
	for t := range input {
		if _, ok := verse[t]; ok {
			inter++
		}
	}
	if inter == 0 {
		return 0
	}
	union := len(input) + len(verse) - inter
	denom := overlapBias*float64(len(input)) + (1-overlapBias)*float64(union)
	return float64(inter) / denom
}

// highlightSpans locates the query tokens inside the verse's normalized
// text as rune ranges. Best-effort: tokens are matched positionally
// against the verse token stream.
func highlightSpans(v domain.Verse, input map[string]struct{}) []domain.Span {
	spans := make([]domain.Span, 0, len(input))
	offset := 0
	for i, tok := range v.Tokens {
		if i > 0 {
			offset++ // separating space
		}
		n := utf8.RuneCountInString(tok)
		if _, ok := input[tok]; ok {
			spans = append(spans, domain.Span{Start: offset, End: offset + n})
		}
		offset += n
	}
	return spans
}
