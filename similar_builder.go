package verseref

import (
	"context"
	"fmt"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/domain/simquery"
)

// SimilarBuilder is a fluent builder for similarity queries.
type SimilarBuilder struct {
	client *Client

	surah, ayah int

	topK            int
	minScore        float64
	theme           string
	connectionType  ConnectionType
	excludeSameSura bool
}

// TopK sets the maximum number of matches to return (default 50).
func (b *SimilarBuilder) TopK(n int) *SimilarBuilder {
	b.topK = n
	return b
}

// MinScore sets the minimum combined score threshold.
func (b *SimilarBuilder) MinScore(s float64) *SimilarBuilder {
	b.minScore = s
	return b
}

// Theme keeps only matches carrying the given theme tag.
func (b *SimilarBuilder) Theme(theme string) *SimilarBuilder {
	b.theme = theme
	return b
}

// Connection keeps only matches with the given dominant connection type.
func (b *SimilarBuilder) Connection(t ConnectionType) *SimilarBuilder {
	b.connectionType = t
	return b
}

// ExcludeSameSura drops matches from the source verse's surah.
func (b *SimilarBuilder) ExcludeSameSura() *SimilarBuilder {
	b.excludeSameSura = true
	return b
}

// Do executes the similarity query.
func (b *SimilarBuilder) Do(ctx context.Context) (SimilarityResult, error) {
	addr, err := domain.NewVerseAddress(b.surah, b.ayah)
	if err != nil {
		return SimilarityResult{}, fmt.Errorf("similar: %w", err)
	}

	req, err := simquery.New(b.topK, b.minScore, b.theme, string(b.connectionType), b.excludeSameSura)
	if err != nil {
		return SimilarityResult{}, fmt.Errorf("similar: %w", err)
	}

	resp, err := b.client.similarSvc.Similar(ctx, addr, &req)
	if err != nil {
		return SimilarityResult{}, fmt.Errorf("similar: %w", err)
	}
	return similarityResultFromDomain(resp), nil
}
