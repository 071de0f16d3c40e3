package simquery

import (
	"fmt"

	"github.com/ayatlab/verseref/internal/domain"
)

// Similarity query limits.
const (
	DefaultTopK = 50
	MaxTopK     = 500
)

// Request is a validated similarity query.
type Request struct {
	topK            int
	minScore        float64
	theme           string
	connectionType  domain.ConnectionType
	excludeSameSura bool
}

// New validates and normalizes similarity query parameters.
// Defaults: topK=50, minScore=0. TopK is clamped to MaxTopK.
func New(
	topK int,
	minScore float64,
	theme string,
	connectionType string,
	excludeSameSura bool,
) (Request, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}
	if minScore < 0 || minScore > 1 {
		return Request{}, fmt.Errorf("min_score must be between 0 and 1, got %g", minScore)
	}
	ct := domain.ConnectionType(connectionType)
	if connectionType != "" && !ct.IsValid() {
		return Request{}, fmt.Errorf("invalid connection_type: %q", connectionType)
	}

	return Request{
		topK:            topK,
		minScore:        minScore,
		theme:           theme,
		connectionType:  ct,
		excludeSameSura: excludeSameSura,
	}, nil
}

// TopK returns the maximum number of matches to return.
func (r *Request) TopK() int { return r.topK }

// MinScore returns the minimum combined score threshold.
func (r *Request) MinScore() float64 { return r.minScore }

// Theme returns the theme filter ("" = no filter).
func (r *Request) Theme() string { return r.theme }

// ConnectionType returns the connection type filter ("" = no filter).
func (r *Request) ConnectionType() domain.ConnectionType { return r.connectionType }

// ExcludeSameSura reports whether matches from the source surah are excluded.
func (r *Request) ExcludeSameSura() bool { return r.excludeSameSura }

// CacheKeyFields returns a stable textual rendering of all parameters,
// used by the response cache to build its key.
func (r *Request) CacheKeyFields() string {
	return fmt.Sprintf("k=%d|s=%g|t=%s|c=%s|x=%t",
		r.topK, r.minScore, r.theme, r.connectionType, r.excludeSameSura)
}
