package similar

import (
	"context"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/domain/simquery"
)

// Engine computes similarity match sets.
type Engine interface {
	Similar(ctx context.Context, addr domain.VerseAddress, req *simquery.Request) (domain.SimilarityResponse, error)
}

// ResponseCache stores computed similarity responses. Misses are
// normal; cache failures must never fail the request.
type ResponseCache interface {
	Get(ctx context.Context, addr domain.VerseAddress, req *simquery.Request) (domain.SimilarityResponse, bool)
	Set(ctx context.Context, addr domain.VerseAddress, req *simquery.Request, resp domain.SimilarityResponse)
}
