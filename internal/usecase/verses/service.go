// Package verses exposes the plain corpus reads the surrounding UI
// needs: single-verse lookup and the surah table for pickers.
package verses

import (
	"context"
	"fmt"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/repository/corpus"
)

// CorpusReader is the corpus surface for plain reads.
type CorpusReader interface {
	ValidAddress(addr domain.VerseAddress) bool
	Verse(addr domain.VerseAddress) (domain.Verse, bool)
}

// Service serves verse and surah lookups.
type Service struct {
	corpus CorpusReader
}

// New creates a verse lookup service.
func New(corpus CorpusReader) *Service {
	return &Service{corpus: corpus}
}

// Verse returns the verse at (surah, ayah). Out-of-range addresses
// signal domain.ErrInvalidReference.
func (s *Service) Verse(ctx context.Context, surah, ayah int) (domain.Verse, error) {
	if err := ctx.Err(); err != nil {
		return domain.Verse{}, err
	}
	addr, err := domain.NewVerseAddress(surah, ayah)
	if err != nil {
		return domain.Verse{}, err
	}
	if !s.corpus.ValidAddress(addr) {
		return domain.Verse{}, fmt.Errorf("%w: %s", domain.ErrInvalidReference, addr)
	}
	v, ok := s.corpus.Verse(addr)
	if !ok {
		return domain.Verse{}, fmt.Errorf("%w: %s", domain.ErrVerseNotFound, addr)
	}
	return v, nil
}

// Surahs returns the canonical surah table.
func (s *Service) Surahs(ctx context.Context) ([]corpus.SurahInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return corpus.Surahs(), nil
}
