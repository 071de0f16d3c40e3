package verseref

import "github.com/ayatlab/verseref/internal/domain"

// Sentinel errors, re-exported for errors.Is checks.
var (
	ErrInputTooShort     = domain.ErrInputTooShort
	ErrInvalidReference  = domain.ErrInvalidReference
	ErrVerseNotFound     = domain.ErrVerseNotFound
	ErrCorpusUnavailable = domain.ErrCorpusUnavailable
)
