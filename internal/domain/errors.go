package domain

import "errors"

var (
	// ErrInputTooShort signals free-text input whose normalized form is
	// under the minimum match length. Malformed input, not a failed match.
	ErrInputTooShort = errors.New("input too short")
	// ErrInvalidReference signals a structurally valid reference that
	// points outside the corpus (surah out of 1..114, or ayah past the
	// surah's verse count).
	ErrInvalidReference = errors.New("invalid verse reference")
	// ErrCorpusUnavailable signals that the canonical verse dataset could
	// not be loaded. Fatal at startup: the engine refuses to serve from a
	// partial or empty index.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
	// ErrVerseNotFound signals a lookup of an address absent from the
	// loaded corpus.
	ErrVerseNotFound = errors.New("verse not found")
)
