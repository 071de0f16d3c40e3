package resolve

import "github.com/ayatlab/verseref/internal/domain"

// CorpusReader is the corpus surface the resolution flow needs: alias
// lookups for the parser and address validation for structured hits.
type CorpusReader interface {
	AliasLookup(name string) (int, bool)
	ValidAddress(addr domain.VerseAddress) bool
	Verse(addr domain.VerseAddress) (domain.Verse, bool)
}

// CandidateResolver ranks corpus verses against normalized free text.
type CandidateResolver interface {
	Resolve(normalized string) ([]domain.Candidate, error)
}
