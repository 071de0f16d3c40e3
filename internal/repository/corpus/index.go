// Package corpus holds the immutable in-memory verse index: canonical
// texts, normalized texts, token posting lists, and the surah alias
// table. Built once at startup; safe for concurrent readers with no
// locking because no writer exists after load.
package corpus

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/normalize"
)

// Index is the read-only corpus index.
type Index struct {
	verses     []domain.Verse // canonical order
	byAddress  map[domain.VerseAddress]int
	byNormText map[string]int
	tokenSets  []map[string]struct{}
	postings   map[string]*roaring.Bitmap // token -> verse positions
	aliases    map[string]int
}

// Len returns the number of loaded verses.
func (x *Index) Len() int { return len(x.verses) }

// Verses returns the verses in canonical order. The slice is shared;
// callers must treat it as read-only.
func (x *Index) Verses() []domain.Verse { return x.verses }

// At returns the verse at canonical position i.
func (x *Index) At(i int) domain.Verse { return x.verses[i] }

// Verse looks up a loaded verse by address.
func (x *Index) Verse(addr domain.VerseAddress) (domain.Verse, bool) {
	i, ok := x.byAddress[addr]
	if !ok {
		return domain.Verse{}, false
	}
	return x.verses[i], true
}

// ValidAddress reports whether addr is canon-valid: surah in 1..114 and
// ayah within the surah's canonical verse count. Independent of which
// verses are actually loaded.
func (x *Index) ValidAddress(addr domain.VerseAddress) bool {
	n := AyahCount(addr.Surah)
	return n > 0 && addr.Ayah >= 1 && addr.Ayah <= n
}

// ExactNormalized looks up a verse whose normalized text equals text.
func (x *Index) ExactNormalized(text string) (domain.Verse, bool) {
	i, ok := x.byNormText[text]
	if !ok {
		return domain.Verse{}, false
	}
	return x.verses[i], true
}

// TokenSet returns the token set of the verse at position i. Shared,
// read-only.
func (x *Index) TokenSet(i int) map[string]struct{} { return x.tokenSets[i] }

// PostingList returns the positions of verses containing token, or nil.
func (x *Index) PostingList(token string) *roaring.Bitmap {
	return x.postings[token]
}

// CandidatesForTokens returns the union of posting lists for tokens:
// every verse sharing at least one token with the query.
func (x *Index) CandidatesForTokens(tokens []string) *roaring.Bitmap {
	out := roaring.New()
	for _, t := range tokens {
		if bm := x.postings[t]; bm != nil {
			out.Or(bm)
		}
	}
	return out
}

// AliasLookup resolves a surah name variant to its number. The name is
// folded through the alias-key normalization before lookup.
func (x *Index) AliasLookup(name string) (int, bool) {
	n, ok := x.aliases[normalize.Key(name)]
	return n, ok
}
