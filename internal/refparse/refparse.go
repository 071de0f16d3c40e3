// Package refparse turns normalized query text into a structured verse
// reference when one of the three reference grammars applies, and
// classifies everything else as free text for the resolver.
package refparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ayatlab/verseref/internal/domain"
)

// AliasTable resolves surah name variants to surah numbers.
type AliasTable interface {
	AliasLookup(name string) (int, bool)
}

// Reference is the tagged parse result: either a structured verse
// address or free text. The zero value is empty free text.
type Reference struct {
	addr       domain.VerseAddress
	text       string
	structured bool
}

// Structured wraps a verse address.
func Structured(addr domain.VerseAddress) Reference {
	return Reference{addr: addr, structured: true}
}

// FreeText wraps unparsed query text.
func FreeText(text string) Reference {
	return Reference{text: text}
}

// Address returns the parsed address and whether the reference is
// structured.
func (r Reference) Address() (domain.VerseAddress, bool) {
	return r.addr, r.structured
}

// Text returns the free-text payload ("" for structured references).
func (r Reference) Text() string { return r.text }

// Reference grammars. Separators between surah and ayah are ':', ',',
// the Arabic comma '،', '-', or whitespace.
var (
	numericPairRe = regexp.MustCompile(`^(\d{1,3})(?:\s*[:,،-]\s*|\s+)(\d{1,3})$`)
	nameNumberRe  = regexp.MustCompile(`^([^\d]+?)[\s:,،-]+(\d{1,3})$`)
	bareNumberRe  = regexp.MustCompile(`^\d{1,3}$`)
)

// articleVariants are the transliterated article prefixes stripped on
// alias lookup retry.
var articleVariants = []string{"al-", "al ", "el-", "el ", "ال"}

// Parse attempts the three structured grammars in order: numeric pair,
// surah name + ayah number, bare surah number. Inputs matching none of
// them come back as free text.
//
// The ayah upper bound is deliberately not checked here; the corpus
// index owns the canonical per-surah counts and out-of-range ayahs
// surface downstream as a not-found outcome.
func Parse(normalized string, aliases AliasTable) Reference {
	s := strings.TrimSpace(normalized)
	if s == "" {
		return FreeText("")
	}

	if m := numericPairRe.FindStringSubmatch(s); m != nil {
		surah, _ := strconv.Atoi(m[1])
		ayah, _ := strconv.Atoi(m[2])
		if addr, err := domain.NewVerseAddress(surah, ayah); err == nil {
			return Structured(addr)
		}
		return FreeText(s)
	}

	if m := nameNumberRe.FindStringSubmatch(s); m != nil {
		if surah, ok := lookupName(strings.TrimSpace(m[1]), aliases); ok {
			ayah, _ := strconv.Atoi(m[2])
			if addr, err := domain.NewVerseAddress(surah, ayah); err == nil {
				return Structured(addr)
			}
		}
		return FreeText(s)
	}

	if bareNumberRe.MatchString(s) {
		// A bare number N in 1..114 reads as "surah N, ayah 1".
		if n, _ := strconv.Atoi(s); n >= domain.MinSurah && n <= domain.MaxSurah {
			return Structured(domain.VerseAddress{Surah: n, Ayah: 1})
		}
		return FreeText(s)
	}

	return FreeText(s)
}

// lookupName resolves a surah name, retrying with article prefixes
// stripped when the direct lookup misses.
func lookupName(name string, aliases AliasTable) (int, bool) {
	if n, ok := aliases.AliasLookup(name); ok {
		return n, true
	}
	lower := strings.ToLower(name)
	for _, p := range articleVariants {
		if rest, ok := strings.CutPrefix(lower, p); ok && rest != "" {
			if n, ok := aliases.AliasLookup(rest); ok {
				return n, true
			}
		}
	}
	return 0, false
}
