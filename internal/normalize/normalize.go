// Package normalize canonicalizes user input and corpus text for
// matching: tashkīl stripping, Arabic-Indic digit mapping, whitespace
// collapsing, and the alias-key folding used by the surah name table.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// tashkil covers the Arabic marks stripped before matching: Quranic
// annotation signs (U+0610..U+061A), tatweel (U+0640), the harakat and
// tanwīn block (U+064B..U+065F), the dagger alif (U+0670), and the
// small high/low marks of mushaf typography (U+06D6..U+06ED).
// Base letters are never touched.
var tashkil = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061A, Stride: 1},
		{Lo: 0x0640, Hi: 0x0640, Stride: 1},
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06ED, Stride: 1},
	},
}

var stripMarks = runes.Remove(runes.In(tashkil))

const surahPrefix = "سورة"

// Normalize canonicalizes raw query input: strips tashkīl, maps
// Arabic-Indic digits to Latin, collapses whitespace, and drops a
// leading «سورة» token. Always returns a string, possibly empty.
func Normalize(raw string) string {
	s := strings.Map(latinDigit, StripDiacritics(raw))
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == surahPrefix {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// Text canonicalizes corpus verse text: tashkīl stripping and
// whitespace collapsing only. Unlike Normalize it keeps a leading
// «سورة» word (verse 24:1 begins with it).
func Text(raw string) string {
	return strings.Join(strings.Fields(StripDiacritics(raw)), " ")
}

// StripDiacritics removes tashkīl marks without altering base letters.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// runes.Remove cannot fail on valid UTF-8; keep the input on
		// malformed byte sequences rather than dropping it.
		return s
	}
	return out
}

// Tokens splits normalized text into its whitespace-delimited words.
func Tokens(s string) []string {
	return strings.Fields(s)
}

// Key folds a surah name into its alias-table form: Normalize, then
// lowercase (for transliterations) and hamza-variant alif unification
// (أ, إ, آ, ٱ → ا) so dictation variants hit the same entry.
func Key(name string) string {
	s := strings.ToLower(Normalize(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case 'أ', 'إ', 'آ', 'ٱ':
			return 'ا'
		}
		return r
	}, s)
}

// latinDigit maps Arabic-Indic (٠..٩) and Eastern Arabic-Indic (۰..۹)
// digits to their Latin equivalents; other runes pass through.
func latinDigit(r rune) rune {
	switch {
	case r >= 0x0660 && r <= 0x0669:
		return '0' + (r - 0x0660)
	case r >= 0x06F0 && r <= 0x06F9:
		return '0' + (r - 0x06F0)
	}
	return r
}
