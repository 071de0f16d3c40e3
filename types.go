package verseref

import "github.com/ayatlab/verseref/internal/domain"

// Address identifies one verse as (surah, ayah), both 1-based.
type Address struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

// Decision is the outcome of a resolution request.
type Decision string

// Decisions.
const (
	DecisionAuto            Decision = "auto"
	DecisionNeedsUserChoice Decision = "needs_user_choice"
	DecisionNotFound        Decision = "not_found"
)

// MatchType classifies how a candidate was matched.
type MatchType string

// Match types.
const (
	MatchExact   MatchType = "exact"
	MatchFuzzy   MatchType = "fuzzy"
	MatchPartial MatchType = "partial"
)

// Span is a half-open rune range into a verse's normalized text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Candidate is one possible verse for a resolution query.
type Candidate struct {
	Address        Address   `json:"address"`
	Snippet        string    `json:"text_snippet"`
	Confidence     float64   `json:"confidence"`
	MatchType      MatchType `json:"match_type"`
	HighlightSpans []Span    `json:"highlight_spans,omitempty"`
}

// ResolveResult is the full outcome of a resolution request.
// BestMatch is non-nil iff Decision == DecisionAuto, and Candidates is
// non-empty iff Decision == DecisionNeedsUserChoice.
type ResolveResult struct {
	QueryOriginal   string      `json:"query_original"`
	QueryNormalized string      `json:"query_normalized"`
	Decision        Decision    `json:"decision"`
	BestMatch       *Candidate  `json:"best_match,omitempty"`
	Candidates      []Candidate `json:"candidates,omitempty"`
}

// Verse is a single corpus record.
type Verse struct {
	Address        Address  `json:"address"`
	Text           string   `json:"text"`
	Normalized     string   `json:"normalized"`
	Tokens         []string `json:"tokens"`
	Roots          []string `json:"roots,omitempty"`
	Themes         []string `json:"themes,omitempty"`
	SemanticFields []string `json:"semantic_fields,omitempty"`
	Structure      string   `json:"structure,omitempty"`
	Roles          []string `json:"roles,omitempty"`
	SurahNameAr    string   `json:"surah_name_ar"`
	SurahNameEn    string   `json:"surah_name_en"`
}

// SurahInfo is one row of the canonical surah table.
type SurahInfo struct {
	Number int    `json:"number"`
	Ayahs  int    `json:"ayahs"`
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
}

// ConnectionType names the dominant relation between two verses.
type ConnectionType string

// Connection types.
const (
	ConnectionLexical     ConnectionType = "lexical"
	ConnectionThematic    ConnectionType = "thematic"
	ConnectionConceptual  ConnectionType = "conceptual"
	ConnectionGrammatical ConnectionType = "grammatical"
	ConnectionSemantic    ConnectionType = "semantic"
	ConnectionRootBased   ConnectionType = "root_based"
)

// ConnectionStrength buckets a combined score.
type ConnectionStrength string

// Strength buckets.
const (
	StrengthStrong   ConnectionStrength = "strong"
	StrengthModerate ConnectionStrength = "moderate"
	StrengthWeak     ConnectionStrength = "weak"
)

// Scores holds the six sub-scores and their weighted combination.
type Scores struct {
	Jaccard        float64 `json:"jaccard"`
	Cosine         float64 `json:"cosine"`
	ConceptOverlap float64 `json:"concept_overlap"`
	Grammatical    float64 `json:"grammatical"`
	Semantic       float64 `json:"semantic"`
	RootBased      float64 `json:"root_based"`
	Combined       float64 `json:"combined"`
}

// Match relates one corpus verse to the source verse.
type Match struct {
	Address      Address            `json:"target_address"`
	Text         string             `json:"text"`
	Scores       Scores             `json:"scores"`
	Connection   ConnectionType     `json:"connection_type"`
	Strength     ConnectionStrength `json:"connection_strength"`
	SharedWords  []string           `json:"shared_words,omitempty"`
	SharedRoots  []string           `json:"shared_roots,omitempty"`
	SharedThemes []string           `json:"shared_themes,omitempty"`
}

// SimilarityResult is the ranked match set for one source verse.
type SimilarityResult struct {
	SourceVerse     Verse                  `json:"source_verse"`
	Matches         []Match                `json:"matches"`
	ThemeCounts     map[string]int         `json:"theme_distribution"`
	ConnectionTypes map[ConnectionType]int `json:"connection_types"`
	TotalSimilar    int                    `json:"total_similar"`
	SearchTimeMs    int64                  `json:"search_time_ms"`
}

func addressFromDomain(a domain.VerseAddress) Address {
	return Address{Surah: a.Surah, Ayah: a.Ayah}
}

func candidateFromDomain(c domain.Candidate) Candidate {
	spans := make([]Span, len(c.HighlightSpans))
	for i, s := range c.HighlightSpans {
		spans[i] = Span{Start: s.Start, End: s.End}
	}
	if len(spans) == 0 {
		spans = nil
	}
	return Candidate{
		Address:        addressFromDomain(c.Address),
		Snippet:        c.Snippet,
		Confidence:     c.Confidence,
		MatchType:      MatchType(c.MatchType),
		HighlightSpans: spans,
	}
}

func resolveResultFromDomain(r domain.ResolveResult) ResolveResult {
	out := ResolveResult{
		QueryOriginal:   r.QueryOriginal,
		QueryNormalized: r.QueryNormalized,
		Decision:        Decision(r.Decision),
	}
	if r.BestMatch != nil {
		best := candidateFromDomain(*r.BestMatch)
		out.BestMatch = &best
	}
	if len(r.Candidates) > 0 {
		out.Candidates = make([]Candidate, len(r.Candidates))
		for i, c := range r.Candidates {
			out.Candidates[i] = candidateFromDomain(c)
		}
	}
	return out
}

func verseFromDomain(v domain.Verse) Verse {
	return Verse{
		Address:        addressFromDomain(v.Address),
		Text:           v.Text,
		Normalized:     v.Normalized,
		Tokens:         v.Tokens,
		Roots:          v.Roots,
		Themes:         v.Themes,
		SemanticFields: v.SemanticFields,
		Structure:      string(v.Structure),
		Roles:          v.Roles,
		SurahNameAr:    v.SurahNameAr,
		SurahNameEn:    v.SurahNameEn,
	}
}

func matchFromDomain(m domain.SimilarityMatch) Match {
	return Match{
		Address:      addressFromDomain(m.Address),
		Text:         m.Text,
		Scores:       Scores(m.Scores),
		Connection:   ConnectionType(m.Connection),
		Strength:     ConnectionStrength(m.Strength),
		SharedWords:  m.SharedWords,
		SharedRoots:  m.SharedRoots,
		SharedThemes: m.SharedThemes,
	}
}

func similarityResultFromDomain(r domain.SimilarityResponse) SimilarityResult {
	matches := make([]Match, len(r.Matches))
	for i, m := range r.Matches {
		matches[i] = matchFromDomain(m)
	}

	types := make(map[ConnectionType]int, len(r.ConnectionTypes))
	for k, v := range r.ConnectionTypes {
		types[ConnectionType(k)] = v
	}

	return SimilarityResult{
		SourceVerse:     verseFromDomain(r.SourceVerse),
		Matches:         matches,
		ThemeCounts:     r.ThemeCounts,
		ConnectionTypes: types,
		TotalSimilar:    r.TotalSimilar,
		SearchTimeMs:    r.SearchTimeMs,
	}
}
