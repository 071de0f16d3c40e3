package domain

// ConnectionType names the dominant relation between two verses. Each
// type corresponds to one similarity sub-metric.
type ConnectionType string

// Connection types, in tie-break priority order (highest first).
const (
	ConnectionLexical     ConnectionType = "lexical"      // token jaccard
	ConnectionThematic    ConnectionType = "thematic"     // tf cosine
	ConnectionConceptual  ConnectionType = "conceptual"   // concept tag overlap
	ConnectionGrammatical ConnectionType = "grammatical"  // structure + roles
	ConnectionSemantic    ConnectionType = "semantic"     // semantic field overlap
	ConnectionRootBased   ConnectionType = "root_based"   // root jaccard
)

// IsValid reports whether t is a known connection type.
func (t ConnectionType) IsValid() bool {
	switch t {
	case ConnectionLexical, ConnectionThematic, ConnectionConceptual,
		ConnectionGrammatical, ConnectionSemantic, ConnectionRootBased:
		return true
	}
	return false
}

// ConnectionStrength buckets a combined score.
type ConnectionStrength string

// Strength buckets: Strong >= 0.6, Moderate 0.3..0.6, Weak < 0.3.
const (
	StrengthStrong   ConnectionStrength = "strong"
	StrengthModerate ConnectionStrength = "moderate"
	StrengthWeak     ConnectionStrength = "weak"
)

// SimilarityScores holds the six sub-scores and their weighted
// combination, each in [0, 1].
type SimilarityScores struct {
	Jaccard        float64 `json:"jaccard"`
	Cosine         float64 `json:"cosine"`
	ConceptOverlap float64 `json:"concept_overlap"`
	Grammatical    float64 `json:"grammatical"`
	Semantic       float64 `json:"semantic"`
	RootBased      float64 `json:"root_based"`
	Combined       float64 `json:"combined"`
}

// SimilarityMatch relates one corpus verse to the source verse.
// Derived per query; never persisted.
type SimilarityMatch struct {
	Address      VerseAddress       `json:"target_address"`
	Text         string             `json:"text"`
	Scores       SimilarityScores   `json:"scores"`
	Connection   ConnectionType     `json:"connection_type"`
	Strength     ConnectionStrength `json:"connection_strength"`
	SharedWords  []string           `json:"shared_words,omitempty"`
	SharedRoots  []string           `json:"shared_roots,omitempty"`
	SharedThemes []string           `json:"shared_themes,omitempty"`
}

// SimilarityResponse is the ranked, filtered match set for one source
// verse, plus aggregate facets for browsing.
type SimilarityResponse struct {
	SourceVerse     Verse                  `json:"source_verse"`
	Matches         []SimilarityMatch      `json:"matches"`
	ThemeCounts     map[string]int         `json:"theme_distribution"`
	ConnectionTypes map[ConnectionType]int `json:"connection_types"`
	TotalSimilar    int                    `json:"total_similar"`
	SearchTimeMs    int64                  `json:"search_time_ms"`
}
