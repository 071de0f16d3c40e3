package domain

// StructureClass is the sentence-structure classification of a verse,
// used by the grammatical similarity metric.
type StructureClass string

// Structure classes.
const (
	StructureVerbal        StructureClass = "verbal"
	StructureNominal       StructureClass = "nominal"
	StructureConditional   StructureClass = "conditional"
	StructureInterrogative StructureClass = "interrogative"
	StructureImperative    StructureClass = "imperative"
)

// IsValid reports whether c is a known structure class.
func (c StructureClass) IsValid() bool {
	switch c {
	case StructureVerbal, StructureNominal, StructureConditional,
		StructureInterrogative, StructureImperative:
		return true
	}
	return false
}

// Verse is a single corpus record. Owned by the corpus index and never
// mutated after load; every field is safe to read concurrently.
type Verse struct {
	Address VerseAddress `json:"address"`

	// Text is the canonical text with tashkīl; Normalized is the
	// diacritic-stripped form used for matching.
	Text       string `json:"text"`
	Normalized string `json:"normalized"`

	// Tokens are the whitespace-delimited words of Normalized, in order.
	// Duplicates are preserved here; set semantics live in the index.
	Tokens []string `json:"tokens"`

	// Roots holds the triliteral/quadriliteral roots of the verse words.
	Roots []string `json:"roots,omitempty"`

	// Themes are curated concept tags; SemanticFields are root-derived
	// semantic field tags (a distinct, coarser vocabulary).
	Themes         []string `json:"themes,omitempty"`
	SemanticFields []string `json:"semantic_fields,omitempty"`

	// Structure and Roles drive the grammatical metric.
	Structure StructureClass `json:"structure,omitempty"`
	Roles     []string       `json:"roles,omitempty"`

	SurahNameAr string `json:"surah_name_ar"`
	SurahNameEn string `json:"surah_name_en"`
}
