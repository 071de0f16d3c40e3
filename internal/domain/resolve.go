package domain

// MaxCandidates caps the candidate list exposed for disambiguation.
const MaxCandidates = 5

// MatchType classifies how a candidate was matched.
type MatchType string

// Match types.
const (
	MatchExact   MatchType = "exact"
	MatchFuzzy   MatchType = "fuzzy"
	MatchPartial MatchType = "partial"
)

// Decision is the outcome of the resolution decision policy.
type Decision string

// Decisions.
const (
	DecisionAuto            Decision = "auto"
	DecisionNeedsUserChoice Decision = "needs_user_choice"
	DecisionNotFound        Decision = "not_found"
)

// Span is a half-open [Start, End) rune range into a verse's normalized
// text that contributed to a match. Best-effort, for UI highlighting.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Candidate is one possible verse for a resolution query. Ephemeral:
// produced per request, ordered descending by confidence.
type Candidate struct {
	Address        VerseAddress `json:"address"`
	Snippet        string       `json:"text_snippet"`
	Confidence     float64      `json:"confidence"`
	MatchType      MatchType    `json:"match_type"`
	HighlightSpans []Span       `json:"highlight_spans,omitempty"`
}

// ResolveResult is the full outcome of a resolution request.
//
// Invariants: BestMatch is non-nil iff Decision == DecisionAuto, and
// Candidates is non-empty iff Decision == DecisionNeedsUserChoice.
type ResolveResult struct {
	QueryOriginal   string      `json:"query_original"`
	QueryNormalized string      `json:"query_normalized"`
	Decision        Decision    `json:"decision"`
	BestMatch       *Candidate  `json:"best_match,omitempty"`
	Candidates      []Candidate `json:"candidates,omitempty"`
}
