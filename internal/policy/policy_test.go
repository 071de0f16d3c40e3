package policy

import (
	"reflect"
	"testing"

	"github.com/ayatlab/verseref/internal/domain"
)

func cand(surah, ayah int, conf float64, mt domain.MatchType) domain.Candidate {
	return domain.Candidate{
		Address:    domain.VerseAddress{Surah: surah, Ayah: ayah},
		Confidence: conf,
		MatchType:  mt,
	}
}

const longQuery = "بسم الله الرحمن الرحيم الحمد لله"

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		candidates []domain.Candidate
		normalized string
		want       domain.Decision
	}{
		{
			name:       "no candidates",
			candidates: nil,
			normalized: longQuery,
			want:       domain.DecisionNotFound,
		},
		{
			name:       "exact match always auto",
			candidates: []domain.Candidate{cand(112, 1, 1.0, domain.MatchExact)},
			normalized: "قل هو الله احد",
			want:       domain.DecisionAuto,
		},
		{
			name: "high confidence with clear lead",
			candidates: []domain.Candidate{
				cand(1, 1, 0.9, domain.MatchPartial),
				cand(1, 3, 0.5, domain.MatchPartial),
			},
			normalized: longQuery,
			want:       domain.DecisionAuto,
		},
		{
			name: "near tie goes to the user",
			candidates: []domain.Candidate{
				cand(1, 1, 0.9, domain.MatchPartial),
				cand(1, 3, 0.85, domain.MatchPartial),
			},
			normalized: longQuery,
			want:       domain.DecisionNeedsUserChoice,
		},
		{
			name: "confidence below auto threshold",
			candidates: []domain.Candidate{
				cand(1, 1, 0.7, domain.MatchPartial),
			},
			normalized: longQuery,
			want:       domain.DecisionNeedsUserChoice,
		},
		{
			name: "short input never auto-resolves fuzzily",
			candidates: []domain.Candidate{
				cand(1, 1, 0.99, domain.MatchFuzzy),
			},
			normalized: "الله",
			want:       domain.DecisionNeedsUserChoice,
		},
		{
			name: "everything below choice floor",
			candidates: []domain.Candidate{
				cand(1, 1, 0.2, domain.MatchFuzzy),
				cand(1, 2, 0.1, domain.MatchFuzzy),
			},
			normalized: longQuery,
			want:       domain.DecisionNotFound,
		},
		{
			name: "single substantial candidate leads trivially",
			candidates: []domain.Candidate{
				cand(55, 1, 0.9, domain.MatchPartial),
			},
			normalized: longQuery,
			want:       domain.DecisionAuto,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.candidates, tt.normalized)
			if got.Decision != tt.want {
				t.Fatalf("Decide = %q, want %q", got.Decision, tt.want)
			}
			// Structural invariants of the result.
			if (got.BestMatch != nil) != (got.Decision == domain.DecisionAuto) {
				t.Error("BestMatch must be set exactly for auto decisions")
			}
			if (len(got.Candidates) > 0) != (got.Decision == domain.DecisionNeedsUserChoice) {
				t.Error("Candidates must be set exactly for needs_user_choice decisions")
			}
		})
	}
}

func TestDecide_BestMatchIsTopCandidate(t *testing.T) {
	top := cand(36, 1, 0.95, domain.MatchPartial)
	got := Decide([]domain.Candidate{top, cand(36, 2, 0.4, domain.MatchFuzzy)}, longQuery)
	if got.BestMatch == nil || !reflect.DeepEqual(*got.BestMatch, top) {
		t.Errorf("BestMatch = %+v, want top candidate", got.BestMatch)
	}
}

func TestSubstantial(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"الله", false},                    // one short token
		{"قل هو الله", true},               // three tokens
		{"اعوذ برب", false},                // two tokens, short
		{"بسمللهالرحمنالرحيمالحمد", true},  // one long token over the rune floor
		{"", false},
	}
	for _, tt := range tests {
		if got := substantial(tt.in); got != tt.want {
			t.Errorf("substantial(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
