// Package policy decides whether ranked candidates are trustworthy
// enough to act on without asking the user. The thresholds err toward
// asking: the engine must never silently commit to a wrong guess.
package policy

import (
	"strings"
	"unicode/utf8"

	"github.com/ayatlab/verseref/internal/domain"
)

// Decision thresholds.
const (
	// AutoConfidence is the minimum top-candidate confidence for an
	// automatic resolution of a non-exact match.
	AutoConfidence = 0.85
	// AutoGap is the minimum lead over the runner-up; near-ties always
	// go to the user.
	AutoGap = 0.15
	// ChoiceConfidence is the floor below which a candidate is not
	// worth showing at all.
	ChoiceConfidence = 0.3
	// AutoMinTokens / AutoMinRunes gate automatic resolution by input
	// substance: a four-character query never auto-resolves, however
	// confident the scorer is.
	AutoMinTokens = 3
	AutoMinRunes  = 15
)

// Decide classifies ranked candidates into an auto / needs-user-choice
// / not-found outcome. Candidates must be ordered descending by
// confidence. The query fields of the result are left for the caller.
func Decide(candidates []domain.Candidate, normalized string) domain.ResolveResult {
	if len(candidates) == 0 {
		return domain.ResolveResult{Decision: domain.DecisionNotFound}
	}

	top := candidates[0]
	if top.MatchType == domain.MatchExact {
		return domain.ResolveResult{
			Decision:  domain.DecisionAuto,
			BestMatch: &top,
		}
	}

	if top.Confidence >= AutoConfidence && leadsBy(candidates, AutoGap) && substantial(normalized) {
		return domain.ResolveResult{
			Decision:  domain.DecisionAuto,
			BestMatch: &top,
		}
	}

	if top.Confidence >= ChoiceConfidence {
		return domain.ResolveResult{
			Decision:   domain.DecisionNeedsUserChoice,
			Candidates: candidates,
		}
	}

	return domain.ResolveResult{Decision: domain.DecisionNotFound}
}

// leadsBy reports whether the top candidate leads the runner-up by at
// least gap (trivially true for a single candidate).
func leadsBy(candidates []domain.Candidate, gap float64) bool {
	if len(candidates) < 2 {
		return true
	}
	return candidates[0].Confidence-candidates[1].Confidence >= gap
}

// substantial reports whether the normalized input carries enough
// signal for an automatic decision: at least AutoMinTokens tokens or
// AutoMinRunes characters.
func substantial(normalized string) bool {
	if len(strings.Fields(normalized)) >= AutoMinTokens {
		return true
	}
	return utf8.RuneCountInString(normalized) >= AutoMinRunes
}
