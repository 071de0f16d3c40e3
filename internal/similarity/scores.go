package similarity

import (
	"math"
	"sort"

	"github.com/ayatlab/verseref/internal/domain"
)

// Combined-score weights, one per sub-metric, summing to 1.0. Policy
// constants: fixed across queries so rankings are reproducible.
const (
	weightJaccard        = 0.25
	weightCosine         = 0.20
	weightConceptOverlap = 0.15
	weightGrammatical    = 0.10
	weightSemantic       = 0.15
	weightRootBased      = 0.15
)

// Grammatical metric split: structure-class agreement vs shared roles.
const (
	grammarStructureWeight = 0.6
	grammarRolesWeight     = 0.4
)

// scoreVerses computes the six sub-scores and their weighted
// combination for a source/target verse pair.
func scoreVerses(src, dst domain.Verse, srcTokens, dstTokens map[string]struct{}) domain.SimilarityScores {
	s := domain.SimilarityScores{
		Jaccard:        jaccardSets(srcTokens, dstTokens),
		Cosine:         cosineTF(src.Tokens, dst.Tokens),
		ConceptOverlap: overlapCoefficient(src.Themes, dst.Themes),
		Grammatical:    grammatical(src, dst),
		Semantic:       overlapCoefficient(src.SemanticFields, dst.SemanticFields),
		RootBased:      jaccardSlices(src.Roots, dst.Roots),
	}
	s.Combined = weightJaccard*s.Jaccard +
		weightCosine*s.Cosine +
		weightConceptOverlap*s.ConceptOverlap +
		weightGrammatical*s.Grammatical +
		weightSemantic*s.Semantic +
		weightRootBased*s.RootBased
	return s
}

// jaccardSets is |A∩B| / |A∪B| over prebuilt sets.
func jaccardSets(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// jaccardSlices is jaccardSets over slices with duplicates collapsed.
func jaccardSlices(a, b []string) float64 {
	return jaccardSets(toSet(a), toSet(b))
}

// cosineTF is the cosine similarity of the term-frequency vectors of
// two token sequences.
func cosineTF(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	fa := termFreq(a)
	fb := termFreq(b)

	var dot, na, nb float64
	for t, ca := range fa {
		if cb, ok := fb[t]; ok {
			dot += float64(ca) * float64(cb)
		}
		na += float64(ca) * float64(ca)
	}
	for _, cb := range fb {
		nb += float64(cb) * float64(cb)
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// overlapCoefficient is |A∩B| / min(|A|,|B|) over tag slices: full
// containment of the smaller tag set counts as total overlap.
func overlapCoefficient(a, b []string) float64 {
	sa, sb := toSet(a), toSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter++
		}
	}
	return float64(inter) / float64(min(len(sa), len(sb)))
}

// grammatical scores sentence-structure agreement plus shared
// grammatical roles.
func grammatical(a, b domain.Verse) float64 {
	s := 0.0
	if a.Structure != "" && a.Structure == b.Structure {
		s += grammarStructureWeight
	}
	s += grammarRolesWeight * jaccardSlices(a.Roles, b.Roles)
	return s
}

// sharedSorted returns the sorted intersection of two tag slices.
func sharedSorted(a, b []string) []string {
	sb := toSet(b)
	seen := make(map[string]struct{})
	var out []string
	for _, t := range a {
		if _, ok := sb[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, t := range items {
		set[t] = struct{}{}
	}
	return set
}

func termFreq(tokens []string) map[string]int {
	f := make(map[string]int, len(tokens))
	for _, t := range tokens {
		f[t]++
	}
	return f
}
