package matching

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/stevenslegal/saksmatch/pkg/normalize"
)

// Scorer computes the hybrid similarity score between two strings.
type Scorer struct{}

// NewScorer creates a new Scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Similarity returns a score in [0,1]. Exact matches of the cleaned forms
// score 1; containment of a cleaned form of five or more characters scores
// 0.98; otherwise the score is the larger of the token-set Jaccard index and
// 0.85 times the coverage of the smaller token set. The containment and
// coverage terms reward a short firm name buried in a longer case string,
// where a pure Jaccard score would be depressed by the token-count
// imbalance.
func (s *Scorer) Similarity(a, b string) float64 {
	ac := normalize.Normalize(normalize.StripLegalSuffix(a))
	bc := normalize.Normalize(normalize.StripLegalSuffix(b))
	if ac == "" || bc == "" {
		return 0
	}
	if ac == bc {
		return 1
	}
	if utf8.RuneCountInString(ac) >= 5 && (strings.Contains(bc, ac) || strings.Contains(ac, bc)) {
		return 0.98
	}

	at := normalize.TokenSet(a)
	bt := normalize.TokenSet(b)
	if len(at) == 0 || len(bt) == 0 {
		return 0
	}

	inter := 0
	for t := range at {
		if _, ok := bt[t]; ok {
			inter++
		}
	}
	union := len(at) + len(bt) - inter
	jaccard := float64(inter) / float64(union)
	coverage := float64(inter) / float64(min(len(at), len(bt)))

	return math.Max(jaccard, 0.85*coverage)
}
