package matching

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/stevenslegal/saksmatch/pkg/models"
)

// Index provides ranked nearest-string queries over a fixed list of case
// texts. A nil Index means no approximate backend is installed and the
// engine scores every case text with the internal Scorer instead.
type Index interface {
	// Name identifies the backend for host display.
	Name() string
	// Query returns the case texts matching the query with score >= threshold.
	// Results are in original case order; the engine ranks them.
	Query(query string, threshold float64) ([]models.Hit, error)
}

// fuzzyIndex adapts the sahilm/fuzzy searcher. The library ranks candidates
// by its own integer score, so qualifying texts are re-scored with the
// internal Scorer before the threshold is applied.
type fuzzyIndex struct {
	texts  []string
	scorer *Scorer
}

// NewFuzzyIndex builds an approximate-string index over the given case
// texts. Returns nil for an empty list.
func NewFuzzyIndex(texts []string) Index {
	if len(texts) == 0 {
		return nil
	}
	return &fuzzyIndex{texts: texts, scorer: NewScorer()}
}

func (f *fuzzyIndex) Name() string {
	return models.ScorerFuzzyIndex
}

func (f *fuzzyIndex) Query(query string, threshold float64) ([]models.Hit, error) {
	results := fuzzy.Find(query, f.texts)

	type scored struct {
		index int
		hit   models.Hit
	}
	qualifying := make([]scored, 0, len(results))
	for _, r := range results {
		score := f.scorer.Similarity(query, r.Str)
		if score >= threshold {
			qualifying = append(qualifying, scored{index: r.Index, hit: models.Hit{Text: r.Str, Score: score}})
		}
	}

	// Restore original case order so the engine's stable sort breaks score
	// ties the same way the brute-force path does.
	sort.Slice(qualifying, func(i, j int) bool { return qualifying[i].index < qualifying[j].index })

	hits := make([]models.Hit, len(qualifying))
	for i, q := range qualifying {
		hits[i] = q.hit
	}
	return hits, nil
}
