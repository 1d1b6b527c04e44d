package matching

import (
	"context"
	"math"
	"regexp"
	"sort"

	"go.uber.org/zap"

	"github.com/stevenslegal/saksmatch/internal/tracing"
	"github.com/stevenslegal/saksmatch/pkg/highlight"
	"github.com/stevenslegal/saksmatch/pkg/models"
	"github.com/stevenslegal/saksmatch/pkg/normalize"
)

// courtPatternRe selects Oslo tingrett records. Matched against the court
// field when present, otherwise against the full case text.
var courtPatternRe = regexp.MustCompile(`(?i)oslo\s+tingrett`)

// EngineConfig holds the tunable matching controls.
type EngineConfig struct {
	// Threshold is the minimum similarity score for a fuzzy hit. Clamped to
	// [0.5, 0.99] before use.
	Threshold float64
	// OnlyCourt restricts matching to Oslo tingrett records.
	OnlyCourt bool
	// StrictLastName switches to surname-intersection matching: a firm hits a
	// case only when a firm token equals an extracted surname.
	StrictLastName bool
	// MaxHits caps the ranked hits kept per firm.
	MaxHits int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Threshold:      0.82,
		OnlyCourt:      true,
		StrictLastName: true,
		MaxHits:        10,
	}
}

// Engine matches firm names against case records.
type Engine struct {
	log    *zap.SugaredLogger
	scorer *Scorer
	cfg    EngineConfig
}

// NewEngine creates an Engine with the given controls. A nil logger is
// replaced with a no-op logger.
func NewEngine(log *zap.SugaredLogger, cfg EngineConfig) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		log:    log,
		scorer: NewScorer(),
		cfg:    cfg,
	}
}

// FilterCourt returns the records matching the court pattern. The dedicated
// court field wins when present; records without one fall back to a match
// against the full text.
func FilterCourt(records []models.CaseRecord) []models.CaseRecord {
	filtered := make([]models.CaseRecord, 0, len(records))
	for _, rec := range records {
		subject := rec.Court
		if subject == "" {
			subject = rec.Text
		}
		if courtPatternRe.MatchString(subject) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Match scores every firm against the given case records and returns the
// firms with at least one hit, each with its ranked hit list. When idx is
// non-nil the fuzzy pass queries it first and falls back to brute-force
// scoring if the index errors or returns nothing.
func (e *Engine) Match(ctx context.Context, firms []string, records []models.CaseRecord, idx Index) []models.MatchResult {
	_, span := tracing.StartSpan(ctx, "matching.Engine.Match")
	defer span.End()

	if e.cfg.OnlyCourt {
		records = FilterCourt(records)
	}
	threshold := clampThreshold(e.cfg.Threshold)

	results := make([]models.MatchResult, 0, len(firms))
	for _, firm := range firms {
		var hits []models.Hit
		if e.cfg.StrictLastName {
			hits = e.strictHits(firm, records)
		} else {
			hits = e.fuzzyHits(firm, records, idx, threshold)
		}
		if len(hits) == 0 {
			continue
		}
		results = append(results, models.MatchResult{
			Firm:   firm,
			Tokens: highlight.FirmTokens(firm),
			Hits:   hits,
		})
	}

	e.log.Debugw("match pass complete",
		"firms", len(firms),
		"records", len(records),
		"matched", len(results),
		"strict", e.cfg.StrictLastName,
	)
	return results
}

// strictHits matches a firm by intersecting its token set with each record's
// extracted surnames. Every hit scores 1; ranking is original record order.
func (e *Engine) strictHits(firm string, records []models.CaseRecord) []models.Hit {
	tokens := normalize.TokenSet(firm)
	if len(tokens) == 0 {
		return nil
	}

	var hits []models.Hit
	for _, rec := range records {
		for token := range tokens {
			if rec.HasSurname(token) {
				hits = append(hits, models.Hit{Text: rec.Text, Score: 1})
				break
			}
		}
		if e.cfg.MaxHits > 0 && len(hits) >= e.cfg.MaxHits {
			break
		}
	}
	return hits
}

// fuzzyHits scores a firm against every record text. The index path is
// advisory: an index error is logged and the brute-force pass runs instead,
// so a broken backend degrades to the slower exact computation.
func (e *Engine) fuzzyHits(firm string, records []models.CaseRecord, idx Index, threshold float64) []models.Hit {
	if idx != nil {
		hits, err := idx.Query(firm, threshold)
		if err != nil {
			e.log.Warnw("index query failed, falling back to scorer", "firm", firm, "error", err)
		} else if len(hits) > 0 {
			return e.rank(hits)
		}
	}

	var hits []models.Hit
	for _, rec := range records {
		if score := e.scorer.Similarity(firm, rec.Text); score >= threshold {
			hits = append(hits, models.Hit{Text: rec.Text, Score: score})
		}
	}
	return e.rank(hits)
}

// rank orders hits by descending score, stable on the incoming order, and
// applies the per-firm cap.
func (e *Engine) rank(hits []models.Hit) []models.Hit {
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if e.cfg.MaxHits > 0 && len(hits) > e.cfg.MaxHits {
		hits = hits[:e.cfg.MaxHits]
	}
	return hits
}

// clampThreshold bounds the threshold to [0.5, 0.99]. NaN maps to the lower
// bound.
func clampThreshold(t float64) float64 {
	if math.IsNaN(t) || t < 0.5 {
		return 0.5
	}
	if t > 0.99 {
		return 0.99
	}
	return t
}
