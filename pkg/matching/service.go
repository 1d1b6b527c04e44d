package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stevenslegal/saksmatch/internal/repositories/dataset"
	"github.com/stevenslegal/saksmatch/internal/tracing"
	"github.com/stevenslegal/saksmatch/pkg/models"
)

// Controls are the per-request matching controls. Zero values fall back to
// the engine defaults where that makes sense (threshold, max hits); the
// booleans are taken as given.
type Controls struct {
	Threshold      float64
	OnlyCourt      bool
	StrictLastName bool
	KeywordsRaw    string
}

// Service runs full recomputation passes over the loaded datasets. The
// approximate index is rebuilt lazily and memoized per case dataset and
// court-filter setting, so repeated requests against the same data reuse it.
type Service struct {
	log  *zap.SugaredLogger
	repo *dataset.Repository

	mu           sync.Mutex
	indexCaseSet uuid.UUID
	indexCourt   bool
	index        Index
}

// NewService creates a Service over the given dataset repository.
func NewService(log *zap.SugaredLogger, repo *dataset.Repository) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{log: log, repo: repo}
}

// Results runs one full pass: court filter, firm matching, keyword
// filtering. The keyword pass runs over the same court-filtered records as
// the firm pass so the two result sets describe the same population.
func (s *Service) Results(ctx context.Context, controls Controls) models.Results {
	ctx, span := tracing.StartSpan(ctx, "matching.Service.Results")
	defer span.End()

	firms, cases := s.repo.Snapshot()

	records := cases.Records
	if controls.OnlyCourt {
		records = FilterCourt(records)
	}

	cfg := DefaultConfig()
	cfg.Threshold = controls.Threshold
	cfg.OnlyCourt = false // records are already filtered here
	cfg.StrictLastName = controls.StrictLastName

	idx := s.indexFor(cases, controls.OnlyCourt, records)
	engine := NewEngine(s.log, cfg)
	matches := engine.Match(ctx, firms.Names, records, idx)

	keywords := Keywords(controls.KeywordsRaw)
	keywordMatches := KeywordMatches(records, keywords)

	scorer := models.ScorerBasic
	if idx != nil {
		scorer = idx.Name()
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text
	}

	return models.Results{
		Firms:          firms.Names,
		CaseTexts:      texts,
		Matches:        matches,
		Keywords:       keywords,
		KeywordMatches: keywordMatches,
		Scorer:         scorer,
	}
}

// indexFor returns the memoized index for the given case dataset and court
// setting, rebuilding it when either changed since the last pass.
func (s *Service) indexFor(cases dataset.CaseSet, onlyCourt bool, records []models.CaseRecord) Index {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexCaseSet == cases.ID && s.indexCourt == onlyCourt {
		return s.index
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text
	}
	s.index = NewFuzzyIndex(texts)
	s.indexCaseSet = cases.ID
	s.indexCourt = onlyCourt
	s.log.Debugw("rebuilt case index", "case_set", cases.ID, "only_court", onlyCourt, "texts", len(texts))
	return s.index
}
