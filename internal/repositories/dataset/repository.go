// Package dataset holds the in-memory firm and case datasets
package dataset

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stevenslegal/saksmatch/pkg/extract"
	"github.com/stevenslegal/saksmatch/pkg/models"
)

// FirmSet is one loaded firm dataset. The ID changes on every load so
// downstream caches can key on it.
type FirmSet struct {
	ID    uuid.UUID
	Names []string
}

// CaseSet is one loaded case dataset.
type CaseSet struct {
	ID      uuid.UUID
	Records []models.CaseRecord
}

// Repository stores the currently loaded datasets. Loads replace the whole
// set; there are no partial updates.
type Repository struct {
	log *zap.SugaredLogger

	mu    sync.RWMutex
	firms FirmSet
	cases CaseSet
}

// NewRepository creates an empty Repository.
func NewRepository(log *zap.SugaredLogger) *Repository {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Repository{log: log}
}

// SetFirms parses raw firm JSON and replaces the firm dataset. Invalid JSON
// yields an empty dataset, never an error; a load is always a full replace.
func (r *Repository) SetFirms(raw string) FirmSet {
	names := extract.Firms(extract.Parse(raw))
	set := FirmSet{ID: uuid.New(), Names: names}

	r.mu.Lock()
	r.firms = set
	r.mu.Unlock()

	r.log.Infow("firm dataset loaded", "id", set.ID, "firms", len(names))
	return set
}

// SetCases parses raw case JSON and replaces the case dataset.
func (r *Repository) SetCases(raw string) CaseSet {
	records := extract.CaseRecords(extract.Parse(raw))
	set := CaseSet{ID: uuid.New(), Records: records}

	r.mu.Lock()
	r.cases = set
	r.mu.Unlock()

	r.log.Infow("case dataset loaded", "id", set.ID, "records", len(records))
	return set
}

// Snapshot returns the current datasets. The returned slices are shared;
// callers must not mutate them.
func (r *Repository) Snapshot() (FirmSet, CaseSet) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.firms, r.cases
}
