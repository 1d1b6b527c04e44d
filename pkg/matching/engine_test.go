package matching

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenslegal/saksmatch/pkg/models"
)

// stubIndex lets tests control the index path.
type stubIndex struct {
	hits []models.Hit
	err  error
}

func (s *stubIndex) Name() string { return "stub" }

func (s *stubIndex) Query(string, float64) ([]models.Hit, error) {
	return s.hits, s.err
}

func TestFilterCourt(t *testing.T) {
	records := []models.CaseRecord{
		{Text: "sak 1", Court: "Oslo tingrett"},
		{Text: "sak 2", Court: "Bergen tingrett"},
		{Text: "Oslo  tingrett: sak 3"},
		{Text: "sak 4"},
	}

	got := FilterCourt(records)
	require.Len(t, got, 2)
	assert.Equal(t, "sak 1", got[0].Text)
	assert.Equal(t, "Oslo  tingrett: sak 3", got[1].Text)
}

func TestEngine_Match_Strict(t *testing.T) {
	records := []models.CaseRecord{
		{Text: "Oslo tingrett: Hansen, Ola - Berg, Kari", Court: "Oslo tingrett", Surnames: []string{"berg", "hansen"}},
		{Text: "Oslo tingrett: Olsen mot Lie", Court: "Oslo tingrett", Surnames: []string{"lie", "olsen"}},
	}

	cfg := DefaultConfig()
	engine := NewEngine(nil, cfg)
	results := engine.Match(context.Background(), []string{"Advokatfirmaet Hansen & Berg AS", "Vold DA"}, records, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "Advokatfirmaet Hansen & Berg AS", results[0].Firm)
	assert.Equal(t, []string{"hansen", "berg"}, results[0].Tokens)
	require.Len(t, results[0].Hits, 1)
	assert.Equal(t, records[0].Text, results[0].Hits[0].Text)
	assert.Equal(t, 1.0, results[0].Hits[0].Score)
}

func TestEngine_Match_StrictMonotonic(t *testing.T) {
	records := []models.CaseRecord{
		{Text: "Oslo tingrett: Hansen", Court: "Oslo tingrett", Surnames: []string{"hansen"}},
	}
	engine := NewEngine(nil, DefaultConfig())

	base := engine.Match(context.Background(), []string{"Hansen AS"}, records, nil)
	wider := engine.Match(context.Background(), []string{"Hansen Berg AS"}, records, nil)

	// Adding a firm token never removes a case already matched by surname.
	require.Len(t, base, 1)
	require.Len(t, wider, 1)
	assert.Equal(t, base[0].Hits, wider[0].Hits)
}

func TestEngine_Match_StrictHitCap(t *testing.T) {
	var records []models.CaseRecord
	for i := 0; i < 25; i++ {
		records = append(records, models.CaseRecord{
			Text:     fmt.Sprintf("Oslo tingrett: sak %d Hansen", i),
			Court:    "Oslo tingrett",
			Surnames: []string{"hansen"},
		})
	}

	engine := NewEngine(nil, DefaultConfig())
	results := engine.Match(context.Background(), []string{"Hansen AS"}, records, nil)

	require.Len(t, results, 1)
	assert.Len(t, results[0].Hits, 10)
}

func TestEngine_Match_Fuzzy(t *testing.T) {
	records := []models.CaseRecord{
		{Text: "Oslo tingrett: Hansen Eiendom mot staten", Court: "Oslo tingrett"},
		{Text: "Oslo tingrett: Olsen mot Lie", Court: "Oslo tingrett"},
	}

	cfg := DefaultConfig()
	cfg.StrictLastName = false

	t.Run("brute force without an index", func(t *testing.T) {
		engine := NewEngine(nil, cfg)
		results := engine.Match(context.Background(), []string{"Hansen Eiendom AS"}, records, nil)

		require.Len(t, results, 1)
		require.Len(t, results[0].Hits, 1)
		assert.Equal(t, records[0].Text, results[0].Hits[0].Text)
		assert.Equal(t, 0.98, results[0].Hits[0].Score)
	})

	t.Run("index error falls back to brute force", func(t *testing.T) {
		engine := NewEngine(nil, cfg)
		idx := &stubIndex{err: errors.New("backend down")}
		results := engine.Match(context.Background(), []string{"Hansen Eiendom AS"}, records, idx)

		require.Len(t, results, 1)
		require.Len(t, results[0].Hits, 1)
		assert.Equal(t, 0.98, results[0].Hits[0].Score)
	})

	t.Run("index hits are ranked and capped", func(t *testing.T) {
		var hits []models.Hit
		for i := 0; i < 15; i++ {
			hits = append(hits, models.Hit{Text: fmt.Sprintf("sak %d", i), Score: 0.82 + float64(i%3)*0.05})
		}
		engine := NewEngine(nil, cfg)
		results := engine.Match(context.Background(), []string{"Hansen Eiendom AS"}, records, &stubIndex{hits: hits})

		require.Len(t, results, 1)
		got := results[0].Hits
		require.Len(t, got, 10)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
		}
	})

	t.Run("firms with no hits are dropped", func(t *testing.T) {
		engine := NewEngine(nil, cfg)
		results := engine.Match(context.Background(), []string{"Ingenting AS"}, records, nil)
		assert.Empty(t, results)
	})
}

func TestEngine_Match_CourtFilter(t *testing.T) {
	records := []models.CaseRecord{
		{Text: "Bergen tingrett: Hansen Eiendom mot staten", Court: "Bergen tingrett"},
	}

	cfg := DefaultConfig()
	cfg.StrictLastName = false

	engine := NewEngine(nil, cfg)
	results := engine.Match(context.Background(), []string{"Hansen Eiendom AS"}, records, nil)
	assert.Empty(t, results)

	cfg.OnlyCourt = false
	engine = NewEngine(nil, cfg)
	results = engine.Match(context.Background(), []string{"Hansen Eiendom AS"}, records, nil)
	assert.Len(t, results, 1)
}

func TestClampThreshold(t *testing.T) {
	assert.Equal(t, 0.5, clampThreshold(0.1))
	assert.Equal(t, 0.5, clampThreshold(-1))
	assert.Equal(t, 0.82, clampThreshold(0.82))
	assert.Equal(t, 0.99, clampThreshold(1.5))
}
