package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_Similarity(t *testing.T) {
	s := NewScorer()

	t.Run("identical after cleaning", func(t *testing.T) {
		assert.Equal(t, 1.0, s.Similarity("Advokatfirmaet Hansen & Berg AS", "hansen berg"))
		assert.Equal(t, 1.0, s.Similarity("Hansen Berg", "Hansen Berg"))
	})

	t.Run("symmetry", func(t *testing.T) {
		a, b := "Hansen Eiendom AS", "Oslo tingrett: Hansen Eiendom mot Olsen"
		assert.Equal(t, s.Similarity(a, b), s.Similarity(b, a))
	})

	t.Run("containment of a long cleaned form", func(t *testing.T) {
		got := s.Similarity("Hansen Eiendom AS", "Oslo tingrett: Hansen Eiendom mot Olsen")
		assert.Equal(t, 0.98, got)
	})

	t.Run("short forms do not take the containment shortcut", func(t *testing.T) {
		// "vold" is four characters; it falls through to token scoring.
		got := s.Similarity("Vold AS", "Oslo tingrett: Vold mot staten")
		assert.Less(t, got, 0.98)
		assert.Greater(t, got, 0.0)
	})

	t.Run("partial token overlap", func(t *testing.T) {
		// tokens {hansen, berg} vs {berg, olsen}: jaccard 1/3, coverage 1/2.
		got := s.Similarity("Hansen Berg", "Berg Olsen")
		assert.InDelta(t, 0.425, got, 1e-9)
	})

	t.Run("coverage wins for a small firm in a long text", func(t *testing.T) {
		// Both firm tokens present among six case tokens: jaccard 2/6,
		// coverage 2/2.
		got := s.Similarity("Hansen Berg", "Olsen Hansen Vold Berg Lie Eiendom")
		assert.InDelta(t, 0.85, got, 1e-9)
	})

	t.Run("empty or suffix-only input scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, s.Similarity("", "Hansen"))
		assert.Equal(t, 0.0, s.Similarity("AS", "Hansen"))
	})

	t.Run("disjoint names score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, s.Similarity("Hansen Berg", "Olsen Lie"))
	})
}
