package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFuzzyIndex(t *testing.T) {
	assert.Nil(t, NewFuzzyIndex(nil))
	assert.Nil(t, NewFuzzyIndex([]string{}))
	assert.NotNil(t, NewFuzzyIndex([]string{"Oslo tingrett"}))
}

func TestFuzzyIndex_Query(t *testing.T) {
	texts := []string{
		"Oslo tingrett: Hansen Eiendom mot staten",
		"Oslo tingrett: Olsen mot Lie",
	}
	idx := NewFuzzyIndex(texts)
	require.NotNil(t, idx)

	t.Run("containment hit passes the threshold", func(t *testing.T) {
		hits, err := idx.Query("Hansen Eiendom", 0.9)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, texts[0], hits[0].Text)
		assert.Equal(t, 0.98, hits[0].Score)
	})

	t.Run("threshold filters rescored candidates", func(t *testing.T) {
		hits, err := idx.Query("Hansen Eiendom", 0.99)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("no candidates", func(t *testing.T) {
		hits, err := idx.Query("zzzzzz", 0.5)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestFuzzyIndex_Name(t *testing.T) {
	idx := NewFuzzyIndex([]string{"a"})
	assert.Equal(t, "fuzzy-index", idx.Name())
}
