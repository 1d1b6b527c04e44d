package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurnames(t *testing.T) {
	t.Run("last first segments", func(t *testing.T) {
		assert.Equal(t, []string{"berg", "hansen"}, Surnames("Hansen, Ola - Berg, Kari"))
	})

	t.Run("plain names take the final word", func(t *testing.T) {
		assert.Equal(t, []string{"berg", "hansen"}, Surnames("Ola Hansen - Kari Berg"))
	})

	t.Run("semicolon and newline separators", func(t *testing.T) {
		assert.Equal(t, []string{"berg", "hansen"}, Surnames("Ola Hansen; Kari Berg"))
		assert.Equal(t, []string{"berg", "hansen"}, Surnames("Ola Hansen\nKari Berg"))
	})

	t.Run("hyphenated surname is not a separator", func(t *testing.T) {
		// No spaces around the hyphen, so it stays one segment.
		assert.Equal(t, []string{"bergolsen"}, Surnames("Kari Berg-Olsen"))
	})

	t.Run("deduplicates and sorts", func(t *testing.T) {
		assert.Equal(t, []string{"hansen"}, Surnames("Ola Hansen - Per Hansen"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Surnames(""))
		assert.Nil(t, Surnames("   "))
	})
}

func TestCaseSurnames(t *testing.T) {
	obj := map[string]any{
		"AdvokaterLang":     "Hansen, Ola - Berg, Kari",
		"ParterLang":        "Staten; Nils Vold",
		"bistandsadvokater": []any{"Anne Lie"},
	}
	got := caseSurnames(obj)
	assert.Equal(t, []string{"berg", "hansen", "lie", "staten", "vold"}, got)
}
