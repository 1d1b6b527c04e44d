package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirmTokens(t *testing.T) {
	t.Run("short tokens are dropped", func(t *testing.T) {
		assert.Equal(t, []string{"hansen", "berg"}, FirmTokens("Advokatfirmaet Hansen & Co Berg AS"))
	})

	t.Run("deduplicates in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"berg", "hansen"}, FirmTokens("Berg Hansen Berg"))
	})

	t.Run("suffix-only name", func(t *testing.T) {
		assert.Nil(t, FirmTokens("AS"))
	})
}

func TestKeywordTerms(t *testing.T) {
	terms := KeywordTerms("Heleri, a, heleri\nBedrageri ")
	assert.Equal(t, []string{"Heleri", "Bedrageri"}, terms)
}

func TestSpans(t *testing.T) {
	t.Run("marks matches case insensitively", func(t *testing.T) {
		spans := Spans("Oslo tingrett: HANSEN mot Berg", []string{"hansen", "berg"})
		require.Len(t, spans, 4)
		assert.Equal(t, Span{Text: "Oslo tingrett: "}, spans[0])
		assert.Equal(t, Span{Text: "HANSEN", Match: true}, spans[1])
		assert.Equal(t, Span{Text: " mot "}, spans[2])
		assert.Equal(t, Span{Text: "Berg", Match: true}, spans[3])
	})

	t.Run("spans concatenate back to the input", func(t *testing.T) {
		text := "Oslo tingrett: Hansen Eiendom mot Hansen"
		spans := Spans(text, []string{"hansen", "eiendom"})

		var b strings.Builder
		for _, s := range spans {
			b.WriteString(s.Text)
		}
		assert.Equal(t, text, b.String())
	})

	t.Run("longer terms win over contained shorter ones", func(t *testing.T) {
		spans := Spans("Hansen Eiendom", []string{"hansen", "hansen eiendom"})
		require.Len(t, spans, 1)
		assert.Equal(t, Span{Text: "Hansen Eiendom", Match: true}, spans[0])
	})

	t.Run("regex metacharacters in terms are literal", func(t *testing.T) {
		spans := Spans("sak (22-01)", []string{"(22-01)"})
		require.Len(t, spans, 2)
		assert.True(t, spans[1].Match)
	})

	t.Run("no terms", func(t *testing.T) {
		spans := Spans("abc", nil)
		assert.Equal(t, []Span{{Text: "abc"}}, spans)
	})

	t.Run("empty text", func(t *testing.T) {
		spans := Spans("", []string{"x"})
		assert.Equal(t, []Span{{Text: ""}}, spans)
	})
}
