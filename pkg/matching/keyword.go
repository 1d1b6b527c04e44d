package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/stevenslegal/saksmatch/pkg/models"
	"github.com/stevenslegal/saksmatch/pkg/normalize"
)

// Keywords parses raw keyword input: split on commas and newlines, trim,
// drop empties, normalize, and discard keywords whose normalized form is
// shorter than two characters. The raw form is kept for highlighting.
func Keywords(raw string) []models.Keyword {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var keywords []models.Keyword
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		norm := normalize.Normalize(p)
		if utf8.RuneCountInString(norm) < 2 {
			continue
		}
		keywords = append(keywords, models.Keyword{Raw: p, Normalized: norm})
	}
	return keywords
}

// KeywordMatches filters case records to those whose normalized text
// contains at least one keyword's normalized form as a substring. No scoring
// and no ranking; the result keeps the original record order and is not
// truncated here (display caps belong to the caller).
func KeywordMatches(records []models.CaseRecord, keywords []models.Keyword) []models.CaseRecord {
	if len(keywords) == 0 || len(records) == 0 {
		return nil
	}

	var matched []models.CaseRecord
	for _, rec := range records {
		recNorm := normalize.Normalize(rec.Text)
		for _, k := range keywords {
			if strings.Contains(recNorm, k.Normalized) {
				matched = append(matched, rec)
				break
			}
		}
	}
	return matched
}
