// Package highlight splits case texts into spans for term emphasis
package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/stevenslegal/saksmatch/pkg/normalize"
)

// Span is one fragment of a source text. Fragments concatenate back to the
// original text; Match marks the fragments that matched a highlight term.
type Span struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// FirmTokens returns the firm's highlightable tokens: normalized tokens of
// three or more characters, deduplicated, in first-seen order.
func FirmTokens(firm string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, t := range normalize.Tokenize(firm) {
		if utf8.RuneCountInString(t) < 3 {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}

// KeywordTerms returns the highlightable forms of raw keyword input: each
// trimmed segment of two or more characters, deduplicated, in first-seen
// order. Raw forms are used so the terms line up with the displayed text.
func KeywordTerms(raw string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, p := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) < 2 {
			continue
		}
		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, p)
	}
	return terms
}

// Spans splits text into matched and unmatched fragments for the given
// terms, case insensitively. Longer terms are tried first so an overlapping
// shorter term cannot split a longer match. The spans always concatenate
// back to the input text.
func Spans(text string, terms []string) []Span {
	cleaned := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if text == "" || len(cleaned) == 0 {
		return []Span{{Text: text}}
	}

	sort.SliceStable(cleaned, func(i, j int) bool { return len(cleaned[i]) > len(cleaned[j]) })
	quoted := make([]string, len(cleaned))
	for i, t := range cleaned {
		quoted[i] = regexp.QuoteMeta(t)
	}
	re, err := regexp.Compile(`(?i)` + strings.Join(quoted, "|"))
	if err != nil {
		return []Span{{Text: text}}
	}

	var spans []Span
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: text[last:loc[0]]})
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	if len(spans) == 0 {
		return []Span{{Text: text}}
	}
	return spans
}
