// Package normalize provides text canonicalization for name comparison
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters and drops their combining diacritical
// marks. Letters without a decomposition (æ, ø) pass through unchanged.
var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	firmWordRe   = regexp.MustCompile(`(?i)\b(advokatfirmaet|advokatfirma)\b`)
	orgSuffixRe  = regexp.MustCompile(`(?i)\b(as|asa|da|ans|ks|se)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes free text for comparison: diacritics folded,
// lowercased, every character outside [a-z0-9 åæø] replaced with a space,
// whitespace collapsed, trimmed. Pure and locale independent.
func Normalize(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if allowedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(b.String(), " "))
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == 'å' || r == 'æ' || r == 'ø':
		return true
	}
	return false
}

// StripLegalSuffix removes the advokatfirma/advokatfirmaet words and the
// organization-type abbreviations (as, asa, da, ans, ks, se) as whole words,
// then collapses the remaining whitespace. Applied before Normalize in the
// scoring paths.
func StripLegalSuffix(s string) string {
	s = firmWordRe.ReplaceAllString(s, " ")
	s = orgSuffixRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Tokenize splits a string into comparison tokens: legal suffixes stripped,
// text normalized, then split on spaces. Order carries no meaning.
func Tokenize(s string) []string {
	cleaned := Normalize(StripLegalSuffix(s))
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}

// TokenSet returns the deduplicated token set of a string.
func TokenSet(s string) map[string]struct{} {
	tokens := Tokenize(s)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
