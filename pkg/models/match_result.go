package models

// Keyword is a single user-supplied search keyword. The raw form is kept for
// highlighting; matching uses the normalized form.
type Keyword struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
}

// Hit is one case text matched for a firm, with its similarity score in [0,1].
type Hit struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// MatchResult holds the ranked hits for a single firm. Hits are ordered by
// descending score and capped at the engine's hit limit. Tokens carries the
// firm tokens of length >= 3, for the host to highlight occurrences with.
type MatchResult struct {
	Firm   string   `json:"firm"`
	Tokens []string `json:"tokens,omitempty"`
	Hits   []Hit    `json:"hits"`
}

// Scorer backend names reported to the host.
const (
	ScorerFuzzyIndex = "fuzzy-index"
	ScorerBasic      = "basic"
)

// Results is the full output contract exposed to the host UI for one
// recomputation pass.
type Results struct {
	Firms          []string      `json:"firms"`
	CaseTexts      []string      `json:"case_texts"`
	Matches        []MatchResult `json:"matches"`
	Keywords       []Keyword     `json:"keywords"`
	KeywordMatches []CaseRecord  `json:"keyword_matches"`
	// Scorer names the similarity backend that served the fuzzy pass.
	Scorer string `json:"scorer"`
}
