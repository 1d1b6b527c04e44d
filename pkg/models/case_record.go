// Package models contains the data types shared across the matching engine
package models

// CaseRecord is the canonical representation of one legal-case entry,
// assembled from whatever fields the source payload happened to expose.
type CaseRecord struct {
	// Text is the human-readable representation of the case. Never empty for
	// a record extracted from a non-empty source item.
	Text string `json:"text"`
	// Court is set only when the source object carried a dedicated court
	// field. Used for filtering and display, never for scoring.
	Court string `json:"court,omitempty"`
	// Surnames holds the normalized surnames extracted from the attorney and
	// party fields, sorted and deduplicated. Computed once at extraction
	// time; the strict matching mode intersects it with firm tokens.
	Surnames []string `json:"surnames,omitempty"`
}

// HasSurname reports whether the record carries the given normalized surname.
func (c *CaseRecord) HasSurname(name string) bool {
	for _, s := range c.Surnames {
		if s == name {
			return true
		}
	}
	return false
}
