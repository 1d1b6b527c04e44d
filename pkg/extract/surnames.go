package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/stevenslegal/saksmatch/pkg/normalize"
)

// personSeparatorRe splits a multi-person string into per-person segments:
// hyphens with surrounding spaces, semicolons, and newlines. Commas are left
// inside the segment so a "Last, First" entry keeps its surname part.
var personSeparatorRe = regexp.MustCompile(`\s+-\s+|[;\n]+`)

// surnameFields are the case-object fields mined for surnames, in addition
// to each element of bistandsadvokater.
var surnameFields = []string{"AdvokaterLang", "ParterLang", "parter", "RettensFormann"}

// Surnames parses a multi-person name or attorney list into the set of
// normalized surnames. A "Last, First" segment contributes the text before
// the comma; any other segment contributes its final whitespace-delimited
// word. The result is sorted and deduplicated; empty input yields nil.
func Surnames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, segment := range personSeparatorRe.Split(s, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		var surname string
		if idx := strings.Index(segment, ","); idx >= 0 {
			surname = strings.TrimSpace(segment[:idx])
		} else {
			words := strings.Fields(segment)
			if len(words) == 0 {
				continue
			}
			surname = words[len(words)-1]
		}

		if cleaned := normalize.Normalize(surname); cleaned != "" {
			seen[cleaned] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// caseSurnames unions the surnames of every person-bearing field on a case
// object.
func caseSurnames(obj map[string]any) []string {
	seen := make(map[string]struct{})
	add := func(s string) {
		for _, name := range Surnames(s) {
			seen[name] = struct{}{}
		}
	}

	for _, key := range surnameFields {
		add(stringField(obj, key))
	}
	for _, helper := range stringArrayField(obj, "bistandsadvokater") {
		add(helper)
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
