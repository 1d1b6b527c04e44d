// Package extract converts arbitrarily shaped JSON payloads into the two
// canonical record sets the matching engine works with: firm names and case
// records. Payloads are never validated against a schema; every shape must
// yield a usable textual surrogate.
package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/stevenslegal/saksmatch/pkg/models"
)

// preferredFields is the fixed preference order for the generic
// object-to-string rule. The first present string (or string-array) field
// wins.
var preferredFields = []string{
	"navn",
	"name",
	"firma",
	"company",
	"title",
	"case",
	"party",
	"parties",
	"description",
	"court",
	"domstol",
	"sakenGjelder",
	"AdvokaterLang",
	"ParterLang",
	"saksnummer",
}

// caseTextFields are concatenated, in this order, to build a case record's
// canonical text.
var caseTextFields = []string{"domstol", "sakenGjelder", "AdvokaterLang", "ParterLang", "parter"}

// Parse decodes raw JSON text. Invalid JSON is treated as absent input and
// yields nil, never an error.
func Parse(raw string) any {
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return data
}

// itemKind tags the shape of a single payload item.
type itemKind int

const (
	kindString itemKind = iota
	kindObject
	kindOther
)

// item is the tagged-variant view of one payload element.
type item struct {
	kind itemKind
	str  string
	obj  map[string]any
	raw  any
}

func classify(v any) item {
	switch t := v.(type) {
	case string:
		return item{kind: kindString, str: t}
	case map[string]any:
		return item{kind: kindObject, obj: t, raw: v}
	default:
		return item{kind: kindOther, raw: v}
	}
}

// Firms extracts the firm name list from a parsed payload. A bare string is
// the sole firm; array elements are used verbatim when strings, via the navn
// field or the generic rule when objects; a root object follows the same
// preference.
func Firms(data any) []string {
	if data == nil {
		return nil
	}

	switch root := classify(data); root.kind {
	case kindString:
		return []string{root.str}
	case kindObject:
		if navn := stringField(root.obj, "navn"); navn != "" {
			return []string{navn}
		}
		return []string{objectText(root.obj)}
	}

	arr, ok := data.([]any)
	if !ok {
		return nil
	}

	var firms []string
	for _, elem := range arr {
		switch it := classify(elem); it.kind {
		case kindString:
			firms = append(firms, it.str)
		case kindObject:
			if navn := stringField(it.obj, "navn"); navn != "" {
				firms = append(firms, navn)
			} else {
				firms = append(firms, objectText(it.obj))
			}
		}
	}
	return firms
}

// CaseRecords extracts case records from a parsed payload. The iterable item
// list is the root array itself or the array-valued "hits" field of a root
// object. Anything else degrades to string extraction with empty surname
// sets.
func CaseRecords(data any) []models.CaseRecord {
	items, ok := caseItems(data)
	if !ok {
		var records []models.CaseRecord
		for _, text := range caseFallbackStrings(data) {
			records = append(records, models.CaseRecord{Text: text})
		}
		return records
	}

	records := make([]models.CaseRecord, 0, len(items))
	for _, elem := range items {
		it := classify(elem)
		rec := models.CaseRecord{Text: caseText(it)}
		if it.kind == kindObject {
			rec.Court = stringField(it.obj, "domstol")
			rec.Surnames = caseSurnames(it.obj)
		}
		records = append(records, rec)
	}
	return records
}

// caseItems resolves the iterable item list for case extraction.
func caseItems(data any) ([]any, bool) {
	if arr, ok := data.([]any); ok {
		return arr, true
	}
	if obj, ok := data.(map[string]any); ok {
		if hits, ok := obj["hits"].([]any); ok {
			return hits, true
		}
	}
	return nil, false
}

// caseFallbackStrings mirrors Firms-style string extraction for payloads
// with no recognizable item list.
func caseFallbackStrings(data any) []string {
	if data == nil {
		return nil
	}
	switch it := classify(data); it.kind {
	case kindString:
		return []string{it.str}
	case kindObject:
		if text := joinCaseFields(it.obj); text != "" {
			return []string{text}
		}
		return []string{objectText(it.obj)}
	}
	return nil
}

// caseText builds the canonical text for one case item.
func caseText(it item) string {
	switch it.kind {
	case kindString:
		return it.str
	case kindObject:
		if text := joinCaseFields(it.obj); text != "" {
			return text
		}
		return objectText(it.obj)
	default:
		return valueText(it.raw)
	}
}

// joinCaseFields concatenates the known case fields in fixed order. Returns
// the empty string when no field yields content.
func joinCaseFields(obj map[string]any) string {
	var fields []string
	for _, key := range caseTextFields {
		if s := stringField(obj, key); strings.TrimSpace(s) != "" {
			fields = append(fields, s)
		}
	}
	if helpers := stringArrayField(obj, "bistandsadvokater"); len(helpers) > 0 {
		fields = append(fields, strings.Join(helpers, " - "))
	}
	if s := stringField(obj, "saksnummer"); strings.TrimSpace(s) != "" {
		fields = append(fields, s)
	}
	return strings.Join(fields, " ")
}

// objectText is the generic object-to-string rule: first preferred string
// field, else first preferred string-array field joined with spaces, else
// all top-level string values joined, else the object serialized as JSON.
// Always returns a non-empty string.
func objectText(obj map[string]any) string {
	for _, key := range preferredFields {
		if s := stringField(obj, key); s != "" {
			return s
		}
		if arr := stringArrayField(obj, key); len(arr) > 0 {
			return strings.Join(arr, " ")
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		if _, ok := obj[k].(string); ok {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		values := make([]string, len(keys))
		for i, k := range keys {
			values[i] = obj[k].(string)
		}
		return strings.Join(values, " ")
	}

	b, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf("%v", obj)
	}
	return string(b)
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// stringArrayField returns the string elements of an array-valued field.
// Non-string elements are skipped; a non-array field yields nil.
func stringArrayField(obj map[string]any, key string) []string {
	arr, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// valueText renders a scalar the way the payload author would read it.
func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%v", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
