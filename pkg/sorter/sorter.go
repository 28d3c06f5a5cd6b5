// Package sorter orders the results of SWAPI list envelopes by a field.
package sorter

import (
	"cmp"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/document"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/query"
)

// missingValues mark a field as having no sortable value.
var missingValues = map[string]struct{}{
	"unknown": {},
	"n/a":     {},
}

type sortKey struct {
	numeric bool
	num     float64
	text    string
}

type entry struct {
	item any
	key  sortKey
}

// Sort returns a copy of doc with its results ordered by sortBy.
//
// Items whose field is absent, null, "unknown" or "n/a" keep their relative
// order and are placed after every sortable item, in both directions. Ties
// keep their input order. Documents that are not list envelopes are returned
// unchanged.
func Sort(doc document.Document, sortBy string, order query.SortOrder) document.Document {
	if doc == nil || sortBy == "" || !doc.IsEnvelope() {
		return doc
	}

	raw, ok := doc[document.FieldResults].([]any)
	if !ok {
		return doc
	}

	valid := make([]entry, 0, len(raw))
	var missing []any
	for _, item := range raw {
		key, ok := keyOf(item, sortBy)
		if !ok {
			missing = append(missing, item)
			continue
		}
		valid = append(valid, entry{item: item, key: key})
	}

	desc := order == query.SortDesc
	slices.SortStableFunc(valid, func(a, b entry) int {
		c := compareKeys(a.key, b.key)
		if desc {
			return -c
		}
		return c
	})

	results := make([]any, 0, len(raw))
	for _, e := range valid {
		results = append(results, e.item)
	}
	results = append(results, missing...)

	return doc.WithResults(results)
}

// keyOf extracts the sort key of item's field, reporting false when the
// item has no sortable value.
func keyOf(item any, field string) (sortKey, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return sortKey{}, false
	}

	value, ok := obj[field]
	if !ok || value == nil {
		return sortKey{}, false
	}

	switch v := value.(type) {
	case string:
		if _, missing := missingValues[v]; missing {
			return sortKey{}, false
		}
		return stringKey(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return sortKey{numeric: true, num: f}, true
		}
		return sortKey{text: strings.ToLower(v.String())}, true
	case float64:
		return sortKey{numeric: true, num: v}, true
	case int:
		return sortKey{numeric: true, num: float64(v)}, true
	case bool:
		if v {
			return sortKey{numeric: true, num: 1}, true
		}
		return sortKey{numeric: true, num: 0}, true
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return sortKey{}, false
		}
		return sortKey{text: strings.ToLower(string(data))}, true
	}
}

// stringKey treats numeric-looking strings ("1,358", "172") as numbers and
// compares everything else case-insensitively.
func stringKey(s string) sortKey {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return sortKey{numeric: true, num: f}
	}
	return sortKey{text: strings.ToLower(s)}
}

// compareKeys orders numbers before text.
func compareKeys(a, b sortKey) int {
	switch {
	case a.numeric && b.numeric:
		return cmp.Compare(a.num, b.num)
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	default:
		return strings.Compare(a.text, b.text)
	}
}
