// Package document models the JSON documents returned by SWAPI: either a
// single resource object or a paginated envelope carrying a results list.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Envelope field names.
const (
	FieldCount    = "count"
	FieldNext     = "next"
	FieldPrevious = "previous"
	FieldResults  = "results"
)

// ErrNotObject is returned when a JSON payload is not an object.
var ErrNotObject = errors.New("document is not a JSON object")

// Document is a decoded JSON object. Numbers are kept as json.Number so a
// document re-encodes to the same bytes it was decoded from.
type Document map[string]any

// Decode reads a single JSON object from r.
func Decode(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Document(obj), nil
}

// Unmarshal decodes data into a Document.
func Unmarshal(data []byte) (Document, error) {
	return Decode(bytes.NewReader(data))
}

// Marshal encodes the document as JSON.
func (d Document) Marshal() ([]byte, error) {
	return json.Marshal(map[string]any(d))
}

// IsEnvelope reports whether d is a paginated list envelope.
func (d Document) IsEnvelope() bool {
	_, ok := d[FieldResults]
	return ok
}

// Results returns the envelope items that are JSON objects, in order.
// Entries that are not objects are returned as nil documents so indexes
// line up with the raw results slice.
func (d Document) Results() []Document {
	raw, ok := d[FieldResults].([]any)
	if !ok {
		return nil
	}

	items := make([]Document, len(raw))
	for i, v := range raw {
		if obj, ok := v.(map[string]any); ok {
			items[i] = Document(obj)
		}
	}
	return items
}

// WithResults returns a shallow copy of d whose results field is replaced.
func (d Document) WithResults(results []any) Document {
	out := d.Clone()
	out[FieldResults] = results
	return out
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
