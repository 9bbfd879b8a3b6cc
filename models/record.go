// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// System field names. They share the JSON object with the payload fields.
const (
	FieldID         = "id"
	FieldDocUpdated = "docUpdated"
	FieldDeleted    = "deleted"
	FieldDocType    = "docType"
)

// DeletedCollection is the virtual collection holding tombstones. It never
// exists on the remote store.
const DeletedCollection = "deleted"

// Kind tells where a record belongs: its origin collection or the recycle bin.
type Kind int

const (
	// KindLive is a record living in its origin collection.
	KindLive Kind = iota
	// KindTombstone is a soft-deleted record living in [DeletedCollection].
	KindTombstone
)

func (k Kind) String() string {
	switch k {
	case KindLive:
		return "live"
	case KindTombstone:
		return "tombstone"
	default:
		return "unknown"
	}
}

// Record is a single document of a collection.
//
// The four system fields are typed; everything else the document carries is
// kept as an opaque payload in Fields. On the wire the record is one flat JSON
// object, the same shape the remote document store keeps.
type Record struct {
	// ID is unique within a collection.
	ID string
	// DocUpdated is the modification time in unix milliseconds.
	DocUpdated int64
	// Deleted marks a tombstone.
	Deleted bool
	// DocType is the origin collection name. Set only on tombstones.
	DocType string
	// Fields holds the payload. Never contains system field keys.
	Fields map[string]any
}

// NewRecord builds a live record from a payload map. System keys found in
// fields are lifted into their typed counterparts.
func NewRecord(id string, fields map[string]any) Record {
	r := Record{ID: id, Fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		r.Fields[k] = v
	}
	r.liftSystemFields()
	if id != "" {
		r.ID = id
	}
	return r
}

// Kind returns the variant of the record.
func (r Record) Kind() Kind {
	if r.Deleted {
		return KindTombstone
	}
	return KindLive
}

// Home returns the collection the record must be cached in given the
// collection it was read from.
func (r Record) Home(origin string) string {
	if r.Kind() == KindTombstone {
		return DeletedCollection
	}
	return origin
}

// Touch stamps DocUpdated with now.
func (r *Record) Touch(now time.Time) {
	r.DocUpdated = now.UnixMilli()
}

// Clone returns a copy that shares no payload map with r. Nested values are
// copied one level deep.
func (r Record) Clone() Record {
	c := r
	if r.Fields != nil {
		c.Fields = make(map[string]any, len(r.Fields))
		for k, v := range r.Fields {
			c.Fields[k] = cloneValue(v)
		}
	}
	return c
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return maps.Clone(t)
	case []any:
		return append([]any(nil), t...)
	default:
		return v
	}
}

// Get returns a payload field.
func (r Record) Get(field string) (any, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// Set assigns a payload field, routing system keys to their typed fields.
func (r *Record) Set(field string, value any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[field] = value
	r.liftSystemFields()
}

// Map flattens the record into a single map, system fields included.
// Empty DocType and a false Deleted flag are still emitted so a merge-write
// clears them on the remote document.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.Fields)+4)
	for k, v := range r.Fields {
		out[k] = v
	}
	if r.ID != "" {
		out[FieldID] = r.ID
	}
	out[FieldDocUpdated] = r.DocUpdated
	out[FieldDeleted] = r.Deleted
	out[FieldDocType] = r.DocType
	return out
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// UnmarshalJSON implements json.Unmarshaler. Numbers decode as float64, except
// integers outside the float64-exact range, which stay int64.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	for k, v := range raw {
		raw[k] = normalizeNumbers(v)
	}
	*r = Record{Fields: raw}
	r.liftSystemFields()
	return nil
}

// maxExactFloat is 2^53, the largest magnitude float64 holds every integer up to.
const maxExactFloat = 1 << 53

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil && (i > maxExactFloat || i < -maxExactFloat) {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	default:
		return v
	}
}

func (r *Record) liftSystemFields() {
	if v, ok := r.Fields[FieldID]; ok {
		if s, isStr := v.(string); isStr {
			r.ID = s
		}
		delete(r.Fields, FieldID)
	}
	if v, ok := r.Fields[FieldDocUpdated]; ok {
		r.DocUpdated = toMillis(v)
		delete(r.Fields, FieldDocUpdated)
	}
	if v, ok := r.Fields[FieldDeleted]; ok {
		b, _ := v.(bool)
		r.Deleted = b
		delete(r.Fields, FieldDeleted)
	}
	if v, ok := r.Fields[FieldDocType]; ok {
		s, _ := v.(string)
		r.DocType = s
		delete(r.Fields, FieldDocType)
	}
}

func toMillis(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case json.Number:
		n, _ := t.Int64()
		return n
	default:
		return 0
	}
}
