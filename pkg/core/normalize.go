package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque note identifier.
func NewID() string {
	return uuid.NewString()
}

// Normalize coerces a raw decoded JSON record into a Note, field by field.
// It never fails: a missing or blank identifier gets a freshly generated
// one, scalar fields are stringified, a non-array tags value degrades to
// an empty set, and missing or unreadable timestamps default to now.
func Normalize(raw map[string]any, now time.Time) Note {
	n := Note{
		ID:      stringify(raw["id"]),
		Title:   stringify(raw["title"]),
		Content: stringify(raw["content"]),
		Tags:    coerceTags(raw["tags"]),
	}
	if n.ID == "" {
		n.ID = NewID()
	}
	n.CreatedAt = coerceTime(raw["createdAt"], now)
	n.UpdatedAt = coerceTime(raw["updatedAt"], n.CreatedAt)
	return n
}

// NormalizeList normalizes every entry of a decoded JSON array.
// Entries that are not objects degrade to default notes instead of being
// dropped, so the output length always matches the input.
func NormalizeList(entries []any, now time.Time) []Note {
	notes := make([]Note, 0, len(entries))
	for _, entry := range entries {
		raw, ok := entry.(map[string]any)
		if !ok {
			raw = map[string]any{}
		}
		notes = append(notes, Normalize(raw, now))
	}
	return notes
}

// DecodeList parses data as a JSON array of note records and normalizes
// each entry. A document that is not a JSON array is an error; the caller
// decides whether to degrade (store load) or surface it (import).
func DecodeList(data []byte, now time.Time) ([]Note, error) {
	var entries []any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("notes payload is not a JSON array: %w", err)
	}
	return NormalizeList(entries, now), nil
}

// EncodeList serializes the note list as a pretty-printed JSON array.
// An empty list encodes as "[]", never "null".
func EncodeList(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	for i := range notes {
		if notes[i].Tags == nil {
			notes[i].Tags = []string{}
		}
	}
	return json.MarshalIndent(notes, "", "  ")
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		// Objects and arrays have no scalar rendering; degrade to empty.
		return ""
	}
}

func coerceTags(v any) []string {
	switch t := v.(type) {
	case []string:
		return NormalizeTags(t)
	case []any:
		tags := make([]string, 0, len(t))
		for _, item := range t {
			tags = append(tags, stringify(item))
		}
		return NormalizeTags(tags)
	default:
		return []string{}
	}
}

func coerceTime(v any, def time.Time) time.Time {
	switch t := v.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
	case json.Number:
		if sec, err := t.Int64(); err == nil && sec > 0 {
			return time.Unix(sec, 0).UTC()
		}
	case float64:
		if t > 0 {
			return time.Unix(int64(t), 0).UTC()
		}
	}
	return def
}
