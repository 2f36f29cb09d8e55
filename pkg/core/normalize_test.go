package core

import (
	"encoding/json"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNormalize(t *testing.T) {
	t.Run("Generates ID when Missing", func(t *testing.T) {
		n := Normalize(map[string]any{"title": "hello"}, testNow)
		if n.ID == "" {
			t.Error("expected a generated ID")
		}
	})

	t.Run("Keeps Existing ID", func(t *testing.T) {
		n := Normalize(map[string]any{"id": "abc-123"}, testNow)
		if n.ID != "abc-123" {
			t.Errorf("expected ID abc-123, got %q", n.ID)
		}
	})

	t.Run("Stringifies Scalars", func(t *testing.T) {
		n := Normalize(map[string]any{
			"id":      json.Number("42"),
			"title":   true,
			"content": 3.5,
		}, testNow)
		if n.ID != "42" {
			t.Errorf("expected ID '42', got %q", n.ID)
		}
		if n.Title != "true" {
			t.Errorf("expected title 'true', got %q", n.Title)
		}
		if n.Content != "3.5" {
			t.Errorf("expected content '3.5', got %q", n.Content)
		}
	})

	t.Run("Non-Array Tags Degrade to Empty", func(t *testing.T) {
		n := Normalize(map[string]any{"tags": "not-a-list"}, testNow)
		if len(n.Tags) != 0 {
			t.Errorf("expected no tags, got %v", n.Tags)
		}
		if n.Tags == nil {
			t.Error("expected empty slice, not nil")
		}
	})

	t.Run("Tags Are Coerced and Deduplicated", func(t *testing.T) {
		n := Normalize(map[string]any{
			"tags": []any{"go", " go ", json.Number("1"), nil, "go", "notes"},
		}, testNow)
		want := []string{"go", "1", "notes"}
		if len(n.Tags) != len(want) {
			t.Fatalf("expected %v, got %v", want, n.Tags)
		}
		for i := range want {
			if n.Tags[i] != want[i] {
				t.Errorf("tag %d: expected %q, got %q", i, want[i], n.Tags[i])
			}
		}
	})

	t.Run("Missing Timestamps Default to Now", func(t *testing.T) {
		n := Normalize(map[string]any{}, testNow)
		if !n.CreatedAt.Equal(testNow) || !n.UpdatedAt.Equal(testNow) {
			t.Errorf("expected %v for both timestamps, got %v / %v", testNow, n.CreatedAt, n.UpdatedAt)
		}
	})

	t.Run("Parses RFC3339 and Unix Timestamps", func(t *testing.T) {
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		n := Normalize(map[string]any{
			"createdAt": created.Format(time.RFC3339),
			"updatedAt": json.Number("1717244400"),
		}, testNow)
		if !n.CreatedAt.Equal(created) {
			t.Errorf("expected createdAt %v, got %v", created, n.CreatedAt)
		}
		if n.UpdatedAt.Unix() != 1717244400 {
			t.Errorf("expected updatedAt unix 1717244400, got %d", n.UpdatedAt.Unix())
		}
	})

	t.Run("Missing UpdatedAt Falls Back to CreatedAt", func(t *testing.T) {
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		n := Normalize(map[string]any{"createdAt": created.Format(time.RFC3339)}, testNow)
		if !n.UpdatedAt.Equal(created) {
			t.Errorf("expected updatedAt to equal createdAt, got %v", n.UpdatedAt)
		}
	})
}

func TestDecodeList(t *testing.T) {
	t.Run("Decodes Array", func(t *testing.T) {
		notes, err := DecodeList([]byte(`[{"id":"a","title":"one"},{"id":"b"}]`), testNow)
		if err != nil {
			t.Fatalf("DecodeList failed: %v", err)
		}
		if len(notes) != 2 {
			t.Fatalf("expected 2 notes, got %d", len(notes))
		}
		if notes[0].Title != "one" {
			t.Errorf("expected title 'one', got %q", notes[0].Title)
		}
	})

	t.Run("Rejects Non-Array Document", func(t *testing.T) {
		if _, err := DecodeList([]byte(`{"id":"a"}`), testNow); err == nil {
			t.Error("expected error for non-array payload")
		}
	})

	t.Run("Rejects Malformed JSON", func(t *testing.T) {
		if _, err := DecodeList([]byte(`[{`), testNow); err == nil {
			t.Error("expected error for malformed payload")
		}
	})

	t.Run("Non-Object Entries Degrade to Defaults", func(t *testing.T) {
		notes, err := DecodeList([]byte(`["junk", 42]`), testNow)
		if err != nil {
			t.Fatalf("DecodeList failed: %v", err)
		}
		if len(notes) != 2 {
			t.Fatalf("expected 2 notes, got %d", len(notes))
		}
		for _, n := range notes {
			if n.ID == "" {
				t.Error("expected generated ID on degraded entry")
			}
		}
	})
}

func TestEncodeList(t *testing.T) {
	t.Run("Empty List Encodes as Array", func(t *testing.T) {
		data, err := EncodeList(nil)
		if err != nil {
			t.Fatalf("EncodeList failed: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("expected [], got %s", data)
		}
	})

	t.Run("Nil Tags Encode as Empty Array", func(t *testing.T) {
		data, err := EncodeList([]Note{{ID: "a"}})
		if err != nil {
			t.Fatalf("EncodeList failed: %v", err)
		}
		var decoded []map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("round trip failed: %v", err)
		}
		if _, ok := decoded[0]["tags"].([]any); !ok {
			t.Errorf("expected tags to be an array, got %T", decoded[0]["tags"])
		}
	})
}
