package core

import (
	"strings"
	"time"
)

// Note is the central entity of the domain.
// It represents a single user-authored record identified by an opaque ID.
// The ID is assigned once at creation and never changes; UpdatedAt is
// refreshed on every edit.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeTags trims whitespace, drops empty entries and removes
// duplicates while preserving the order of first occurrence.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// HasTag reports whether the note carries the exact tag.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Touch refreshes the modification timestamp.
func (n *Note) Touch(now time.Time) {
	n.UpdatedAt = now
}
