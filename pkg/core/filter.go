package core

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SortMode selects the derived display order of the note list.
type SortMode string

const (
	// SortUpdated orders by most recent update first. This is the default.
	SortUpdated SortMode = "updated"
	// SortCreated orders by most recent creation first.
	SortCreated SortMode = "created"
	// SortTitle orders lexically by title, case-insensitive.
	SortTitle SortMode = "title"
)

// ParseSortMode maps user input to a SortMode, defaulting to SortUpdated.
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "created":
		return SortCreated
	case "title":
		return SortTitle
	default:
		return SortUpdated
	}
}

// Query describes one run of the filter/sort pipeline.
// The displayed list is always recomputed from scratch: text filter,
// then tag intersection, then a stable sort.
type Query struct {
	// Text is matched case-insensitively as a substring of title,
	// content, or any tag. Empty means no text filter.
	Text string

	// Tags are the active tag filters. A note must carry a tag matching
	// every term. Terms may be doublestar globs, so hierarchical tags can
	// be selected with patterns like "work/*".
	Tags []string

	Sort SortMode
}

// Apply runs the pipeline over notes and returns a new slice.
// The input is never reordered; ties keep the underlying insertion order
// because the sort is stable.
func (q Query) Apply(notes []Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if q.matches(n) {
			out = append(out, n)
		}
	}
	sortNotes(out, q.Sort)
	return out
}

func (q Query) matches(n Note) bool {
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !strings.Contains(strings.ToLower(n.Title), text) &&
			!strings.Contains(strings.ToLower(n.Content), text) &&
			!anyTagContains(n.Tags, text) {
			return false
		}
	}
	for _, term := range q.Tags {
		if !hasTagMatching(n.Tags, term) {
			return false
		}
	}
	return true
}

func anyTagContains(tags []string, text string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), text) {
			return true
		}
	}
	return false
}

// hasTagMatching matches one active tag term against the note's tags.
// A literal tag is the degenerate glob; a malformed pattern falls back to
// plain equality.
func hasTagMatching(tags []string, term string) bool {
	for _, tag := range tags {
		ok, err := doublestar.Match(term, tag)
		if err != nil {
			if tag == term {
				return true
			}
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

func sortNotes(notes []Note, mode SortMode) {
	switch mode {
	case SortTitle:
		sort.SliceStable(notes, func(i, j int) bool {
			return strings.ToLower(notes[i].Title) < strings.ToLower(notes[j].Title)
		})
	case SortCreated:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		})
	default:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
		})
	}
}

// TagCount pairs a tag with the number of notes carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountTags derives the catalog of distinct tags across the note list,
// sorted by name.
func CountTags(notes []Note) []TagCount {
	counts := make(map[string]int)
	for _, n := range notes {
		for _, tag := range n.Tags {
			counts[tag]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, TagCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
