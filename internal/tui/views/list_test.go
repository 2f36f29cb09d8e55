package views

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"scrib/pkg/adapters/localfile"
	"scrib/pkg/core"
)

func setupListModel(t *testing.T, readOnly bool) (*ListModel, *core.Service) {
	t.Helper()

	dir := t.TempDir()

	writer := core.NewService(localfile.NewStore(localfile.Config{Path: dir, AutoInit: true}))
	ctx := context.Background()
	if _, err := writer.Create(ctx, "Groceries", "milk", []string{"home"}); err != nil {
		t.Fatal(err)
	}
	if _, err := writer.Create(ctx, "Standup", "blocked", []string{"work"}); err != nil {
		t.Fatal(err)
	}

	svc := writer
	if readOnly {
		svc = core.NewService(localfile.NewStore(localfile.Config{Path: dir, ReadOnly: true}))
	}

	m := NewListModel(svc, readOnly, core.SortUpdated)
	// Run the load command synchronously and feed the result back.
	if msg := m.load(); msg != nil {
		m.Update(msg)
	}
	return m, writer
}

func TestListModel_LoadAndRender(t *testing.T) {
	m, _ := setupListModel(t, false)

	if len(m.notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(m.notes))
	}

	view := m.View()
	if !strings.Contains(view, "Groceries") || !strings.Contains(view, "Standup") {
		t.Errorf("view missing note titles:\n%s", view)
	}
	if strings.Contains(view, "read-only") {
		t.Error("writable view should not show the read-only badge")
	}
}

func TestListModel_TagCycle(t *testing.T) {
	m, _ := setupListModel(t, false)

	// First press activates the first tag (sorted by name: home).
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if msg := m.load(); msg != nil {
		m.Update(msg)
	}

	if len(m.notes) != 1 || m.notes[0].Title != "Groceries" {
		t.Fatalf("expected only the home-tagged note, got %+v", m.notes)
	}

	// Cycle past the last tag back to no filter.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if msg := m.load(); msg != nil {
		m.Update(msg)
	}

	if len(m.notes) != 2 {
		t.Errorf("expected filter cleared, got %d notes", len(m.notes))
	}
}

func TestListModel_ReadOnlyBlocksMutations(t *testing.T) {
	m, _ := setupListModel(t, true)

	view := m.View()
	if !strings.Contains(view, "read-only") {
		t.Error("read-only view should show the badge")
	}

	for _, r := range []rune{'n', 'e', 'd'} {
		m.ClearMessage()
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if cmd != nil {
			t.Errorf("key %q should not produce a command in read-only mode", r)
		}
		if m.Message != "read-only mode" {
			t.Errorf("key %q: message = %q", r, m.Message)
		}
	}
}

func TestNextSortMode(t *testing.T) {
	if got := nextSortMode(core.SortUpdated); got != core.SortCreated {
		t.Errorf("after updated: %s", got)
	}
	if got := nextSortMode(core.SortCreated); got != core.SortTitle {
		t.Errorf("after created: %s", got)
	}
	if got := nextSortMode(core.SortTitle); got != core.SortUpdated {
		t.Errorf("after title: %s", got)
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags(" work, home ,work,  ")
	if len(got) != 2 || got[0] != "work" || got[1] != "home" {
		t.Errorf("splitTags = %v", got)
	}
}
