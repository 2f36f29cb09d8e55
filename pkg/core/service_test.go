package core_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"scrib/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable to test the fallback
// error path.
type MockRepository struct {
	notes    []core.Note
	failNext error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{notes: []core.Note{}}
}

func (m *MockRepository) Load(ctx context.Context) ([]core.Note, error) {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return nil, err
	}
	out := make([]core.Note, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

func (m *MockRepository) Replace(ctx context.Context, notes []core.Note) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.notes = make([]core.Note, len(notes))
	copy(m.notes, notes)
	return nil
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func newTestService(repo *MockRepository, now *time.Time) *core.Service {
	return core.NewService(repo,
		core.WithClock(func() time.Time { return *now }),
	)
}

func TestServiceCreate(t *testing.T) {
	repo := NewMockRepository()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &now)
	ctx := context.Background()

	n, err := svc.Create(ctx, "First", "body", []string{"go", "go", " notes "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if n.ID == "" {
		t.Error("expected generated ID")
	}
	if !n.CreatedAt.Equal(now) || !n.UpdatedAt.Equal(now) {
		t.Errorf("expected both timestamps %v, got %v / %v", now, n.CreatedAt, n.UpdatedAt)
	}
	if len(n.Tags) != 2 || n.Tags[0] != "go" || n.Tags[1] != "notes" {
		t.Errorf("expected normalized tags [go notes], got %v", n.Tags)
	}
	if len(repo.notes) != 1 {
		t.Fatalf("expected 1 persisted note, got %d", len(repo.notes))
	}
}

func TestServiceUpdate(t *testing.T) {
	t.Run("Preserves ID and CreatedAt, Refreshes UpdatedAt", func(t *testing.T) {
		repo := NewMockRepository()
		now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		svc := newTestService(repo, &now)
		ctx := context.Background()

		created, err := svc.Create(ctx, "Draft", "v1", nil)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		now = now.Add(2 * time.Hour)
		updated, err := svc.Update(ctx, created.ID, "Final", "v2", []string{"done"})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if updated.ID != created.ID {
			t.Errorf("identifier changed on edit: %q -> %q", created.ID, updated.ID)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("creation timestamp changed on edit")
		}
		if !updated.UpdatedAt.Equal(now) {
			t.Errorf("expected UpdatedAt %v, got %v", now, updated.UpdatedAt)
		}
		if updated.Title != "Final" || updated.Content != "v2" {
			t.Errorf("fields not updated: %+v", updated)
		}
	})

	t.Run("Unknown ID Returns ErrNotFound", func(t *testing.T) {
		repo := NewMockRepository()
		now := time.Now()
		svc := newTestService(repo, &now)

		_, err := svc.Update(context.Background(), "missing", "t", "c", nil)
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestServiceDelete(t *testing.T) {
	repo := NewMockRepository()
	now := time.Now()
	svc := newTestService(repo, &now)
	ctx := context.Background()

	n, _ := svc.Create(ctx, "bye", "", nil)

	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.notes) != 0 {
		t.Errorf("expected empty store, got %d notes", len(repo.notes))
	}
	if err := svc.Delete(ctx, n.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestServiceClear(t *testing.T) {
	repo := NewMockRepository()
	now := time.Now()
	svc := newTestService(repo, &now)
	ctx := context.Background()

	svc.Create(ctx, "a", "", nil)
	svc.Create(ctx, "b", "", nil)

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	notes, _ := svc.List(ctx, core.Query{})
	if len(notes) != 0 {
		t.Errorf("expected empty list after clear, got %d", len(notes))
	}
}

func TestServiceImport(t *testing.T) {
	t.Run("Replaces Entire Store", func(t *testing.T) {
		repo := NewMockRepository()
		now := time.Now()
		svc := newTestService(repo, &now)
		ctx := context.Background()

		svc.Create(ctx, "old", "", nil)

		count, err := svc.Import(ctx, strings.NewReader(`[{"title":"imported"},{"title":"other"}]`))
		if err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 imported notes, got %d", count)
		}
		notes, _ := svc.List(ctx, core.Query{})
		if len(notes) != 2 {
			t.Fatalf("expected store replaced with 2 notes, got %d", len(notes))
		}
		for _, n := range notes {
			if n.Title == "old" {
				t.Error("old note survived a destructive import")
			}
		}
	})

	t.Run("Non-Array JSON Leaves Store Unchanged", func(t *testing.T) {
		repo := NewMockRepository()
		now := time.Now()
		svc := newTestService(repo, &now)
		ctx := context.Background()

		svc.Create(ctx, "keep me", "", nil)

		if _, err := svc.Import(ctx, strings.NewReader(`{"title":"not a list"}`)); err == nil {
			t.Fatal("expected error for non-array import")
		}
		notes, _ := svc.List(ctx, core.Query{})
		if len(notes) != 1 || notes[0].Title != "keep me" {
			t.Errorf("store changed after failed import: %v", notes)
		}
	})
}

func TestServiceExport(t *testing.T) {
	repo := NewMockRepository()
	now := time.Now()
	svc := newTestService(repo, &now)
	ctx := context.Background()

	svc.Create(ctx, "exported", "body", []string{"tag"})

	var buf bytes.Buffer
	if err := svc.Export(ctx, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Round trip through import to verify the export is loadable.
	count, err := svc.Import(ctx, &buf)
	if err != nil {
		t.Fatalf("re-import of export failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 note after round trip, got %d", count)
	}
	n, err := svc.List(ctx, core.Query{})
	if err != nil || len(n) != 1 || n[0].Title != "exported" {
		t.Errorf("round trip lost data: %v (%v)", n, err)
	}
}

func TestServiceExportFile(t *testing.T) {
	repo := NewMockRepository()
	now := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	svc := newTestService(repo, &now)

	path, err := svc.ExportFile(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}
	if !strings.HasSuffix(path, "scrib-export-20250501-093000.json") {
		t.Errorf("unexpected export filename: %s", path)
	}
}

func TestServiceWatchUnsupported(t *testing.T) {
	repo := NewMockRepository()
	now := time.Now()
	svc := newTestService(repo, &now)

	if _, err := svc.Watch(context.Background(), ""); err == nil {
		t.Error("expected error when repository is not watchable")
	}
}
