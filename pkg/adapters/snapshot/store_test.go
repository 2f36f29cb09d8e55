package snapshot_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"scrib/pkg/adapters/snapshot"
	"scrib/pkg/core"
)

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a","title":"published"},{"title":"no id"}]`))
	}))
	defer srv.Close()

	store := snapshot.NewStore(srv.URL, snapshot.WithHTTPClient(srv.Client()))
	ctx := context.Background()

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	notes, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Title != "published" {
		t.Errorf("expected title 'published', got %q", notes[0].Title)
	}
	if notes[1].ID == "" {
		t.Error("expected normalization to assign an ID")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "published.json")
	if err := os.WriteFile(path, []byte(`[{"id":"f","title":"from disk"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	store := snapshot.NewStore(path)

	// Initialize skipped on purpose: Load fetches lazily.
	notes, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "f" {
		t.Errorf("expected note f, got %v", notes)
	}
}

func TestMutationsBlocked(t *testing.T) {
	store := snapshot.NewStore("unused.json")

	err := store.Replace(context.Background(), []core.Note{{ID: "x"}})
	if !errors.Is(err, core.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestInitializeFailures(t *testing.T) {
	t.Run("Non-Array Snapshot", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"notes":[]}`))
		}))
		defer srv.Close()

		store := snapshot.NewStore(srv.URL, snapshot.WithHTTPClient(srv.Client()))
		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected error for non-array snapshot")
		}
	})

	t.Run("HTTP Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		store := snapshot.NewStore(srv.URL, snapshot.WithHTTPClient(srv.Client()))
		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected error for 404 snapshot")
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		store := snapshot.NewStore(filepath.Join(t.TempDir(), "missing.json"))
		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected error for missing snapshot file")
		}
	})
}
