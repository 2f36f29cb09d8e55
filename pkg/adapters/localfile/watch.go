package localfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"scrib/pkg/core"
)

const watchDebounce = 50 * time.Millisecond

// Watch observes external changes to the storage blob.
// Events are computed as a diff of the note list before and after each
// (debounced) change, so consumers see one CREATE/MODIFY/DELETE per note
// rather than raw filesystem noise. The channel closes when ctx ends.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	events := make(chan core.Event, s.config.EventBuffer)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	pattern   string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc

	reloadMu sync.Mutex
	last     map[string]core.Note
}

func newWatchWorker(store *Store, pattern string, events chan core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("store-watcher"),
		store:      store,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic rename replaces the
	// inode, so a file watch would go stale after the first write.
	if err := watcher.Add(w.store.Path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.store.Path, err)
	}

	notes, err := w.store.Load(ctx)
	if err != nil {
		_ = watcher.Close()
		return err
	}
	w.last = indexByID(notes)

	w.watcher = watcher
	w.debouncer = newDebouncer(watchDebounce)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err := w.loop(ctx)

	// Shutdown debouncer: stop accepting new events and wait for all
	// in-flight timers before the deferred close of the events channel.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

func (w *watchWorker) handleEvent(ctx context.Context, event fsnotify.Event) {
	if w.shouldIgnore(event) {
		return
	}

	w.store.config.Logger.Debug("store change detected", "op", event.Op.String(), "name", event.Name)

	// All changes collapse into one debounced reload; the diff decides
	// what actually happened.
	w.debouncer.add("reload", func() {
		w.reload(ctx)
	})
}

func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)

	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return true
	}

	pattern := w.pattern
	if pattern == "" {
		pattern = StoreFile
	}
	ok, err := doublestar.Match(pattern, base)
	if err != nil {
		return base != StoreFile
	}
	return !ok
}

// reload recomputes the note list and emits one event per changed note.
// It runs under lifecycle.Go so a panic inside the diff path is reported
// instead of tearing down the process.
func (w *watchWorker) reload(ctx context.Context) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		w.reloadMu.Lock()
		defer w.reloadMu.Unlock()

		cur, err := w.store.Load(ctx)
		if err != nil {
			w.store.config.Logger.Error("store reload failed", "error", err)
			return err
		}

		events := diffNotes(w.last, cur, time.Now().Unix())
		w.last = indexByID(cur)

		for _, e := range events {
			w.send(ctx, e)
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		w.store.config.Logger.Error("store reload panic", "error", err)
	}))
}

// send enqueues an event, protecting against channel closure during
// shutdown.
func (w *watchWorker) send(ctx context.Context, e core.Event) {
	defer func() {
		_ = recover()
	}()
	select {
	case w.events <- e:
	case <-ctx.Done():
	}
}

func indexByID(notes []core.Note) map[string]core.Note {
	idx := make(map[string]core.Note, len(notes))
	for _, n := range notes {
		idx[n.ID] = n
	}
	return idx
}

func diffNotes(old map[string]core.Note, cur []core.Note, ts int64) []core.Event {
	var events []core.Event

	seen := make(map[string]struct{}, len(cur))
	for _, n := range cur {
		seen[n.ID] = struct{}{}

		prev, ok := old[n.ID]
		if !ok {
			events = append(events, core.Event{Type: core.EventCreate, ID: n.ID, Timestamp: ts})
			continue
		}
		if noteChanged(prev, n) {
			events = append(events, core.Event{Type: core.EventModify, ID: n.ID, Timestamp: ts})
		}
	}

	for id := range old {
		if _, ok := seen[id]; !ok {
			events = append(events, core.Event{Type: core.EventDelete, ID: id, Timestamp: ts})
		}
	}
	return events
}

func noteChanged(a, b core.Note) bool {
	if a.Title != b.Title || a.Content != b.Content || !a.UpdatedAt.Equal(b.UpdatedAt) {
		return true
	}
	if len(a.Tags) != len(b.Tags) {
		return true
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return true
		}
	}
	return false
}
