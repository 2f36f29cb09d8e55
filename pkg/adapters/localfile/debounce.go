package localfile

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of filesystem events into a single callback
// per key. Editors and atomic renames produce several events for one
// logical change; without debouncing every save would emit a storm of
// reloads.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fn to run after the debounce delay. Re-adding the same
// key before the timer fires pushes the deadline back.
func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[key]; ok {
		t.Reset(d.delay)
		return
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, key)
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			fn()
		}
	})
}

// stopAndWait rejects new work, cancels pending timers and waits for
// in-flight callbacks to finish, up to the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			// Timer never fired; settle its wait-group slot here.
			d.wg.Done()
			delete(d.timers, key)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
