package services

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is how long input must pause before a query fires.
const DefaultSearchDebounce = 800 * time.Millisecond

// Debouncer collapses a burst of calls into one: each Trigger restarts the
// timer, and only the last callback runs once the interval passes untouched.
// Purely a timing policy; it knows nothing about queries.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultSearchDebounce
	}
	return &Debouncer{interval: interval}
}

// Trigger schedules fn after the interval, cancelling any pending callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels the pending callback, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
