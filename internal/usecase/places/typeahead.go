package places

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SearchFunc is the lookup a Typeahead debounces.
type SearchFunc func(ctx context.Context, query string) ([]Place, error)

// Typeahead coalesces a stream of keystrokes into occasional searches.
// Each Query resets a single pending timer; only the last timer to survive
// the quiet period dispatches. Dispatches carry a monotonically increasing
// sequence number and a response older than the newest dispatch is dropped,
// so rapid typing cannot have a stale response overwrite a fresher one.
type Typeahead struct {
	search  SearchFunc
	quiet   time.Duration
	onMatch func([]Place)

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	closed bool
}

// NewTypeahead builds a debounced dispatcher. onMatch receives the results
// of the newest dispatch only.
func NewTypeahead(search SearchFunc, quiet time.Duration, onMatch func([]Place)) *Typeahead {
	return &Typeahead{search: search, quiet: quiet, onMatch: onMatch}
}

// Query schedules a search for q after the quiet period, superseding any
// search still pending.
func (t *Typeahead) Query(ctx context.Context, q string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.quiet, func() { t.dispatch(ctx, q) })
}

func (t *Typeahead) dispatch(ctx context.Context, q string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.seq++
	id := t.seq
	t.mu.Unlock()

	results, err := t.search(ctx, q)
	if err != nil {
		slog.Debug("typeahead search failed", "query", q, "error", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || id != t.seq {
		// A newer dispatch went out while this one was in flight.
		return
	}
	t.onMatch(results)
}

// Close stops the pending timer and suppresses any in-flight results.
func (t *Typeahead) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
	}
}
