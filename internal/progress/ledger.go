package progress

import (
	"fmt"
	"sync"

	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/logging"
)

// Status labels for a lesson.
const (
	StatusCompleted    = "completed"
	StatusNotCompleted = "not completed"
)

// Ledger is the in-memory view of completed lessons, written through to a Store.
type Ledger struct {
	mu    sync.Mutex
	store Store
	order []string
	done  map[string]bool
}

// Load reads the ledger from store. Missing or unreadable data yields an
// empty ledger; it never fails.
func Load(store Store) *Ledger {
	l := &Ledger{store: store, done: make(map[string]bool)}
	if store == nil {
		return l
	}
	entries, err := store.Load()
	if err != nil {
		colors.Warning(fmt.Sprintf("ignoring unreadable progress data: %v", err))
		logging.Warn("progress load failed", "error", err)
		return l
	}
	l.replace(entries)
	return l
}

// replace resets the in-memory state to the true entries, keeping their order.
// When a key repeats, its last value wins and its first position is kept.
func (l *Ledger) replace(entries []Entry) {
	final := make(map[string]bool, len(entries))
	for _, e := range entries {
		final[e.Key] = e.Completed
	}
	l.order = l.order[:0]
	l.done = make(map[string]bool, len(entries))
	for _, e := range entries {
		if !final[e.Key] || l.done[e.Key] {
			continue
		}
		l.done[e.Key] = true
		l.order = append(l.order, e.Key)
	}
}

// IsCompleted reports whether key has been marked completed.
func (l *Ledger) IsCompleted(key Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done[key.String()]
}

// Status returns the display label for key.
func (l *Ledger) Status(key Key) string {
	if l.IsCompleted(key) {
		return StatusCompleted
	}
	return StatusNotCompleted
}

// MarkCompleted sets key to completed and persists the full ledger.
// Marking an already completed key is a no-op apart from the persist.
// The mark stays in memory even when persisting fails.
func (l *Ledger) MarkCompleted(key Key) error {
	if err := key.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	k := key.String()
	if !l.done[k] {
		l.done[k] = true
		l.order = append(l.order, k)
	}
	if l.store == nil {
		return nil
	}

	var merged []Entry
	err := l.store.Update(func(current []Entry) []Entry {
		merged = l.merge(current)
		return merged
	})
	if err != nil {
		logging.Error("progress persist failed", "key", k, "error", err)
		return fmt.Errorf("persist progress: %w", err)
	}
	l.replace(merged)
	logging.Debug("lesson completed", "key", k)
	return nil
}

// merge appends in-memory completions missing from the persisted entries.
// Persisted entries are kept as stored so concurrent writers do not lose marks.
// A repeated persisted key collapses to its last value.
func (l *Ledger) merge(persisted []Entry) []Entry {
	out := make([]Entry, 0, len(persisted)+len(l.order))
	index := make(map[string]int, len(persisted))
	for _, e := range persisted {
		if i, ok := index[e.Key]; ok {
			out[i].Completed = e.Completed
			continue
		}
		index[e.Key] = len(out)
		out = append(out, e)
	}
	for _, k := range l.order {
		if i, ok := index[k]; ok {
			out[i].Completed = true
			continue
		}
		index[k] = len(out)
		out = append(out, Entry{Key: k, Completed: true})
	}
	return out
}

// Keys returns the completed keys in ledger order. Stored keys that do not
// parse are skipped.
func (l *Ledger) Keys() []Key {
	l.mu.Lock()
	defer l.mu.Unlock()
	keys := make([]Key, 0, len(l.order))
	for _, k := range l.order {
		key, err := ParseKey(k)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// Snapshot returns the completed entries as a flat mapping.
func (l *Ledger) Snapshot() map[string]bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]bool, len(l.done))
	for k := range l.done {
		out[k] = true
	}
	return out
}

// Len returns the number of completed entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}
