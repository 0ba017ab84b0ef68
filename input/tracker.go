package input

import (
	"sort"
	"sync"
)

// Tracker records which keys are currently held, keyed by identifier.
// It is safe for concurrent use.
type Tracker struct {
	mu   sync.RWMutex
	held map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{held: make(map[string]bool)}
}

// RecordKeyDown marks key as held.
func (t *Tracker) RecordKeyDown(key string) {
	t.mu.Lock()
	t.held[key] = true
	t.mu.Unlock()
}

// RecordKeyUp marks key as released.
func (t *Tracker) RecordKeyUp(key string) {
	t.mu.Lock()
	t.held[key] = false
	t.mu.Unlock()
}

// IsHeld reports whether key is held. Keys never seen are not held.
func (t *Tracker) IsHeld(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.held[key]
}

// Held returns the identifiers of all held keys in sorted order.
func (t *Tracker) Held() []string {
	t.mu.RLock()
	keys := make([]string, 0, len(t.held))
	for k, down := range t.held {
		if down {
			keys = append(keys, k)
		}
	}
	t.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
