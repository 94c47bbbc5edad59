package download

import (
	"sort"
	"sync"
)

// Tracker holds the in-progress flag of each media item, keyed by its
// position in the result list. Items are independent; there is no queue.
type Tracker struct {
	mu     sync.Mutex
	active map[int]struct{}
}

// Begin marks index as downloading. It reports false if it already was.
func (t *Tracker) Begin(index int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		t.active = make(map[int]struct{})
	}
	if _, ok := t.active[index]; ok {
		return false
	}
	t.active[index] = struct{}{}
	return true
}

func (t *Tracker) End(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, index)
}

func (t *Tracker) Active(index int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[index]
	return ok
}

// Snapshot returns the indices currently downloading in ascending order.
func (t *Tracker) Snapshot() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]int, 0, len(t.active))
	for i := range t.active {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Track runs fn with index flagged, clearing the flag however fn returns.
// It reports false without running fn if index is already in progress.
func (t *Tracker) Track(index int, fn func()) bool {
	if !t.Begin(index) {
		return false
	}
	defer t.End(index)
	fn()
	return true
}
