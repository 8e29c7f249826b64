package session

import (
	"sync"

	"github.com/zappabad/livecharts/internal/sim"
)

// Activity keeps the most recent updates across every chart.
type Activity struct {
	mu       sync.RWMutex
	updates  []sim.Update
	capacity int
}

// NewActivity creates an Activity holding at most capacity updates.
func NewActivity(capacity int) *Activity {
	if capacity <= 0 {
		capacity = DefaultConfig().ActivityCapacity
	}
	return &Activity{
		updates:  make([]sim.Update, 0, capacity),
		capacity: capacity,
	}
}

// Add appends ev, evicting the oldest update when full.
func (a *Activity) Add(ev sim.Update) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.updates) >= a.capacity {
		a.updates = a.updates[1:]
	}
	a.updates = append(a.updates, ev)
}

// Latest returns up to n updates, oldest first.
func (a *Activity) Latest(n int) []sim.Update {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if n <= 0 || len(a.updates) == 0 {
		return nil
	}
	if n > len(a.updates) {
		n = len(a.updates)
	}
	out := make([]sim.Update, n)
	copy(out, a.updates[len(a.updates)-n:])
	return out
}

// Count returns the number of retained updates.
func (a *Activity) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.updates)
}
