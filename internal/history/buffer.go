package history

import (
	"math"

	"github.com/google/uuid"
	"github.com/zappabad/livecharts/internal/geom"
)

const (
	DefaultCapacity  = 5
	DefaultThreshold = 1.0
)

// Entry is one recorded position in the trail.
type Entry struct {
	ID string
	geom.Point
}

// Buffer is a ring buffer trail of recently visited positions (bounded memory).
// It is not safe for concurrent use; the owning controller serialises access.
type Buffer struct {
	buf       []Entry
	size      int
	start     int
	count     int
	threshold float64
	newID     func() string
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithThreshold sets the minimum per-axis delta for a point to be recorded.
func WithThreshold(d float64) Option {
	return func(b *Buffer) {
		if d >= 0 {
			b.threshold = d
		}
	}
}

// WithIDFunc replaces the identifier generator.
func WithIDFunc(f func() string) Option {
	return func(b *Buffer) {
		if f != nil {
			b.newID = f
		}
	}
}

// NewBuffer creates a trail holding at most capacity entries.
func NewBuffer(capacity int, opts ...Option) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	b := &Buffer{
		buf:       make([]Entry, capacity),
		size:      capacity,
		threshold: DefaultThreshold,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Record appends p when it moved more than the threshold on either axis since
// the last entry. The first point is always recorded. When full, the oldest
// entry is overwritten.
func (b *Buffer) Record(p geom.Point) (Entry, bool) {
	if last, ok := b.Last(); ok && !b.significant(last.Point, p) {
		return Entry{}, false
	}

	e := Entry{ID: b.newID(), Point: p}
	if b.count < b.size {
		b.buf[(b.start+b.count)%b.size] = e
		b.count++
		return e, true
	}
	// overwrite oldest
	b.buf[b.start] = e
	b.start = (b.start + 1) % b.size
	return e, true
}

func (b *Buffer) significant(last, p geom.Point) bool {
	return math.Abs(p.X-last.X) > b.threshold || math.Abs(p.Y-last.Y) > b.threshold
}

// Last returns the most recent entry.
func (b *Buffer) Last() (Entry, bool) {
	if b.count == 0 {
		return Entry{}, false
	}
	return b.buf[(b.start+b.count-1)%b.size], true
}

// Entries returns all entries oldest first.
// Returns a copy (not internal references).
func (b *Buffer) Entries() []Entry {
	if b.count == 0 {
		return nil
	}
	out := make([]Entry, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.buf[(b.start+i)%b.size]
	}
	return out
}

// Clear empties the trail.
func (b *Buffer) Clear() {
	clear(b.buf)
	b.start = 0
	b.count = 0
}

// Len returns the number of entries.
func (b *Buffer) Len() int {
	return b.count
}

// Cap returns the capacity.
func (b *Buffer) Cap() int {
	return b.size
}
