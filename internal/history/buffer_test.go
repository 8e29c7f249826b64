package history

import (
	"strconv"
	"testing"

	"github.com/zappabad/livecharts/internal/geom"
)

func TestBufferCapacity(t *testing.T) {
	b := NewBuffer(5)

	for i := 0; i < 12; i++ {
		_, ok := b.Record(geom.Point{X: float64(i * 10), Y: 0})
		if !ok {
			t.Fatalf("expected point %d to be recorded", i)
		}
		want := i + 1
		if want > 5 {
			want = 5
		}
		if b.Len() != want {
			t.Errorf("after %d records expected len %d, got %d", i+1, want, b.Len())
		}
	}

	entries := b.Entries()
	for i, e := range entries {
		// Oldest first: the last five X values were 70..110.
		if e.X != float64((i+7)*10) {
			t.Errorf("entry %d: expected x=%d, got %v", i, (i+7)*10, e.X)
		}
	}
}

func TestBufferSuppressesSmallMoves(t *testing.T) {
	b := NewBuffer(5)
	b.Record(geom.Point{X: 50, Y: 50})

	jitter := []geom.Point{{X: 50.5, Y: 50}, {X: 51, Y: 51}, {X: 49, Y: 49.2}, {X: 50, Y: 51}}
	for _, p := range jitter {
		if _, ok := b.Record(p); ok {
			t.Errorf("expected %+v to be suppressed", p)
		}
	}
	if b.Len() != 1 {
		t.Errorf("expected len 1, got %d", b.Len())
	}

	if _, ok := b.Record(geom.Point{X: 50, Y: 51.01}); !ok {
		t.Error("expected move of 1.01 on y to be recorded")
	}
	if _, ok := b.Record(geom.Point{X: 48.9, Y: 51.01}); !ok {
		t.Error("expected move of 1.1 on x to be recorded")
	}
	if b.Len() != 3 {
		t.Errorf("expected len 3, got %d", b.Len())
	}
}

func TestBufferLenMatchesSignificantEvents(t *testing.T) {
	b := NewBuffer(5)
	significant := 0
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: 3, Y: 0}, {X: 3, Y: 0.9}, {X: 3, Y: 5}, {X: 10, Y: 10}, {X: 10.2, Y: 10.2}, {X: 20, Y: 20}, {X: 30, Y: 30},
	}
	for _, p := range pts {
		if _, ok := b.Record(p); ok {
			significant++
		}
	}
	if significant != 6 {
		t.Fatalf("expected 6 significant events, got %d", significant)
	}
	if b.Len() != 5 {
		t.Errorf("expected len min(5,6)=5, got %d", b.Len())
	}
}

func TestBufferUniqueIDs(t *testing.T) {
	n := 0
	b := NewBuffer(3, WithIDFunc(func() string {
		n++
		return "h" + strconv.Itoa(n)
	}))
	for i := 0; i < 6; i++ {
		b.Record(geom.Point{X: float64(i * 5)})
	}
	seen := map[string]bool{}
	for _, e := range b.Entries() {
		if seen[e.ID] {
			t.Errorf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true
	}
	if last, _ := b.Last(); last.ID != "h6" {
		t.Errorf("expected last id h6, got %s", last.ID)
	}

	def := NewBuffer(2)
	e1, _ := def.Record(geom.Point{})
	e2, _ := def.Record(geom.Point{X: 10})
	if e1.ID == "" || e1.ID == e2.ID {
		t.Errorf("expected distinct uuid ids, got %q and %q", e1.ID, e2.ID)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(0)
	if b.Cap() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, b.Cap())
	}
	b.Record(geom.Point{X: 1})
	b.Record(geom.Point{X: 5})
	b.Clear()
	if b.Len() != 0 || b.Entries() != nil {
		t.Errorf("expected empty buffer after clear")
	}
	if _, ok := b.Last(); ok {
		t.Error("expected no last entry after clear")
	}
	// After clearing, the next point is recorded regardless of distance.
	if _, ok := b.Record(geom.Point{X: 5}); !ok {
		t.Error("expected first point after clear to be recorded")
	}
}

func TestBufferEntriesIsCopy(t *testing.T) {
	b := NewBuffer(2)
	b.Record(geom.Point{X: 1})
	out := b.Entries()
	out[0].X = 99
	if last, _ := b.Last(); last.X != 1 {
		t.Errorf("internal state mutated through Entries: %v", last.X)
	}
}
