package event

import (
	"testing"

	"github.com/lixenwraith/ironhull/parameter"
)

func TestQueuePushConsumeFIFO(t *testing.T) {
	q := NewEventQueue()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventDroneDamaged, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d events, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d, order broken", i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Errorf("second consume returned events from an empty queue")
	}
}

func TestQueueOverflowDropsOldestAndCounts(t *testing.T) {
	q := NewEventQueue()

	over := 10
	for i := 0; i < parameter.EventQueueSize+over; i++ {
		q.Push(GameEvent{Type: EventWeaponFired, Frame: int64(i)})
	}

	if got := q.Dropped(); got != uint64(over) {
		t.Errorf("Dropped = %d, want %d", got, over)
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("consumed %d events, want a full ring of %d", len(got), parameter.EventQueueSize)
	}
	// Survivors are the newest; the first ten were overwritten
	if got[0].Frame != int64(over) {
		t.Errorf("oldest surviving frame = %d, want %d", got[0].Frame, over)
	}
	if last := got[len(got)-1].Frame; last != int64(parameter.EventQueueSize+over-1) {
		t.Errorf("newest surviving frame = %d, want %d", last, parameter.EventQueueSize+over-1)
	}
}
