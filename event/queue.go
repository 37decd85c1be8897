package event

import (
	"sync/atomic"

	"github.com/lixenwraith/ironhull/parameter"
)

// EventQueue carries simulation events from the systems that raise them
// to the router at the top of the next frame. Producers are the systems
// themselves plus the input goroutine, so Push stays lock-free CAS with
// published flags; Consume belongs to the simulation loop alone.
//
// When the ring fills, the oldest unread events are overwritten and
// counted; a rising drop count in the diagnostics dump means a system
// is flooding the queue
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // true once the slot is fully written
	head      atomic.Uint64
	tail      atomic.Uint64
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	eq := &EventQueue{}
	eq.head.Store(0)
	eq.tail.Store(0)
	return eq
}

// Push enqueues one event; safe for concurrent producers
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // must follow the slot write

			// Overwriting unread events: advance head over them
			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				newHead := nextTail - parameter.EventQueueSize
				if eq.head.CompareAndSwap(currentHead, newHead) {
					eq.dropped.Add(newHead - currentHead)
				}
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Single consumer; published flags guard against half-written slots
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.EventQueueSize {
			maxAvailable = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask

			if !eq.published[idx].Load() {
				break // writer incomplete
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}

// Dropped returns the number of events lost to ring overflow since start
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
