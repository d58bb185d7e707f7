// Package frame provides the animation-frame primitives the motion engine is
// scheduled on: a callback queue flushed once per frame tick and clocks.
package frame

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Queue collects callbacks for the next frame. A host loop (a bubbletea tick,
// a test driver) calls Flush once per frame. Queue is not safe for concurrent
// use.
type Queue struct {
	next    Handle
	order   []Handle
	pending map[Handle]func()
}

// NewQueue creates an empty frame queue.
func NewQueue() *Queue {
	return &Queue{pending: make(map[Handle]func())}
}

// Schedule queues fn for the next Flush.
func (q *Queue) Schedule(fn func()) Handle {
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

// Cancel drops a queued callback. Cancelling a fired or unknown handle is a no-op.
func (q *Queue) Cancel(h Handle) {
	delete(q.pending, h)
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback queued before the call, in scheduling order, and
// returns how many ran. Callbacks queued while flushing wait for the next frame.
func (q *Queue) Flush() int {
	batch := q.order
	q.order = nil
	ran := 0
	for _, h := range batch {
		fn, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		fn()
		ran++
	}
	return ran
}
