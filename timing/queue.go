package timing

import (
	"container/heap"
	"sync"
)

// eventQueue orders events by cycle. Within a cycle, primary events come
// before secondary ones and each group is first-in first-out.
type eventQueue struct {
	lock   sync.Mutex
	events eventHeap
	seq    uint64
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(&q.events)

	return q
}

func (q *eventQueue) push(evt ScheduledEvent) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.seq++
	heap.Push(&q.events, queuedEvent{evt: evt, seq: q.seq})
}

func (q *eventQueue) pop() (ScheduledEvent, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.events) == 0 {
		return ScheduledEvent{}, false
	}

	return heap.Pop(&q.events).(queuedEvent).evt, true
}

func (q *eventQueue) len() int {
	q.lock.Lock()
	defer q.lock.Unlock()

	return len(q.events)
}

type queuedEvent struct {
	evt ScheduledEvent
	seq uint64
}

func (a queuedEvent) before(b queuedEvent) bool {
	switch {
	case a.evt.Time != b.evt.Time:
		return a.evt.Time < b.evt.Time
	case a.evt.IsSecondary != b.evt.IsSecondary:
		return !a.evt.IsSecondary
	default:
		return a.seq < b.seq
	}
}

type eventHeap []queuedEvent

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].before(h[j]) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(queuedEvent))
}

func (h *eventHeap) Pop() any {
	old := *h
	last := old[len(old)-1]
	*h = old[:len(old)-1]

	return last
}
