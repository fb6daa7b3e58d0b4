// Implements the FIFO queue of free systems awaiting their next proposal
// round. Systems are enqueued at the start of a run and re-enqueued when
// displaced by a more preferred proposer.

package alloc

// proposerQueue is a FIFO queue of systems that still have proposals to make.
type proposerQueue struct {
	queue []SystemID
}

// Enqueue adds a system to the back of the queue.
func (pq *proposerQueue) Enqueue(id SystemID) {
	pq.queue = append(pq.queue, id)
}

// Dequeue removes and returns the system at the front of the queue.
// Returns "" if the queue is empty.
func (pq *proposerQueue) Dequeue() SystemID {
	if len(pq.queue) == 0 {
		return ""
	}
	id := pq.queue[0]
	pq.queue = pq.queue[1:]
	return id
}

// Len returns the number of systems in the queue.
func (pq *proposerQueue) Len() int {
	return len(pq.queue)
}
