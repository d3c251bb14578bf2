package exec

import (
	"context"
	"sync"
	"time"
)

// Queue is a thread-safe task queue with a configurable pop order. Pushes
// never block; pops block until a task is available or the caller's context
// expires.
type Queue[R any] struct {
	mu     sync.Mutex
	tasks  []Task[R]
	policy Policy
	notify chan struct{}
}

// NewQueue builds an empty queue popping in the given order.
func NewQueue[R any](policy Policy) *Queue[R] {
	return &Queue[R]{
		policy: policy,
		notify: make(chan struct{}, 1),
	}
}

// Push adds a task to the queue and wakes one waiting consumer.
func (q *Queue[R]) Push(t Task[R]) {
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	q.wake()
}

// Emplace builds a task around work and pushes it.
func (q *Queue[R]) Emplace(work func(ctx context.Context) (R, error)) {
	q.Push(NewTask(work))
}

// Pop removes one task, blocking until a task is available or ctx is done.
func (q *Queue[R]) Pop(ctx context.Context) (Task[R], error) {
	for {
		if t, ok := q.take(); ok {
			return t, nil
		}

		select {
		case <-ctx.Done():
			var zero Task[R]
			return zero, ctx.Err()
		case <-q.notify:
		}
	}
}

// PopFor removes one task, waiting up to timeout. The second return value
// is false when the wait timed out.
func (q *Queue[R]) PopFor(timeout time.Duration) (Task[R], bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	t, err := q.Pop(ctx)
	return t, err == nil
}

// Size returns the task count.
func (q *Queue[R]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue[R]) take() (Task[R], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.tasks)
	if n == 0 {
		var zero Task[R]
		return zero, false
	}

	var t Task[R]
	switch q.policy {
	case LIFO:
		t = q.tasks[n-1]
		q.tasks = q.tasks[:n-1]
	default:
		t = q.tasks[0]
		q.tasks = q.tasks[1:]
	}

	// keep other waiters moving when tasks remain
	if len(q.tasks) > 0 {
		q.wake()
	}
	return t, true
}

func (q *Queue[R]) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
