package exec

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Dessera/fp/pkg/result"
)

// Task wraps a unit of fallible work producing an R.
type Task[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	work      func(ctx context.Context) (R, error)
}

// NewTask builds a task around work.
func NewTask[R any](work func(ctx context.Context) (R, error)) Task[R] {
	return Task[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		work:      work,
	}
}

// Id returns the identity stamp assigned at construction.
func (t Task[R]) Id() uuid.UUID {
	return t.id
}

// CreatedAt returns the construction time (UTC).
func (t Task[R]) CreatedAt() time.Time {
	return t.createdAt
}

// Run executes the task and folds its outcome into a Result. A task built
// without work fails.
func (t Task[R]) Run(ctx context.Context) result.Result[R, error] {
	if t.work == nil {
		return result.Err[R, error](errors.New("task has no work"))
	}
	return result.From(t.work(ctx))
}
