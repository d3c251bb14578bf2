package result

import (
	"time"

	"github.com/google/uuid"
)

// Result is a closed sum over a success value of type T and a failure value
// of type E. Exactly one arm is active for the whole lifetime of a value and
// there is no empty state: Ok and Err are the only constructors.
//
// A Result is an ordinary value. Operations documented as consuming take the
// Result by value and hand ownership of the payload to their output; the
// source should not be reused after such a call except through the _Or
// family, which never faults.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	errValue  E
	ok        bool
}

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err wraps a failure value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		errValue:  e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// IsOk reports whether the success arm is active.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the failure arm is active.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether the success arm is active and its value satisfies
// pred. The predicate receives a copy of the value; the Result stays usable
// afterwards.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether the failure arm is active and its error satisfies
// pred. The predicate receives a copy of the error; the Result stays usable
// afterwards.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.errValue)
}

// Inspect invokes f with the success value, at most once and only when the
// success arm is active, then returns the Result unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	for v := range r.Values() {
		f(v)
	}
	return r
}

// InspectErr invokes f with the failure value, at most once and only when
// the failure arm is active, then returns the Result unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	for e := range r.Errors() {
		f(e)
	}
	return r
}

// Id returns the identity stamp assigned at construction.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
