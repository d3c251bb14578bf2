package result

import (
	"iter"

	"github.com/Dessera/fp/pkg/fault"
)

// Iter is a zero-or-one element cursor over the success value of a live
// Result. It is a non-owning view: it holds a pointer back to the Result
// and must not outlive it or be stored.
type Iter[T, E any] struct {
	res *Result[T, E]
}

// Iter returns a cursor positioned on the success value, or an exhausted
// cursor when the failure arm is active.
func (r *Result[T, E]) Iter() Iter[T, E] {
	if r.IsErr() {
		return Iter[T, E]{}
	}
	return Iter[T, E]{res: r}
}

// Done reports whether the cursor is exhausted.
func (it Iter[T, E]) Done() bool {
	return it.res == nil
}

// Value returns the success value the cursor points at. It faults when the
// cursor is exhausted.
func (it Iter[T, E]) Value() T {
	if it.res == nil || !it.res.ok {
		fault.Raise(fault.Unwrap, "Result cannot be dereferenced")
	}
	return it.res.value
}

// Next advances the cursor past its single element, exhausting it.
func (it *Iter[T, E]) Next() {
	it.res = nil
}

// ErrIter is the failure-arm mirror of Iter.
type ErrIter[T, E any] struct {
	res *Result[T, E]
}

// ErrIter returns a cursor positioned on the failure value, or an exhausted
// cursor when the success arm is active.
func (r *Result[T, E]) ErrIter() ErrIter[T, E] {
	if r.IsOk() {
		return ErrIter[T, E]{}
	}
	return ErrIter[T, E]{res: r}
}

// Done reports whether the cursor is exhausted.
func (it ErrIter[T, E]) Done() bool {
	return it.res == nil
}

// Value returns the failure value the cursor points at. It faults when the
// cursor is exhausted.
func (it ErrIter[T, E]) Value() E {
	if it.res == nil || it.res.ok {
		fault.Raise(fault.Unwrap, "Result cannot be dereferenced")
	}
	return it.res.errValue
}

// Next advances the cursor past its single element, exhausting it.
func (it *ErrIter[T, E]) Next() {
	it.res = nil
}

// Values yields the success value once when the success arm is active,
// otherwise nothing. The sequence reads through the live Result and must
// not outlive it.
func (r *Result[T, E]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := r.Iter(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Errors yields the failure value once when the failure arm is active,
// otherwise nothing. The sequence reads through the live Result and must
// not outlive it.
func (r *Result[T, E]) Errors() iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := r.ErrIter(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
