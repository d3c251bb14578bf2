package result

import (
	"github.com/Dessera/fp/pkg/fault"
	"github.com/Dessera/fp/pkg/format"
)

// Unwrap consumes the Result and returns the success value. It faults if
// the failure arm is active.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		fault.Raise(fault.Unwrap, "Result is an error (%s)", format.Formattable(r.errValue))
	}
	return r.value
}

// UnwrapErr consumes the Result and returns the failure value. It faults if
// the success arm is active.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		fault.Raise(fault.Unwrap, "Result is not an error (%s)", format.Formattable(r.value))
	}
	return r.errValue
}

// Expect is Unwrap with a caller-supplied fault message.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		fault.Raise(fault.Unwrap, "%s", msg)
	}
	return r.value
}

// ExpectErr is UnwrapErr with a caller-supplied fault message.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		fault.Raise(fault.Unwrap, "%s", msg)
	}
	return r.errValue
}

// UnwrapOr consumes the Result and returns the success value, or fallback
// when the failure arm is active. Never faults.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// UnwrapOrDefault consumes the Result and returns the success value, or the
// zero value of T when the failure arm is active. Never faults.
func (r Result[T, E]) UnwrapOrDefault() T {
	var zero T
	return r.UnwrapOr(zero)
}
