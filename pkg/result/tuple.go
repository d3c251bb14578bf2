package result

// From folds a conventional (value, error) return pair into a Result. A
// non-nil error selects the failure arm regardless of the value.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// Tuple unfolds the Result into its two arms; the inactive arm is the zero
// value of its type.
func (r Result[T, E]) Tuple() (T, E) {
	return r.value, r.errValue
}
