package result

import "reflect"

// IsNil reports whether i is nil, including a typed nil pointer boxed in an
// interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// CollectErrors expands a joined error into its parts. A nil error yields
// an empty slice; an unjoined error yields itself.
func CollectErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Partition splits a batch of results into its success values and failure
// values, preserving relative order within each side.
func Partition[T, E any](results []Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(results))
	errs := make([]E, 0)

	for _, r := range results {
		if r.IsOk() {
			values = append(values, r.value)
		} else {
			errs = append(errs, r.errValue)
		}
	}

	return values, errs
}
