package result

// Type-changing combinators live at package level: a Go method cannot
// introduce new type parameters, so the split mirrors the one between
// Result methods and the free composition functions of the rop family.

// Map converts the success value with conv, rewrapping as success of the
// new type. A failure passes through at the new success type.
func Map[T, E, U any](r Result[T, E], conv func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](conv(r.value))
	}
	return Err[U, E](r.errValue)
}

// MapErr converts the failure value with conv. A success passes through at
// the new error type.
func MapErr[T, E, F any](r Result[T, E], conv func(E) F) Result[T, F] {
	if !r.ok {
		return Err[T, F](conv(r.errValue))
	}
	return Ok[T, F](r.value)
}

// MapOr collapses the Result to a plain value: conv over the success value,
// or fallback when the failure arm is active.
func MapOr[T, E, U any](r Result[T, E], fallback U, conv func(T) U) U {
	if r.ok {
		return conv(r.value)
	}
	return fallback
}

// MapOrDefault is MapOr with the zero value of U as fallback.
func MapOrDefault[T, E, U any](r Result[T, E], conv func(T) U) U {
	var zero U
	return MapOr(r, zero, conv)
}

// MapOrElse collapses the Result to a plain value through one of two
// converters: onOk over the success value, onErr over the failure value.
func MapOrElse[T, E, U any](r Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.errValue)
}

// Both returns other when r succeeded, discarding r's value; a failed r
// short-circuits, carrying its error at other's success type.
func Both[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.errValue)
	}
	return other
}

// BothAnd binds conv over the success channel: conv runs only when r
// succeeded and must produce a Result sharing the error type. A failed r
// short-circuits without invoking conv.
func BothAnd[T, U, E any](r Result[T, E], conv func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.errValue)
	}
	return conv(r.value)
}

// Either returns r's value rewrapped as success when r succeeded; otherwise
// it discards r's error and returns other, whose error type may differ.
func Either[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if !r.ok {
		return other
	}
	return Ok[T, F](r.value)
}

// EitherOr binds conv over the error channel: conv runs only when r failed
// and must produce a Result sharing the success type. A successful r
// short-circuits without invoking conv.
func EitherOr[T, E, F any](r Result[T, E], conv func(E) Result[T, F]) Result[T, F] {
	if !r.ok {
		return conv(r.errValue)
	}
	return Ok[T, F](r.value)
}

// Flatten collapses one level of nesting. The inner Result must share the
// outer error type; an outer failure propagates at that type.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if !r.ok {
		return Err[T, E](r.errValue)
	}
	return r.value
}
