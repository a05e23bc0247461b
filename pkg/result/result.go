// Package result provides a success-or-failure container used to compose
// multi-step validation pipelines without intermediate error plumbing.
package result

// Result holds either a value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the wrapped value; zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the wrapped error; nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Map transforms the value on success; identity on failure.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(f(r.value))
}

// AndThen composes a dependent step on success; identity on failure.
// The first failing step in a chain short-circuits everything after it.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return f(r.value)
}

// Tap observes the value on success without transforming the result.
// A panicking observer is swallowed; taps exist for diagnostics only and
// must never change the outcome.
func (r Result[T]) Tap(f func(T)) Result[T] {
	if r.err == nil {
		guard(func() { f(r.value) })
	}
	return r
}

// TapError observes the error on failure, with the same isolation as Tap.
func (r Result[T]) TapError(f func(error)) Result[T] {
	if r.err != nil {
		guard(func() { f(r.err) })
	}
	return r
}

func guard(f func()) {
	defer func() {
		_ = recover()
	}()
	f()
}

// Fold collapses the result into a single value.
func Fold[T, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// MustGet returns the value or panics with the wrapped error. Reserved
// for call sites where failure is a programmer error.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Map transforms a success into a result of another type.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// AndThen composes a dependent, type-changing step.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}
