package result

import (
	"fmt"

	"github.com/ib-77/ropt/pkg/rop"
	"github.com/ib-77/ropt/pkg/rop/match"
	"github.com/ib-77/ropt/pkg/rop/option"
)

const (
	TagOk  match.Tag = "ok"
	TagErr match.Tag = "err"
)

type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

var _ rop.Maybe[int] = Result[int, error]{}
var _ match.Matchable = Result[int, error]{}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, failed: true}
}

// Of converts a (value, error) pair. A nil err yields Ok(value).
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Try runs f and wraps its outcome with Of.
func Try[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	return Of(v, err)
}

func (r Result[T, E]) IsOk() bool {
	return !r.failed
}

func (r Result[T, E]) IsErr() bool {
	return r.failed
}

// Get returns the success value and true for Ok, the zero value and false
// for Err.
func (r Result[T, E]) Get() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the error value and true for Err, the zero value and
// false for Ok.
func (r Result[T, E]) Failure() (E, bool) {
	if !r.failed {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the success value. It panics with rop.ErrErrUnwrap on Err.
func (r Result[T, E]) Unwrap() T {
	if r.failed {
		panic(rop.ErrErrUnwrap)
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.failed {
		return fallback
	}
	return r.value
}

// UnwrapOrElse calls fallback only when r is Err. The carried error is
// ignored.
func (r Result[T, E]) UnwrapOrElse(fallback func() T) T {
	if r.failed {
		return fallback()
	}
	return r.value
}

func (r Result[T, E]) Check(f func(T) bool) bool {
	if r.failed {
		return false
	}
	return f(r.value)
}

// ToOption returns Some(value) for Ok and None for Err, dropping the error.
func (r Result[T, E]) ToOption() option.Option[T] {
	if r.failed {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// ToOptionErr returns Some(err) for Err and None for Ok.
func (r Result[T, E]) ToOptionErr() option.Option[E] {
	if r.failed {
		return option.Some(r.err)
	}
	return option.None[E]()
}

func (r Result[T, E]) Variant() (match.Tag, []any) {
	if r.failed {
		return TagErr, []any{r.err}
	}
	return TagOk, []any{r.value}
}

func (r Result[T, E]) Variants() []match.Tag {
	return []match.Tag{TagOk, TagErr}
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
