package result

import (
	"github.com/ib-77/ropt/pkg/rop/match"
	"github.com/ib-77/ropt/pkg/rop/option"
)

// Map transforms the success value. Err passes through and f is not called.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr transforms the error value. Ok passes through and f is not called.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.failed {
		return Err[T](f(r.err))
	}
	return Ok[T, F](r.value)
}

// AndThen switches an Ok onto the track returned by f.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.failed {
		return Err[U](r.err)
	}
	return f(r.value)
}

// FromOption returns Ok(v) for Some(v) and Err(err) for None.
func FromOption[T, E any](o option.Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](err)
}

// FromOptionElse is FromOption with a lazily built error. f runs only for None.
func FromOptionElse[T, E any](o option.Option[T], f func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](f())
}

// Validate fails an Ok whose value is rejected by validate.
func Validate[T, E any](r Result[T, E], validate func(T) (valid bool, err E)) Result[T, E] {
	if r.failed {
		return r
	}
	if valid, err := validate(r.value); !valid {
		return Err[T](err)
	}
	return r
}

// Tee runs a side effect on the success value and returns r unchanged.
func Tee[T, E any](r Result[T, E], onOk func(T)) Result[T, E] {
	if !r.failed {
		onOk(r.value)
	}
	return r
}

// DoubleTee runs onOk or onErr depending on the variant. Either may be nil.
func DoubleTee[T, E any](r Result[T, E], onOk func(T), onErr func(E)) Result[T, E] {
	if r.failed {
		if onErr != nil {
			onErr(r.err)
		}
		return r
	}
	if onOk != nil {
		onOk(r.value)
	}
	return r
}

// Finally collapses r into a single value.
func Finally[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return Match(r, Cases[T, E, R]{Ok: onOk, Err: onErr})
}

// Cases is a typed pattern set for Match. Leave a field nil to route that
// variant to Default.
type Cases[T, E, R any] struct {
	Ok      func(value T) R
	Err     func(err E) R
	Default func() R
}

func (c Cases[T, E, R]) patterns() match.Patterns[R] {
	p := match.Patterns[R]{}
	if c.Ok != nil {
		p[TagOk] = func(payload ...any) R {
			v, _ := payload[0].(T)
			return c.Ok(v)
		}
	}
	if c.Err != nil {
		p[TagErr] = func(payload ...any) R {
			e, _ := payload[0].(E)
			return c.Err(e)
		}
	}
	if c.Default != nil {
		p[match.Default] = func(...any) R { return c.Default() }
	}
	return p
}

// Match dispatches r to the matching case. It panics with a
// *match.PatternError when a case is missing and no Default is given.
func Match[T, E, R any](r Result[T, E], cases Cases[T, E, R]) R {
	return match.Match(r, cases.patterns())
}
