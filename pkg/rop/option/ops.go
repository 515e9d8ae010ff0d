package option

import "github.com/ib-77/ropt/pkg/rop/match"

// Map returns Some(f(v)) for Some(v) and None otherwise. f is not called
// on None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// AndThen returns f(v) for Some(v) and None otherwise.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Narrow is the type-narrowing form of Filter: narrow reports whether the
// value belongs to U and converts it. The result is None when o is None or
// narrow rejects the value.
func Narrow[T, U any](o Option[T], narrow func(T) (U, bool)) Option[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	u, ok := narrow(v)
	return Of(u, ok)
}

// As narrows an Option holding an interface value to the dynamic type U.
func As[U, T any](o Option[T]) Option[U] {
	return Narrow(o, func(v T) (U, bool) {
		u, ok := any(v).(U)
		return u, ok
	})
}

// Cases is a typed pattern set for Match. Leave a field nil to route that
// variant to Default.
type Cases[T, R any] struct {
	Some    func(value T) R
	None    func() R
	Default func() R
}

func (c Cases[T, R]) patterns() match.Patterns[R] {
	p := match.Patterns[R]{}
	if c.Some != nil {
		p[TagSome] = func(payload ...any) R {
			v, _ := payload[0].(T)
			return c.Some(v)
		}
	}
	if c.None != nil {
		p[TagNone] = func(...any) R { return c.None() }
	}
	if c.Default != nil {
		p[match.Default] = func(...any) R { return c.Default() }
	}
	return p
}

// Match dispatches o to the matching case. It panics with a
// *match.PatternError when a case is missing and no Default is given.
func Match[T, R any](o Option[T], cases Cases[T, R]) R {
	return match.Match(o, cases.patterns())
}
