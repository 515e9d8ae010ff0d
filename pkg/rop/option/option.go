package option

import (
	"fmt"

	"github.com/ib-77/ropt/pkg/rop"
	"github.com/ib-77/ropt/pkg/rop/match"
)

const (
	TagSome match.Tag = "some"
	TagNone match.Tag = "none"
)

type Option[T any] struct {
	value T
	some  bool
}

var _ rop.Maybe[int] = Option[int]{}
var _ match.Matchable = Option[int]{}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of builds an Option from a comma-ok pair, as returned by map lookups
// and type assertions.
func Of[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPointer returns None for a nil pointer and Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and true for Some, the zero value and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Pointer returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) Pointer() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Unwrap returns the value. It panics with rop.ErrNoneUnwrap on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(rop.ErrNoneUnwrap)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// UnwrapOrElse calls fallback only when o is None.
func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if !o.some {
		return fallback()
	}
	return o.value
}

// Check reports whether o is Some and its value satisfies f.
func (o Option[T]) Check(f func(T) bool) bool {
	if !o.some {
		return false
	}
	return f(o.value)
}

// Filter returns o when it is Some and its value satisfies f, None otherwise.
func (o Option[T]) Filter(f func(T) bool) Option[T] {
	if !o.some || !f(o.value) {
		return None[T]()
	}
	return o
}

func (o Option[T]) Variant() (match.Tag, []any) {
	if !o.some {
		return TagNone, nil
	}
	return TagSome, []any{o.value}
}

func (o Option[T]) Variants() []match.Tag {
	return []match.Tag{TagSome, TagNone}
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
