package rop

// Unwrapper is implemented by union values that carry a success payload
// of type T in exactly one of their variants.
type Unwrapper[T any] interface {
	// Unwrap returns the payload or panics if the other variant is active
	Unwrap() T
	// UnwrapOr returns the payload or fallback
	UnwrapOr(fallback T) T
	// UnwrapOrElse returns the payload or the value produced by fallback
	UnwrapOrElse(fallback func() T) T
}

// Checker defines a predicate test over the success payload.
type Checker[T any] interface {
	// Check returns false for the empty/failed variant without calling f
	Check(f func(T) bool) bool
}

// Maybe is the common read surface of option.Option and result.Result.
type Maybe[T any] interface {
	Unwrapper[T]
	Checker[T]
	// Get returns the payload and true, or the zero value and false
	Get() (T, bool)
}
