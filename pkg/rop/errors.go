package rop

import "errors"

var (
	// ErrNoneUnwrap is panicked by Option.Unwrap on a None value.
	ErrNoneUnwrap = errors.New("called `Option.Unwrap()` on a `None` value")
	// ErrErrUnwrap is panicked by Result.Unwrap on an Err value.
	ErrErrUnwrap = errors.New("called `Result.Unwrap()` on an `Err` value")
)

// IsUnwrapError reports whether v, typically a value recovered from a panic,
// is one of the unwrap contract violations.
func IsUnwrapError(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	return errors.Is(err, ErrNoneUnwrap) || errors.Is(err, ErrErrUnwrap)
}
