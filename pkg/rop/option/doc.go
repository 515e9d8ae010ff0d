// Package option provides Option[T], a value that is either Some(T) or None.
//
// The zero Option is None. Values are immutable and safe to share between
// goroutines.
//
// Highlights:
// - Some/None/Of/FromPointer: construct an Option
// - IsSome/IsNone/Get: inspect the active variant
// - Unwrap/UnwrapOr/UnwrapOrElse: extract the value
// - Check/Filter/Narrow: test or narrow the value
// - Map/AndThen: transform the value when present
// - Match: exhaustive dispatch via Cases
//
// Conversions to a Result live in the result package (result.FromOption).
package option
