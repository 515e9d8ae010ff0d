// Package result provides Result[T, E], the outcome of a computation that
// either succeeded with a T (Ok) or failed with an E (Err).
//
// The zero Result is Ok holding T's zero value.
//
// Highlights:
// - Ok/Err: construct a Result; Of/Try bridge (T, error) functions
// - IsOk/IsErr/Get/Failure: inspect the active variant
// - Unwrap/UnwrapOr/UnwrapOrElse: extract the success value
// - Map/MapErr/AndThen: transform one side, passing the other through
// - Validate/Tee/DoubleTee/Finally: railway helpers over a single Result
// - ToOption/ToOptionErr, FromOption/FromOptionElse: Option conversions
// - Match: exhaustive dispatch via Cases
package result
