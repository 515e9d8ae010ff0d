// Package rop holds the pieces shared by the option and result packages:
// the contract-violation errors raised by Unwrap and the small interfaces
// both union types satisfy.
//
// Layout:
// - match: the tagged-union matching protocol (Tag, Patterns, Match)
// - option: Option[T], either Some(T) or None
// - result: Result[T, E], either Ok(T) or Err(E), plus Option<->Result conversions
//
// Expected failure travels as a value (None, Err). Misuse, such as
// unwrapping the wrong variant, panics with one of the errors below.
package rop
