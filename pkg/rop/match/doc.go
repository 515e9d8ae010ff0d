// Package match implements the matching protocol shared by every tagged
// union in this module.
//
// A Matchable value reports its active variant as a Tag plus a payload
// slice, and the closed set of tags it may ever report. Match dispatches
// that pair to a Patterns set:
// - a handler keyed by the active tag is called with the payload spread
// - otherwise the Default handler is called with no arguments
//
// A pattern set must either cover every variant or carry a Default.
// Match checks the whole set before dispatching and panics with a
// *PatternError when it does not, regardless of which variant is active.
package match
