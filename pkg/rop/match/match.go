package match

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Tag identifies the active variant of a union.
type Tag string

// Default keys the fallback handler in a pattern set.
const Default Tag = "_"

var (
	// ErrNonExhaustive classifies a pattern set missing a variant handler with no Default.
	ErrNonExhaustive = errors.New("pattern set is not exhaustive and has no default")
	// ErrUnknownTag classifies a pattern set keyed by a tag the union does not have.
	ErrUnknownTag = errors.New("pattern set names an unknown tag")
)

// Matchable is implemented by tagged unions.
type Matchable interface {
	// Variant returns the active tag and its payload. The payload length
	// is fixed per tag.
	Variant() (Tag, []any)
	// Variants returns every tag the type can report.
	Variants() []Tag
}

// Handler receives the payload of the active variant, spread in order.
type Handler[R any] func(payload ...any) R

// Patterns maps variant tags, and optionally Default, to handlers.
type Patterns[R any] map[Tag]Handler[R]

// PatternError describes a pattern set that cannot be used with a union.
type PatternError struct {
	Missing []Tag
	Unknown []Tag
	err     error
}

func (e *PatternError) Error() string {
	var b strings.Builder
	b.WriteString("match: ")
	b.WriteString(e.err.Error())
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ", missing %v", e.Missing)
	}
	if len(e.Unknown) > 0 {
		fmt.Fprintf(&b, ", unknown %v", e.Unknown)
	}
	return b.String()
}

func (e *PatternError) Unwrap() error {
	return e.err
}

func (p Patterns[R]) has(tag Tag) bool {
	h, ok := p[tag]
	return ok && h != nil
}

// Validate checks p against the closed variant set. A nil handler counts
// as absent.
func (p Patterns[R]) Validate(variants []Tag) error {
	var unknown []Tag
	for tag := range p {
		if tag != Default && !slices.Contains(variants, tag) {
			unknown = append(unknown, tag)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return &PatternError{Unknown: unknown, err: ErrUnknownTag}
	}

	if p.has(Default) {
		return nil
	}

	var missing []Tag
	for _, tag := range variants {
		if !p.has(tag) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return &PatternError{Missing: missing, err: ErrNonExhaustive}
	}
	return nil
}

// Match dispatches the active variant of v to patterns and returns the
// handler's result. It panics with a *PatternError if patterns is not
// valid for v.
func Match[R any](v Matchable, patterns Patterns[R]) R {
	if err := patterns.Validate(v.Variants()); err != nil {
		panic(err)
	}

	tag, payload := v.Variant()
	if patterns.has(tag) {
		return patterns[tag](payload...)
	}
	return patterns[Default]()
}
