package groupby

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-groupby/dot"
	"github.com/hasbyte1/go-groupby/match"
)

// Undefined is the absent-value sentinel produced by property paths that do
// not resolve. Its group key is "undefined".
var Undefined = dot.Undefined

// ─────────────────────────────────────────────────────────────────────────────
// Selector variants
// ─────────────────────────────────────────────────────────────────────────────

// Kind identifies the variant held by a [Selector].
type Kind int

const (
	// KindIdentity uses the element itself as the key.
	KindIdentity Kind = iota
	// KindProperty reads a dot-notation path from the element.
	KindProperty
	// KindFunc calls a user function.
	KindFunc
	// KindMatches tests the element against an object pattern.
	KindMatches
	// KindMatchesProperty tests one property against a value.
	KindMatchesProperty
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindProperty:
		return "property"
	case KindFunc:
		return "func"
	case KindMatches:
		return "matches"
	case KindMatchesProperty:
		return "matchesProperty"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Func derives a key for the element at index. collection is the whole
// normalised input. Returning a non-nil error aborts the grouping.
type Func func(element any, index int, collection []any) (any, error)

// Selector describes how a key is derived from each element. The zero value
// is the identity selector.
type Selector struct {
	kind    Kind
	path    string
	fn      Func
	pattern map[string]any
	value   any
}

// Identity selects the element itself.
func Identity() Selector { return Selector{kind: KindIdentity} }

// Property selects the value at a dot-notation path; see [dot.Get]. Missing
// values produce [Undefined].
func Property(path string) Selector { return Selector{kind: KindProperty, path: path} }

// Iterator selects with a user function. A nil fn is the identity selector.
func Iterator(fn Func) Selector {
	if fn == nil {
		return Identity()
	}
	return Selector{kind: KindFunc, fn: fn}
}

// Matches selects true or false according to whether the element matches
// pattern; see [match.IsMatch]. The pattern is copied.
func Matches(pattern map[string]any) Selector {
	return Selector{kind: KindMatches, pattern: match.Clone(pattern).(map[string]any)}
}

// MatchesProperty selects true or false according to whether the value at
// path matches value. Scalars are compared strictly; a map or slice value is
// matched partially, as described on [match.MatchesProperty].
func MatchesProperty(path string, value any) Selector {
	return Selector{kind: KindMatchesProperty, path: path, value: match.Clone(value)}
}

// Kind returns the selector variant.
func (s Selector) Kind() Kind { return s.kind }

// String describes the selector, e.g. property("a.b").
func (s Selector) String() string {
	switch s.kind {
	case KindProperty:
		return fmt.Sprintf("property(%q)", s.path)
	case KindMatches:
		return fmt.Sprintf("matches(%v)", s.pattern)
	case KindMatchesProperty:
		return fmt.Sprintf("matchesProperty(%q, %v)", s.path, s.value)
	}
	return s.kind.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
// ─────────────────────────────────────────────────────────────────────────────

// keyFunc is a resolved selector.
type keyFunc func(element any, index int, collection []any) (any, error)

// compile resolves s into a key function once, before the scan.
func (s Selector) compile() keyFunc {
	switch s.kind {
	case KindProperty:
		path := s.path
		return func(element any, _ int, _ []any) (any, error) {
			return dot.Get(element, path), nil
		}
	case KindFunc:
		return keyFunc(s.fn)
	case KindMatches:
		pred := match.Matches(s.pattern)
		return func(element any, _ int, _ []any) (any, error) {
			return pred(element), nil
		}
	case KindMatchesProperty:
		pred := match.MatchesProperty(s.path, s.value)
		return func(element any, _ int, _ []any) (any, error) {
			return pred(element), nil
		}
	}
	return func(element any, _ int, _ []any) (any, error) {
		return element, nil
	}
}

// Iteratee converts a loosely typed iteratee into a [Selector]:
//
//	nil                        → Identity()
//	Selector, *Selector        → itself
//	string                     → Property(s)
//	integer                    → Property of its decimal form (an index)
//	Func and plain funcs       → Iterator
//	map[string]any             → Matches(m)
//	map[string]string, int,
//	float64 or bool            → Matches(m) with the values widened to any
//	[]any{path, value}         → MatchesProperty(path, value)
//	[]string{path, value}      → MatchesProperty(path, value)
//
// Accepted function shapes are func(any) any, func(any, int) any,
// func(any, int, []any) any, func(any) (any, error),
// func(any, int) (any, error), func(any) string and func(any) bool.
// Any other value becomes a Property selector named by its [KeyString];
// such a selector usually yields [Undefined] for every element.
func Iteratee(v any) Selector {
	switch it := v.(type) {
	case nil:
		return Identity()
	case Selector:
		return it
	case *Selector:
		if it == nil {
			return Identity()
		}
		return *it
	case string:
		return Property(it)
	case Func:
		return Iterator(it)
	case func(any, int, []any) (any, error):
		return Iterator(it)
	case func(any, int) (any, error):
		if it == nil {
			return Identity()
		}
		return Iterator(func(e any, i int, _ []any) (any, error) { return it(e, i) })
	case func(any) (any, error):
		if it == nil {
			return Identity()
		}
		return Iterator(func(e any, _ int, _ []any) (any, error) { return it(e) })
	case func(any, int, []any) any:
		if it == nil {
			return Identity()
		}
		return Iterator(func(e any, i int, c []any) (any, error) { return it(e, i, c), nil })
	case func(any, int) any:
		if it == nil {
			return Identity()
		}
		return Iterator(func(e any, i int, _ []any) (any, error) { return it(e, i), nil })
	case func(any) any:
		if it == nil {
			return Identity()
		}
		return Iterator(func(e any, _ int, _ []any) (any, error) { return it(e), nil })
	case func(any) string:
		if it == nil {
			return Identity()
		}
		return Iterator(func(e any, _ int, _ []any) (any, error) { return it(e), nil })
	case func(any) bool:
		if it == nil {
			return Identity()
		}
		return Iterator(func(e any, _ int, _ []any) (any, error) { return it(e), nil })
	case map[string]any:
		return Matches(it)
	case map[string]string:
		return Matches(widen(it))
	case map[string]int:
		return Matches(widen(it))
	case map[string]float64:
		return Matches(widen(it))
	case map[string]bool:
		return Matches(widen(it))
	case []any:
		return pairSelector(it)
	case []string:
		pair := make([]any, len(it))
		for i, s := range it {
			pair[i] = s
		}
		return pairSelector(pair)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Property(KeyString(it))
	}
	return Property(KeyString(v))
}

// widen copies a typed pattern into a map[string]any.
func widen[V any](m map[string]V) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// pairSelector builds MatchesProperty from a [path, value] pair. A missing
// value means Undefined; elements past the second are ignored.
func pairSelector(pair []any) Selector {
	path, value := "", Undefined
	if len(pair) > 0 {
		path = KeyString(pair[0])
	}
	if len(pair) > 1 {
		value = pair[1]
	}
	return MatchesProperty(path, value)
}
