// Package groupby partitions a collection into groups keyed by a derived
// string, in the style of the classic "groupBy" collection helper.
//
// # Overview
//
// [Group] accepts a collection and an iteratee describing how to derive each
// element's key:
//
//	g, err := groupby.Group(people, "address.city")        // property path
//	g, err := groupby.Group(people, map[string]any{"age": 25}) // object pattern → "true"/"false"
//	g, err := groupby.Group(people, []any{"city", "NY"})   // [key, value] pair → "true"/"false"
//	g, err := groupby.Group(words, func(w any) any { return len(w.(string)) })
//
// The result is a [Groups] value: an ordered mapping whose keys appear in
// the order they were first produced while scanning the input. Within each
// group elements keep their original relative order, and the elements
// themselves are never copied or transformed.
//
// # Collections
//
// A collection is a slice or array of any element type, a string-keyed map
// (whose values are grouped in a deterministic key order), an [Ordered]
// value, or nil. Anything else is treated as an empty collection.
//
// # Keys
//
// Derived keys are converted with [KeyString]: strings are kept, numbers use
// their shortest decimal form, booleans become "true"/"false", nil becomes
// "null" and a path that does not resolve becomes "undefined".
//
// # Errors
//
// Only a selector function can fail. Its error is wrapped in a
// [*SelectorError] and returned immediately; no partial result is produced.
//
// # Typed helpers
//
// [GroupSlice], [GroupMap] and [GroupFunc] keep the element type instead of
// widening to any:
//
//	byLen := groupby.GroupFunc(words, func(w string, _ int) int { return len(w) })
package groupby
