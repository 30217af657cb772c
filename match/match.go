package match

import "github.com/hasbyte1/go-groupby/dot"

// ─────────────────────────────────────────────────────────────────────────────
// Pattern matching
// ─────────────────────────────────────────────────────────────────────────────

// IsMatch reports whether value satisfies pattern.
//
//   - A map[string]any pattern matches when every listed property exists on
//     value and matches recursively. An empty pattern matches anything at the
//     top level and any object when nested.
//   - A []any pattern matches a slice value that is at least as long and
//     contains a match for every pattern element, in any position.
//   - Any other pattern is compared with [Equal].
func IsMatch(value, pattern any) bool {
	return isMatch(value, pattern, false)
}

func isMatch(value, pattern any, nested bool) bool {
	switch p := pattern.(type) {
	case map[string]any:
		if len(p) == 0 {
			return !nested || dot.IsObject(value)
		}
		for key, want := range p {
			got, ok := dot.Lookup(value, key)
			if !ok || !isMatch(got, want, true) {
				return false
			}
		}
		return true
	case []any:
		items, ok := dot.Elements(value)
		if !ok || len(items) < len(p) {
			return false
		}
		for _, want := range p {
			if !containsMatch(items, want) {
				return false
			}
		}
		return true
	}
	return Equal(value, pattern)
}

func containsMatch(items []any, pattern any) bool {
	for _, item := range items {
		if isMatch(item, pattern, true) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate builders
// ─────────────────────────────────────────────────────────────────────────────

// Matches returns a predicate reporting whether its argument matches
// pattern. The pattern is copied, so later changes to it by the caller do
// not affect the predicate.
func Matches(pattern map[string]any) func(any) bool {
	p := Clone(pattern).(map[string]any)
	return func(value any) bool {
		return isMatch(value, p, false)
	}
}

// MatchesProperty returns a predicate reporting whether the value found at
// path matches src. When src is [dot.Undefined] the predicate is true only
// for values where path exists and holds Undefined explicitly.
//
// Scalar sources (strings, numbers, booleans, nil) are compared with
// [Equal], which is strict equality. A map[string]any or []any source is
// not compared by identity, since Go maps and slices have none; it is
// matched partially, exactly as [IsMatch] matches a nested pattern, so
// {"city": "NY"} matches {"city": "NY", "zip": "10001"}.
func MatchesProperty(path string, src any) func(any) bool {
	src = Clone(src)
	return func(value any) bool {
		got := dot.Get(value, path)
		if dot.IsUndefined(src) && dot.IsUndefined(got) {
			return dot.Has(value, path)
		}
		return isMatch(got, src, true)
	}
}

// Clone deep-copies the map[string]any and []any containers of a pattern.
// Leaf values are shared.
func Clone(pattern any) any {
	switch p := pattern.(type) {
	case map[string]any:
		out := make(map[string]any, len(p))
		for k, v := range p {
			out[k] = Clone(v)
		}
		return out
	case []any:
		out := make([]any, len(p))
		for i, v := range p {
			out[i] = Clone(v)
		}
		return out
	}
	return pattern
}
