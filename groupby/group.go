package groupby

import "go.uber.org/zap"

// ─────────────────────────────────────────────────────────────────────────────
// Entry points
// ─────────────────────────────────────────────────────────────────────────────

// Group partitions collection by the key derived from iteratee.
//
// collection is normalised by [Elements]; iteratee is resolved once by
// [Iteratee]. Keys are produced with [KeyString] and appear in the result in
// first-seen order. Each element is appended to its group in input order.
//
//	g, _ := groupby.Group([]any{6.1, 4.2, 6.3}, func(v any) any { return math.Floor(v.(float64)) })
//	// {"6": [6.1 6.3], "4": [4.2]}
//
// The only possible error is a [*SelectorError] from a selector function.
// On error no groups are returned.
func Group(collection any, iteratee any, opts ...Option) (*Groups[any], error) {
	elems := Elements(collection)
	return scan(elems, elems, Iteratee(iteratee), newOptions(opts))
}

// GroupSlice partitions items by sel, keeping the element type.
func GroupSlice[T any](items []T, sel Selector, opts ...Option) (*Groups[T], error) {
	elems := make([]any, len(items))
	for i, item := range items {
		elems[i] = item
	}
	return scan(items, elems, sel, newOptions(opts))
}

// GroupMap partitions the values of m by sel. Values are visited in
// [SortKeys] order of their keys; the keys themselves are discarded.
func GroupMap[V any](m map[string]V, sel Selector, opts ...Option) (*Groups[V], error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortKeys(keys)
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return GroupSlice(values, sel, opts...)
}

// GroupFunc partitions items by a typed key function. It cannot fail.
//
//	byLen := groupby.GroupFunc([]string{"one", "two", "three"}, func(s string, _ int) int {
//	    return len(s)
//	})
//	// {"3": [one two], "5": [three]}
func GroupFunc[T any, K any](items []T, fn func(item T, index int) K) *Groups[T] {
	g := newGroups[T](0)
	for i, item := range items {
		g.Append(KeyString(fn(item, i)), item)
	}
	return g
}

// ─────────────────────────────────────────────────────────────────────────────
// Scan
// ─────────────────────────────────────────────────────────────────────────────

// scan runs the grouping pass. items[i] is what gets stored, elems[i] is
// what the selector sees; they hold the same values.
func scan[T any](items []T, elems []any, sel Selector, o options) (*Groups[T], error) {
	keyOf := sel.compile()
	o.logger.Debug("groupby: scanning collection",
		zap.Stringer("selector", sel),
		zap.Int("elements", len(elems)),
	)

	g := newGroups[T](o.capacity)
	for i, elem := range elems {
		key, err := keyOf(elem, i, elems)
		if err != nil {
			return nil, &SelectorError{Index: i, Element: elem, Err: err}
		}
		g.Append(KeyString(key), items[i])
	}

	o.logger.Debug("groupby: grouped collection",
		zap.Int("groups", g.Len()),
		zap.Int("elements", len(elems)),
	)
	return g, nil
}
