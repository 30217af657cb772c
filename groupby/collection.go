package groupby

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/hasbyte1/go-groupby/dot"
)

// ─────────────────────────────────────────────────────────────────────────────
// Normalisation
// ─────────────────────────────────────────────────────────────────────────────

// Ordered is a string-keyed mapping that knows its own key order. Its
// values are grouped in that order. [*Groups] implements Ordered.
type Ordered interface {
	Keys() []string
	Value(key string) (any, bool)
}

// Elements normalises a collection into the ordered sequence of elements
// that [Group] scans:
//
//   - nil and Undefined yield no elements.
//   - Slices and arrays of any element type yield their elements.
//   - An [Ordered] value yields its values in its own key order.
//   - A map with string keys yields its values ordered by [SortKeys].
//   - Anything else yields no elements.
//
// A []any input is returned as-is, not copied.
func Elements(collection any) []any {
	switch c := collection.(type) {
	case nil:
		return nil
	case []any:
		return c
	case Ordered:
		keys := c.Keys()
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			if v, ok := c.Value(k); ok {
				out = append(out, v)
			}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		SortKeys(keys)
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = c[k]
		}
		return out
	}
	if dot.IsUndefined(collection) {
		return nil
	}
	if items, ok := dot.Elements(collection); ok {
		return items
	}
	return reflectElements(collection)
}

// reflectElements handles slice, array and string-keyed map types that have
// no fast path above.
func reflectElements(collection any) []any {
	rv := reflect.ValueOf(collection)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		byName := make(map[string]reflect.Value, rv.Len())
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			byName[k] = iter.Value()
			keys = append(keys, k)
		}
		SortKeys(keys)
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = byName[k].Interface()
		}
		return out
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Key ordering
// ─────────────────────────────────────────────────────────────────────────────

// SortKeys orders map keys deterministically: keys that are canonical
// non-negative integers ("0", "7", "42") come first in numeric order, then
// the remaining keys in lexical order.
func SortKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, aIdx := integerKey(keys[i])
		b, bIdx := integerKey(keys[j])
		switch {
		case aIdx && bIdx:
			return a < b
		case aIdx != bIdx:
			return aIdx
		}
		return keys[i] < keys[j]
	})
}

func integerKey(k string) (uint64, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') || k[0] == '+' {
		return 0, false
	}
	n, err := strconv.ParseUint(k, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}
