package dot

import (
	"reflect"
	"strconv"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Path resolution
// ─────────────────────────────────────────────────────────────────────────────

// Getter is implemented by values that expose named properties to path
// lookups. Return false when the property does not exist.
//
//	func (u User) Property(name string) (any, bool) {
//	    switch name {
//	    case "name":
//	        return u.Name, true
//	    }
//	    return nil, false
//	}
type Getter interface {
	Property(name string) (any, bool)
}

// Get resolves path against value and returns the value found there, or
// [Undefined] when any segment is missing.
//
// A map key equal to the whole path takes precedence over the nested walk,
// so Get(map[string]any{"a.b": 1}, "a.b") returns 1. An empty path never
// names a property and always yields Undefined.
func Get(value any, path string) any {
	if path == "" {
		return Undefined
	}
	if v, ok := Lookup(value, path); ok {
		return v
	}
	if !isDeep(path) {
		return Undefined
	}
	current := value
	for _, seg := range ParsePath(path) {
		next, ok := Lookup(current, seg)
		if !ok {
			return Undefined
		}
		current = next
	}
	return current
}

// Has reports whether every segment of path exists on value. A property that
// exists with a nil value counts as present.
func Has(value any, path string) bool {
	if path == "" {
		return false
	}
	if _, ok := Lookup(value, path); ok {
		return true
	}
	if !isDeep(path) {
		return false
	}
	current := value
	for _, seg := range ParsePath(path) {
		next, ok := Lookup(current, seg)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Single-segment lookup
// ─────────────────────────────────────────────────────────────────────────────

// Lookup resolves a single property name on value. A nil pointer has no
// properties, even when its type implements [Getter].
func Lookup(value any, name string) (any, bool) {
	switch v := value.(type) {
	case nil, undefined:
		return nil, false
	case Getter:
		if IsNil(v) {
			return nil, false
		}
		return v.Property(name)
	case map[string]any:
		val, ok := v[name]
		return val, ok
	case map[string]string:
		return lookupMap(v, name)
	case map[string]int:
		return lookupMap(v, name)
	case map[string]float64:
		return lookupMap(v, name)
	case map[string]bool:
		return lookupMap(v, name)
	case []any:
		return lookupIndex(v, name)
	case []map[string]any:
		return lookupIndex(v, name)
	case []string:
		return lookupIndex(v, name)
	case []int:
		return lookupIndex(v, name)
	case []float64:
		return lookupIndex(v, name)
	case string:
		return lookupString(v, name)
	}
	return nil, false
}

// IsObject reports whether value is a property container: a string-keyed map
// or a [Getter]. Slices and strings are not objects.
func IsObject(value any) bool {
	switch value.(type) {
	case Getter:
		return !IsNil(value)
	case map[string]any, map[string]string, map[string]int,
		map[string]float64, map[string]bool:
		return true
	}
	return false
}

// Elements returns value as a []any when it is one of the slice types that
// [Lookup] can index.
func Elements(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []map[string]any:
		return toAny(v), true
	case []string:
		return toAny(v), true
	case []int:
		return toAny(v), true
	case []float64:
		return toAny(v), true
	}
	return nil, false
}

// IsNil reports whether value is nil or a nil pointer stored in an
// interface, such as (*User)(nil).
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func lookupMap[V any](m map[string]V, name string) (any, bool) {
	val, ok := m[name]
	if !ok {
		return nil, false
	}
	return val, true
}

func lookupIndex[T any](items []T, name string) (any, bool) {
	if name == "length" {
		return len(items), true
	}
	i, ok := index(name)
	if !ok || i >= len(items) {
		return nil, false
	}
	return items[i], true
}

func lookupString(s, name string) (any, bool) {
	if name == "length" {
		return utf8.RuneCountInString(s), true
	}
	i, ok := index(name)
	if !ok {
		return nil, false
	}
	for _, r := range s {
		if i == 0 {
			return string(r), true
		}
		i--
	}
	return nil, false
}

// index parses a canonical non-negative decimal index ("0", "12", not "01").
func index(name string) (int, bool) {
	if name == "" || (len(name) > 1 && name[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	return n, true
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
