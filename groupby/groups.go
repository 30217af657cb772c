package groupby

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// Groups is an insertion-ordered mapping from group key to the elements in
// that group. Keys iterate in the order each was first added.
//
// Accessors return copies; the elements inside are the originals.
type Groups[T any] struct {
	keys  []string
	items map[string][]T
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// NewGroups returns an empty Groups.
func NewGroups[T any]() *Groups[T] {
	return newGroups[T](0)
}

func newGroups[T any](capacity int) *Groups[T] {
	return &Groups[T]{
		keys:  make([]string, 0, capacity),
		items: make(map[string][]T, capacity),
	}
}

// Append adds items to the group for key, creating the group at the end of
// the key order if it does not exist yet. The zero Groups is ready to use.
func (g *Groups[T]) Append(key string, items ...T) {
	if g.items == nil {
		g.items = make(map[string][]T)
	}
	if _, ok := g.items[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.items[key] = append(g.items[key], items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the group keys in insertion order.
func (g *Groups[T]) Keys() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the elements grouped under key.
func (g *Groups[T]) Get(key string) ([]T, bool) {
	if g == nil {
		return nil, false
	}
	items, ok := g.items[key]
	if !ok {
		return nil, false
	}
	out := make([]T, len(items))
	copy(out, items)
	return out, true
}

// Value implements [Ordered].
func (g *Groups[T]) Value(key string) (any, bool) {
	items, ok := g.Get(key)
	if !ok {
		return nil, false
	}
	return items, true
}

// Has reports whether a group exists for key.
func (g *Groups[T]) Has(key string) bool {
	if g == nil {
		return false
	}
	_, ok := g.items[key]
	return ok
}

// Len returns the number of groups.
func (g *Groups[T]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Count returns the total number of grouped elements.
func (g *Groups[T]) Count() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, items := range g.items {
		n += len(items)
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & conversion
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every group in key order.
func (g *Groups[T]) Each(fn func(key string, items []T)) {
	for k, items := range g.All() {
		fn(k, items)
	}
}

// All iterates over the groups in key order.
//
//	for key, items := range g.All() { ... }
func (g *Groups[T]) All() iter.Seq2[string, []T] {
	return func(yield func(string, []T) bool) {
		if g == nil {
			return
		}
		for _, k := range g.keys {
			items := g.items[k]
			out := make([]T, len(items))
			copy(out, items)
			if !yield(k, out) {
				return
			}
		}
	}
}

// Values returns the groups in key order.
func (g *Groups[T]) Values() [][]T {
	out := make([][]T, 0, g.Len())
	for _, items := range g.All() {
		out = append(out, items)
	}
	return out
}

// Flatten concatenates every group in key order.
func (g *Groups[T]) Flatten() []T {
	out := make([]T, 0, g.Count())
	if g == nil {
		return out
	}
	for _, k := range g.keys {
		out = append(out, g.items[k]...)
	}
	return out
}

// Map returns the groups as a plain map. Key order is lost.
func (g *Groups[T]) Map() map[string][]T {
	out := make(map[string][]T, g.Len())
	for k, items := range g.All() {
		out[k] = items
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining & encoding
// ─────────────────────────────────────────────────────────────────────────────

// Merge returns a new Groups holding g's groups followed by other's. Items
// for a key present in both are concatenated, g's first. Use it to combine
// results computed over consecutive shards of one input.
func (g *Groups[T]) Merge(other *Groups[T]) *Groups[T] {
	out := newGroups[T](g.Len() + other.Len())
	for _, src := range []*Groups[T]{g, other} {
		if src == nil {
			continue
		}
		for _, k := range src.keys {
			out.Append(k, src.items[k]...)
		}
	}
	return out
}

// String renders the groups in key order: {a: [1 2], b: [3]}.
func (g *Groups[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	i := 0
	for k, items := range g.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, items)
		i++
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes the groups as a JSON object with keys in insertion
// order.
func (g *Groups[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, items := range g.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("groupby: encoding group %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
