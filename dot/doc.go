// Package dot resolves dot-notation property paths against dynamic Go values
// such as decoded JSON or YAML documents.
//
// # Paths
//
// A path is a dot-separated list of property names. Bracket segments may be
// used for indexes and for names that themselves contain dots:
//
//	dot.Get(doc, "user.address.city")
//	dot.Get(doc, "items[0].sku")
//	dot.Get(doc, `labels["app.kubernetes.io/name"]`)
//
// # Supported values
//
// Lookups understand map[string]any (and a handful of concrete map[string]T
// types), slices of common element types (decimal index or "length"),
// strings ("length" or a rune index), and any type that implements [Getter].
// Paths are walked without reflection; a struct only participates through
// [Getter]. A nil pointer is treated like nil and has no properties.
//
// # Absent values
//
// A path that cannot be resolved yields [Undefined], which is distinct from a
// present nil. This lets callers tell {"name": nil} apart from {}.
package dot
