// Package match implements partial deep matching of dynamic values against
// pattern templates, plus the strict equality used at the leaves.
//
//	match.IsMatch(map[string]any{"age": 25, "name": "Jo"}, map[string]any{"age": 25}) // true
//
// Only the properties listed in a pattern are checked. Nested map patterns
// are matched recursively, slice patterns match when every pattern element
// is found somewhere in the value's slice. Missing properties fail the match;
// nothing in this package returns an error or panics on odd input.
package match
