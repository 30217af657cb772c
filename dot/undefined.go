package dot

// undefined is the type of the absent-value sentinel.
type undefined struct{}

// String returns "undefined".
func (undefined) String() string { return "undefined" }

// MarshalJSON encodes the sentinel as null.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Undefined is the value returned for paths that do not resolve. It never
// compares equal to nil or to any real value other than itself.
var Undefined any = undefined{}

// IsUndefined reports whether v is the [Undefined] sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}
