package match

import (
	"math"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Strict equality
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b are strictly equal.
//
// Numbers compare by value across Go numeric types, so int(25) equals
// float64(25) (decoded JSON uses float64). NaN equals NaN. The dot.Undefined sentinel
// equals only itself and nil equals only nil. Values of non-comparable types
// such as maps and slices are never equal.
func Equal(a, b any) bool {
	if na, ok := toNumber(a); ok {
		nb, ok := toNumber(b)
		return ok && na.equal(nb)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual compares two values whose types are comparable. A struct holding
// a non-comparable value in an interface field still panics on ==.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric normalisation
// ─────────────────────────────────────────────────────────────────────────────

type numKind uint8

const (
	numFloat numKind = iota
	numInt
	numUint
)

type number struct {
	kind numKind
	f    float64
	i    int64
	u    uint64
}

func toNumber(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{kind: numInt, i: int64(n)}, true
	case int8:
		return number{kind: numInt, i: int64(n)}, true
	case int16:
		return number{kind: numInt, i: int64(n)}, true
	case int32:
		return number{kind: numInt, i: int64(n)}, true
	case int64:
		return number{kind: numInt, i: n}, true
	case uint:
		return number{kind: numUint, u: uint64(n)}, true
	case uint8:
		return number{kind: numUint, u: uint64(n)}, true
	case uint16:
		return number{kind: numUint, u: uint64(n)}, true
	case uint32:
		return number{kind: numUint, u: uint64(n)}, true
	case uint64:
		return number{kind: numUint, u: n}, true
	case float32:
		return number{kind: numFloat, f: float64(n)}, true
	case float64:
		return number{kind: numFloat, f: n}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	}
	return n.f
}

func (n number) equal(o number) bool {
	switch {
	case n.kind == numInt && o.kind == numInt:
		return n.i == o.i
	case n.kind == numUint && o.kind == numUint:
		return n.u == o.u
	case n.kind == numInt && o.kind == numUint:
		return n.i >= 0 && uint64(n.i) == o.u
	case n.kind == numUint && o.kind == numInt:
		return o.i >= 0 && uint64(o.i) == n.u
	}
	a, b := n.float(), o.float()
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
