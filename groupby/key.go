package groupby

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-groupby/dot"
)

// ─────────────────────────────────────────────────────────────────────────────
// Key rendering
// ─────────────────────────────────────────────────────────────────────────────

// KeyString converts a derived key value into the string used to bucket
// elements.
//
//	KeyString("NY")            // "NY"
//	KeyString(25)              // "25"
//	KeyString(2.0)             // "2"
//	KeyString(true)            // "true"
//	KeyString(nil)             // "null"
//	KeyString((*url.URL)(nil)) // "null"
//	KeyString(Undefined)       // "undefined"
//	KeyString([]any{1, "a"})   // "1,a"
func KeyString(v any) string {
	switch k := v.(type) {
	case nil:
		return "null"
	case string:
		return k
	case bool:
		return strconv.FormatBool(k)
	case int:
		return strconv.FormatInt(int64(k), 10)
	case int8:
		return strconv.FormatInt(int64(k), 10)
	case int16:
		return strconv.FormatInt(int64(k), 10)
	case int32:
		return strconv.FormatInt(int64(k), 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint:
		return strconv.FormatUint(uint64(k), 10)
	case uint8:
		return strconv.FormatUint(uint64(k), 10)
	case uint16:
		return strconv.FormatUint(uint64(k), 10)
	case uint32:
		return strconv.FormatUint(uint64(k), 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case float32:
		return formatNumber(float64(k), 32)
	case float64:
		return formatNumber(k, 64)
	case []any:
		return joinKeys(k)
	case []string:
		return strings.Join(k, ",")
	case map[string]any:
		return "[object Object]"
	}
	if dot.IsNil(v) {
		return "null"
	}
	switch k := v.(type) {
	case error:
		return k.Error()
	case fmt.Stringer:
		if dot.IsUndefined(k) {
			return "undefined"
		}
		return k.String()
	}
	return fmt.Sprint(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// formatNumber renders f the way a JavaScript engine converts a number to a
// string: shortest round-trip digits, exponent notation outside [1e-6, 1e21).
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mant, exp, _ := strings.Cut(s, "e")
		n, _ := strconv.Atoi(exp)
		if n < 0 {
			return mant + "e-" + strconv.Itoa(-n)
		}
		return mant + "e+" + strconv.Itoa(n)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func joinKeys(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		if dot.IsNil(item) || dot.IsUndefined(item) {
			continue
		}
		parts[i] = KeyString(item)
	}
	return strings.Join(parts, ",")
}
