package groupby_test

import (
	"errors"
	"math"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-groupby/groupby"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "NY", "NY"},
		{"empty string", "", ""},
		{"int", 25, "25"},
		{"negative int", -3, "-3"},
		{"uint8", uint8(200), "200"},
		{"whole float", 2.0, "2"},
		{"fraction", 1.5, "1.5"},
		{"float32", float32(0.1), "0.1"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"nan", math.NaN(), "NaN"},
		{"inf", math.Inf(1), "Infinity"},
		{"neg inf", math.Inf(-1), "-Infinity"},
		{"large", 1e21, "1e+21"},
		{"below large", 1e20, "100000000000000000000"},
		{"small", 1.5e-7, "1.5e-7"},
		{"smallest fixed", 0.000001, "0.000001"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"nil", nil, "null"},
		{"undefined", groupby.Undefined, "undefined"},
		{"slice", []any{1, "a", nil, groupby.Undefined, true}, "1,a,,,true"},
		{"string slice", []string{"x", "y"}, "x,y"},
		{"object", map[string]any{"a": 1}, "[object Object]"},
		{"error", errors.New("oops"), "oops"},
		{"nil stringer", (*url.URL)(nil), "null"},
		{"nil error", (*os.PathError)(nil), "null"},
		{"slice with nil pointer", []any{1, (*url.URL)(nil), 2}, "1,,2"},
		{"stringer", time.Second, "1s"},
		{"fallback", struct{ A int }{7}, "{7}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, groupby.KeyString(tt.in))
		})
	}
}

func TestSortKeys(t *testing.T) {
	keys := []string{"b", "10", "a", "2", "01", "0", "-1", ""}
	groupby.SortKeys(keys)
	assert.Equal(t, []string{"0", "2", "10", "", "-1", "01", "a", "b"}, keys)
}

func TestElements(t *testing.T) {
	assert.Nil(t, groupby.Elements(nil))
	assert.Nil(t, groupby.Elements(groupby.Undefined))
	assert.Equal(t, []any{1, 2}, groupby.Elements([]int{1, 2}))
	assert.Equal(t, []any{"a", "b"}, groupby.Elements([2]string{"a", "b"}))
	assert.Equal(t, []any{int8(1)}, groupby.Elements([]int8{1}))
	assert.Equal(t, []any{false, true}, groupby.Elements(map[string]bool{"1": true, "0": false}))
	assert.Nil(t, groupby.Elements(map[int]string{1: "a"}))

	in := []any{1}
	out := groupby.Elements(in)
	assert.Same(t, &in[0], &out[0])
}
