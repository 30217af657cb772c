package groupby_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-groupby/groupby"
)

func sampleGroups() *groupby.Groups[int] {
	g := groupby.NewGroups[int]()
	g.Append("odd", 1)
	g.Append("even", 2)
	g.Append("odd", 3)
	return g
}

func TestGroupsAccessors(t *testing.T) {
	g := sampleGroups()
	assert.Equal(t, []string{"odd", "even"}, g.Keys())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, g.Count())
	assert.True(t, g.Has("odd"))
	assert.False(t, g.Has("none"))

	odd, ok := g.Get("odd")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3}, odd)

	_, ok = g.Get("none")
	assert.False(t, ok)

	assert.Equal(t, [][]int{{1, 3}, {2}}, g.Values())
	assert.Equal(t, []int{1, 3, 2}, g.Flatten())
	assert.Equal(t, map[string][]int{"odd": {1, 3}, "even": {2}}, g.Map())
}

func TestGroupsZeroValue(t *testing.T) {
	var g groupby.Groups[int]
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Keys())

	g.Append("a", 1)
	g.Append("b", 2)
	g.Append("a", 3)

	assert.Equal(t, []string{"a", "b"}, g.Keys())
	a, ok := g.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3}, a)
	assert.Equal(t, 3, g.Count())
}

func TestGroupsReturnsCopies(t *testing.T) {
	g := sampleGroups()
	odd, _ := g.Get("odd")
	odd[0] = 99
	keys := g.Keys()
	keys[0] = "changed"

	again, _ := g.Get("odd")
	assert.Equal(t, []int{1, 3}, again)
	assert.Equal(t, []string{"odd", "even"}, g.Keys())
}

func TestGroupsEach(t *testing.T) {
	var keys []string
	sampleGroups().Each(func(k string, _ []int) { keys = append(keys, k) })
	assert.Equal(t, []string{"odd", "even"}, keys)
}

func TestGroupsAllStopsEarly(t *testing.T) {
	n := 0
	for range sampleGroups().All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestGroupsMerge(t *testing.T) {
	shard1, err := groupby.GroupSlice([]int{1, 2, 3}, groupby.Iterator(parity))
	require.NoError(t, err)
	shard2, err := groupby.GroupSlice([]int{4, 5, 6, 7}, groupby.Iterator(parity))
	require.NoError(t, err)
	whole, err := groupby.GroupSlice([]int{1, 2, 3, 4, 5, 6, 7}, groupby.Iterator(parity))
	require.NoError(t, err)

	merged := shard1.Merge(shard2)
	assert.Equal(t, whole.Keys(), merged.Keys())
	assert.Equal(t, whole.Values(), merged.Values())

	// Inputs are untouched.
	assert.Equal(t, 3, shard1.Count())
}

func TestGroupsMergeNil(t *testing.T) {
	g := sampleGroups()
	assert.Equal(t, g.Values(), g.Merge(nil).Values())

	var empty *groupby.Groups[int]
	assert.Equal(t, g.Values(), empty.Merge(g).Values())
}

func TestGroupsNilReceiver(t *testing.T) {
	var g *groupby.Groups[string]
	assert.Nil(t, g.Keys())
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.Count())
	assert.False(t, g.Has("x"))
	assert.Empty(t, g.Flatten())
	assert.Empty(t, g.Values())
}

func TestGroupsString(t *testing.T) {
	assert.Equal(t, "{odd: [1 3], even: [2]}", sampleGroups().String())
	assert.Equal(t, "{}", groupby.NewGroups[int]().String())
}

func TestGroupsMarshalJSON(t *testing.T) {
	b, err := json.Marshal(sampleGroups())
	require.NoError(t, err)
	assert.Equal(t, `{"odd":[1,3],"even":[2]}`, string(b))

	g, err := groupby.Group([]any{map[string]any{"a": 1}, map[string]any{}}, "a")
	require.NoError(t, err)
	b, err = json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":[{"a":1}],"undefined":[{}]}`, string(b))
}

func TestGroupsMarshalJSONError(t *testing.T) {
	g := groupby.NewGroups[any]()
	g.Append("bad", make(chan int))
	_, err := json.Marshal(g)
	assert.Error(t, err)
}

func parity(e any, _ int, _ []any) (any, error) {
	if e.(int)%2 == 0 {
		return "even", nil
	}
	return "odd", nil
}
