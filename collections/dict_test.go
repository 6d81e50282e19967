package collections_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-chain-utils/bind"
	"github.com/hasbyte1/go-chain-utils/collections"
)

func ages() *collections.Dict[string, int] {
	return collections.FromMap(map[string]int{"ann": 31, "bob": 12, "cy": 18})
}

func adult(_ string, age int) bool { return age >= 18 }

func atLeast(_ string, age, floor int) bool { return age >= floor }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestFromMapCopiesInput(t *testing.T) {
	src := map[string]int{"a": 1}
	d := collections.FromMap(src)
	src["b"] = 2
	assert.Equal(t, 1, d.Len())

	out := d.ToMap()
	out["c"] = 3
	assert.Equal(t, map[string]int{"a": 1}, d.ToMap())
}

func TestFromPairsAndFromKeys(t *testing.T) {
	d := collections.FromPairs(
		collections.Pair[string, int]{Key: "a", Value: 1},
		collections.Pair[string, int]{Key: "a", Value: 2},
	)
	assert.Equal(t, map[string]int{"a": 2}, d.ToMap())

	seen := collections.FromKeys([]string{"x", "y"}, false)
	assert.Equal(t, map[string]bool{"x": false, "y": false}, seen.ToMap())
}

func TestDictAccessors(t *testing.T) {
	d := ages()
	v, ok := d.Get("ann")
	assert.True(t, ok)
	assert.Equal(t, 31, v)

	_, ok = d.Get("zed")
	assert.False(t, ok)

	sorted := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff([]string{"ann", "bob", "cy"}, d.Keys(), sorted); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{12, 18, 31}, d.Values(), cmpopts.SortSlices(func(a, b int) bool { return a < b })); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedItems(t *testing.T) {
	want := []collections.Pair[string, int]{
		{Key: "ann", Value: 31},
		{Key: "bob", Value: 12},
		{Key: "cy", Value: 18},
	}
	if diff := cmp.Diff(want, collections.SortedItems(ages())); diff != "" {
		t.Errorf("SortedItems() mismatch (-want +got):\n%s", diff)
	}
}

func TestDictToJSON(t *testing.T) {
	b, err := collections.FromMap(map[string]int{"a": 1, "b": 2}).ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":2}`, string(b))
}

// ─────────────────────────────────────────────────────────────────────────────
// Map / Keep / Rem
// ─────────────────────────────────────────────────────────────────────────────

func TestDictMapTwoResults(t *testing.T) {
	d := ages().Map(func(k string, v int) (string, int) { return strings.ToUpper(k), v + 1 })
	require.NoError(t, d.Err())
	assert.Equal(t, map[string]int{"ANN": 32, "BOB": 13, "CY": 19}, d.ToMap())
}

func TestDictMapPairAndExtraArgs(t *testing.T) {
	d := ages().Map(func(k string, v, by int) collections.Pair[string, int] {
		return collections.Pair[string, int]{Key: k, Value: v * by}
	}, 2)
	require.NoError(t, d.Err())
	assert.Equal(t, map[string]int{"ann": 62, "bob": 24, "cy": 36}, d.ToMap())
}

func TestDictMapBadResult(t *testing.T) {
	d := ages().Map(func(k string, v int) int { return v })
	assert.ErrorIs(t, d.Err(), collections.ErrInvalidArgument)

	d = ages().Map(func(k string, v int) (int, int) { return v, v })
	assert.ErrorIs(t, d.Err(), collections.ErrInvalidArgument)
}

func TestDictKeepAndRem(t *testing.T) {
	d := ages()
	assert.Equal(t, map[string]int{"ann": 31, "cy": 18}, d.Keep(adult).ToMap())
	assert.Equal(t, map[string]int{"bob": 12}, d.Rem(adult).ToMap())
	assert.Equal(t, map[string]int{"ann": 31}, d.Keep(atLeast, 21).ToMap())
	assert.Equal(t, 3, d.Len(), "receiver must be untouched")
}

func TestDictPlaceholderIsPassedLiterally(t *testing.T) {
	var got any
	d := ages().Keep(func(_ string, _ int, extra any) bool {
		got = extra
		return true
	}, bind.Blank)
	require.NoError(t, d.Err())
	assert.True(t, bind.IsBlank(got))
}

func TestDictErrorStopsChain(t *testing.T) {
	d := ages().
		Keep(func(string, int) (bool, error) { return false, errBoom }).
		Map(func(k string, v int) (string, int) { return k, v })

	assert.ErrorIs(t, d.Err(), errBoom)
	_, err := d.Count()
	assert.ErrorIs(t, err, errBoom)
	_, err = d.All(adult)
	assert.ErrorIs(t, err, errBoom)
	_, err = d.ToJSON()
	assert.ErrorIs(t, err, errBoom)
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

func TestDictSomeAllHas(t *testing.T) {
	d := ages()

	ok, err := d.Some(adult)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Has(atLeast, 50)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = d.All(adult)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = d.All(atLeast, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = collections.NewDict[string, int]().All(adult)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDictCount(t *testing.T) {
	d := ages()
	n, err := d.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = d.Count(adult)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = d.Count(func(string, int) bool { return false })
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDictEmpty(t *testing.T) {
	ok, err := collections.NewDict[string, int]().Empty()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ages().Empty(atLeast, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ages().Empty(adult)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDictDoStoresResult(t *testing.T) {
	d := ages()
	out := d.Do(func(d *collections.Dict[string, int], scale int) int { return d.Len() * scale }, 10)
	require.NoError(t, out.Err())
	assert.Same(t, d, out)
	assert.Equal(t, 30, out.LastValue())

	failed := d.Do(func(*collections.Dict[string, int]) error { return errBoom })
	assert.ErrorIs(t, failed.Err(), errBoom)
	assert.NoError(t, d.Err())
}

func TestDictTypedCounterparts(t *testing.T) {
	d := ages()
	isAdult := func(k string, v int) bool { return adult(k, v) }

	assert.Equal(t, map[string]int{"ann": 31, "cy": 18}, d.KeepFunc(isAdult).ToMap())
	assert.Equal(t, map[string]int{"bob": 12}, d.RemFunc(isAdult).ToMap())

	some, err := d.SomeFunc(isAdult)
	require.NoError(t, err)
	assert.True(t, some)

	all, err := d.AllFunc(isAdult)
	require.NoError(t, err)
	assert.False(t, all)

	n, err := d.CountFunc(isAdult)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	total := 0
	require.NoError(t, d.Each(func(_ string, v int) { total += v }))
	assert.Equal(t, 61, total)
}

func TestDictTypedCounterpartsOnFailedDict(t *testing.T) {
	never := func(string, int) bool { return false }
	tests := []struct {
		name string
		d    *collections.Dict[string, int]
		want error
	}{
		{"failed", ages().Keep(nil), collections.ErrInvalidArgument},
		{"in-place result", collections.FromMapInPlace(map[string]int{"a": 1}).Keep(adult), collections.ErrNoResult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all, err := tt.d.AllFunc(never)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, all)

			some, err := tt.d.SomeFunc(adult)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, some)

			_, err = tt.d.CountFunc(never)
			assert.ErrorIs(t, err, tt.want)

			called := false
			assert.ErrorIs(t, tt.d.Each(func(string, int) { called = true }), tt.want)
			assert.False(t, called)

			assert.ErrorIs(t, tt.d.KeepFunc(adult).Err(), tt.want)
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place dicts
// ─────────────────────────────────────────────────────────────────────────────

func TestInPlaceTransformsReturnNil(t *testing.T) {
	calls := 0
	count := func(string, int) bool {
		calls++
		return true
	}
	d := collections.FromMapInPlace(map[string]int{"a": 1, "b": 2})

	assert.Nil(t, d.Keep(count))
	assert.Nil(t, d.Rem(count))
	assert.Nil(t, d.Map(func(k string, v int) (string, int) {
		calls++
		return k, v
	}))
	assert.Zero(t, calls, "fn must not be called")
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, d.ToMap())
}

func TestInPlaceStillReportsBindErrors(t *testing.T) {
	d := collections.FromMapInPlace(map[string]int{"a": 1})
	assert.ErrorIs(t, d.Keep(nil).Err(), collections.ErrInvalidArgument)
}

func TestNilDictReportsNoResult(t *testing.T) {
	d := collections.FromMapInPlace(map[string]int{"a": 1}).Keep(adult)
	require.Nil(t, d)

	assert.ErrorIs(t, d.Err(), collections.ErrNoResult)
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.LastValue())
	assert.Empty(t, d.Keys())

	_, err := d.Count()
	assert.ErrorIs(t, err, collections.ErrNoResult)
	_, err = d.Some(adult)
	assert.ErrorIs(t, err, collections.ErrNoResult)
	assert.ErrorIs(t, d.Map(adult).Err(), collections.ErrNoResult)
	assert.ErrorIs(t, d.Update(map[string]int{"b": 2}).Err(), collections.ErrNoResult)
	assert.Contains(t, d.String(), "no result")
}

func TestInPlaceTerminalsWork(t *testing.T) {
	d := collections.FromMapInPlace(map[string]int{"a": 20, "b": 5})

	n, err := d.Count(adult)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ok, err := d.Empty(atLeast, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCopyClearsInPlace(t *testing.T) {
	d := collections.FromMapInPlace(map[string]int{"a": 20, "b": 5})
	kept := d.Copy().Keep(adult)
	require.NotNil(t, kept)
	assert.Equal(t, map[string]int{"a": 20}, kept.ToMap())

	assert.NotNil(t, d.Clone().Rem(adult))
	assert.NotNil(t, d.Update(nil).Keep(adult))
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutating adapters
// ─────────────────────────────────────────────────────────────────────────────

func TestDictMutatorsDoNotAlias(t *testing.T) {
	a := collections.FromMap(map[string]int{"a": 1})

	b := a.Update(map[string]int{"b": 2}, map[string]int{"a": 3})
	assert.Equal(t, map[string]int{"a": 3, "b": 2}, b.ToMap())

	c := a.UpdatePairs(collections.Pair[string, int]{Key: "c", Value: 4})
	assert.Equal(t, map[string]int{"a": 1, "c": 4}, c.ToMap())

	e := a.Clear()
	assert.Equal(t, 0, e.Len())

	assert.Equal(t, map[string]int{"a": 1}, a.ToMap(), "receiver must be untouched")
}
