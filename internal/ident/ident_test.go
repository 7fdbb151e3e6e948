package ident

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValue(t *testing.T) {
	testCases := []struct {
		name      string
		value     any
		expectOK  bool
		expectErr bool
		expected  ID
	}{
		{name: "nil is absent", value: nil},
		{name: "string", value: "A", expectOK: true, expected: String("A")},
		{name: "empty string", value: "", expectOK: true, expected: String("")},
		{name: "json integer", value: json.Number("42"), expectOK: true, expected: Number(42)},
		{name: "json float spelled as integer", value: json.Number("42.0"), expectOK: true, expected: Number(42)},
		{name: "json exponent", value: json.Number("4.2e1"), expectOK: true, expected: Number(42)},
		{name: "json fraction", value: json.Number("0.5"), expectOK: true, expected: Number(0.5)},
		{name: "go int", value: 42, expectOK: true, expected: Number(42)},
		{name: "go uint64", value: uint64(7), expectOK: true, expected: Number(7)},
		{name: "go float64", value: 42.0, expectOK: true, expected: Number(42)},
		{name: "json integer beyond float precision", value: json.Number("9007199254740993"), expectOK: true, expected: ID{origin: UserNumber, text: "9007199254740993"}},
		{name: "json exponent scales down", value: json.Number("100e-2"), expectOK: true, expected: Number(1)},
		{name: "json negative zero", value: json.Number("-0"), expectOK: true, expected: Number(0)},
		{name: "json large exponent", value: json.Number("1e20"), expectOK: true, expected: Number(1e20)},
		{name: "go negative float", value: -3.0, expectOK: true, expected: ID{origin: UserNumber, text: "-3"}},
		{name: "bool is rejected", value: true, expectErr: true},
		{name: "object is rejected", value: map[string]any{}, expectErr: true},
		{name: "array is rejected", value: []any{"a"}, expectErr: true},
		{name: "NaN is rejected", value: math.NaN(), expectErr: true},
		{name: "bad json number", value: json.Number("1x"), expectErr: true},
		{name: "zero ID is rejected", value: ID{}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok, err := FromValue(tc.value)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrNotScalar)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectOK, ok)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestNumberSpellings(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{name: "trailing fraction", a: "9007199254740993", b: "9007199254740993.0", equal: true},
		{name: "negative exponent", a: "9007199254740993", b: "90071992547409930e-1", equal: true},
		{name: "positive exponent", a: "1e3", b: "1000", equal: true},
		{name: "neighbours beyond float precision", a: "9007199254740992.0", b: "9007199254740993.0", equal: false},
		{name: "fractions compare as float64", a: "0.1", b: "1e-1", equal: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, _, err := FromValue(json.Number(tc.a))
			require.NoError(t, err)
			b, _, err := FromValue(json.Number(tc.b))
			require.NoError(t, err)

			assert.Equal(t, tc.equal, a == b)
		})
	}
}

func TestStringAndNumberAreDistinct(t *testing.T) {
	assert.NotEqual(t, String("1"), Number(1))
	assert.Equal(t, String("1").String(), Number(1).String())
}

func TestAllocator(t *testing.T) {
	a := NewAllocator()
	first := a.Next()
	second := a.Next()

	assert.True(t, first.IsSynthetic())
	assert.NotEqual(t, first, second)
	assert.Equal(t, uint64(2), a.Issued())

	_, ok := first.Value()
	assert.False(t, ok, "synthetic ids have no input value")

	t.Run("synthetic never equals a user id with the same text", func(t *testing.T) {
		assert.NotEqual(t, String(first.String()), first)
	})

	t.Run("allocators do not interfere", func(t *testing.T) {
		other := NewAllocator()
		assert.NotEqual(t, a.Run(), other.Run())
		assert.NotEqual(t, first, other.Next(), "same sequence number from another run must differ")
	})

	t.Run("FromValue passes synthetic ids through", func(t *testing.T) {
		id, ok, err := FromValue(first)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, first, id)
	})
}

func TestIDValue(t *testing.T) {
	v, ok := String("A").Value()
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	v, ok = Number(1.5).Value()
	assert.True(t, ok)
	assert.Equal(t, json.Number("1.5"), v)

	assert.False(t, ID{}.IsValid())
	assert.Equal(t, "<invalid>", ID{}.String())
}
