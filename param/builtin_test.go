package param

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	tr := String()
	for _, v := range []string{"", "a", "hello world", "ünïcode"} {
		raw, err := tr.Encode(v)
		require.NoError(t, err)
		got, err := tr.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestIntRoundTrip(t *testing.T) {
	tr := Int()
	for _, v := range []int{0, 1, -1, 42, -99999} {
		raw, err := tr.Encode(v)
		require.NoError(t, err)
		got, err := tr.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := tr.Decode([]string{"3.5"})
	assert.Error(t, err)
}

func TestFloatNormalization(t *testing.T) {
	tr := Float()

	raw, err := tr.Encode(1.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5"}, raw)

	// "1.50" decodes to the same value and re-encodes canonically.
	got, err := tr.Decode([]string{"1.50"})
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	again, err := tr.Encode(got)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestBool(t *testing.T) {
	tr := Bool()

	raw, err := tr.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, raw)

	tests := []struct {
		raw      string
		expected bool
	}{
		{raw: "true", expected: true},
		{raw: "false", expected: false},
		{raw: "1", expected: true},
		{raw: "0", expected: false},
		{raw: "TRUE", expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := tr.Decode([]string{tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err = tr.Decode([]string{"yes"})
	assert.Error(t, err)
}

func TestNull(t *testing.T) {
	tr := Null()

	raw, err := tr.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"null"}, raw)

	got, err := tr.Decode(raw)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = tr.Encode("something")
	assert.Error(t, err)

	_, err = tr.Decode([]string{"nil"})
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	tr := Date()

	v := time.Date(2024, 3, 15, 10, 30, 0, 500000000, time.UTC)
	raw, err := tr.Encode(v)
	require.NoError(t, err)
	got, err := tr.Decode(raw)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))

	_, err = tr.Decode([]string{"not-a-date"})
	assert.Error(t, err)
}

func TestUUIDRoundTrip(t *testing.T) {
	tr := UUID()

	v := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	raw, err := tr.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"550e8400-e29b-41d4-a716-446655440000"}, raw)

	got, err := tr.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = tr.Decode([]string{"not-a-uuid"})
	assert.Error(t, err)
}

func TestOneOf(t *testing.T) {
	tr := OneOf("posts", "likes")

	raw, err := tr.Encode("posts")
	require.NoError(t, err)
	got, err := tr.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "posts", got)

	_, err = tr.Encode("other")
	assert.Error(t, err)

	_, err = tr.Decode([]string{"other"})
	assert.Error(t, err)
}

func TestArrayOf(t *testing.T) {
	t.Run("round trip preserves order", func(t *testing.T) {
		tr := ArrayOf(String())
		raw, err := tr.Encode([]string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, raw)

		got, err := tr.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("joined single string splits", func(t *testing.T) {
		tr := ArrayOf(Int())
		got, err := tr.Decode([]string{"1,2,3"})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("element failure fails the array", func(t *testing.T) {
		tr := ArrayOf(Int())
		_, err := tr.Decode([]string{"1", "x", "3"})
		assert.Error(t, err)
	})

	t.Run("empty slice encodes to absent", func(t *testing.T) {
		tr := ArrayOf(String())
		raw, err := tr.Encode(nil)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("kind is array", func(t *testing.T) {
		assert.Equal(t, KindArray, ArrayOf(String()).Kind())
	})
}

func TestCustom(t *testing.T) {
	type point struct {
		X, Y int
	}
	tr := Custom(
		func(p point) (string, error) {
			b, err := json.Marshal(p)
			return string(b), err
		},
		func(s string) (point, error) {
			var p point
			err := json.Unmarshal([]byte(s), &p)
			return p, err
		},
	)

	raw, err := tr.Encode(point{X: 1, Y: 2})
	require.NoError(t, err)
	require.Len(t, raw, 1)

	got, err := tr.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, got)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindScalar, String().Kind())
	assert.Equal(t, KindScalar, Int().Kind())
	assert.Equal(t, KindBool, Bool().Kind())
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindArray, ArrayOf(Int()).Kind())
	assert.Equal(t, KindScalar, Custom(
		func(s string) (string, error) { return s, nil },
		func(s string) (string, error) { return s, nil },
	).Kind())
}
