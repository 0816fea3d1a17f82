package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBetween_Bounds(t *testing.T) {
	r := NewRand(7)
	for range 1000 {
		v := IntBetween(r, -3, 4)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 4)
	}
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 20 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestPickN_Distinct(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	r := NewRand(3)
	for range 50 {
		got := PickN(r, items, 3)
		require.Len(t, got, 3)
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s], "duplicate %q in %v", s, got)
			seen[s] = true
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items, "input must not be mutated")
}

func TestScriptedRand(t *testing.T) {
	r := &ScriptedRand{Ints: []int{1, 7, -1}, Floats: []float64{0.25}}
	assert.Equal(t, 1, r.IntN(5))
	assert.Equal(t, 2, r.IntN(5))
	assert.Equal(t, 4, r.IntN(5))
	assert.Equal(t, 0, r.IntN(5))
	assert.Equal(t, 0.25, r.Float64())
	assert.Equal(t, 0.0, r.Float64())
}

func TestSample(t *testing.T) {
	calls := 0
	v, ok := Sample(MaxAttempts, func() (int, bool) {
		calls++
		return calls, calls == 3
	})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	calls = 0
	_, ok = Sample(MaxAttempts, func() (int, bool) {
		calls++
		return 0, false
	})
	assert.False(t, ok)
	assert.Equal(t, MaxAttempts, calls)
}
