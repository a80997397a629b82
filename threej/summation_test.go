package threej_test

import (
	"testing"

	"github.com/katalvlaran/wigner/numeric"
	"github.com/katalvlaran/wigner/racah"
	"github.com/katalvlaran/wigner/threej"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	cases := []struct {
		r      threej.Request
		lo, hi int
	}{
		{threej.Request{J1: 2, J2: 2, J3: 2}, 0, 2},
		{threej.Request{J1: 6, J2: 4, J3: 2}, 4, 4},
		{threej.Request{J1: 2.5, J2: 1.5, J3: 1, M1: 1.5, M2: -0.5, M3: -1}, 1, 1},
		{threej.Request{J1: 0.5, J2: 0.5, J3: 1, M1: 0.5, M2: 0.5, M3: -1}, 0, 0},
	}
	for _, tc := range cases {
		lo, hi, err := threej.Bounds(tc.r, numeric.DefaultEpsilon)
		require.NoError(t, err)
		assert.Equal(t, tc.lo, lo, "lo for %v", tc.r)
		assert.Equal(t, tc.hi, hi, "hi for %v", tc.r)
	}
}

// TestBounds_RoundsToNearest: j1−m1 = 1.9999999999 must count as 2; a
// truncating conversion would drop the last term of the sum.
func TestBounds_RoundsToNearest(t *testing.T) {
	r := threej.Request{J1: 2, J2: 2, J3: 2, M1: 1e-10}
	lo, hi, err := threej.Bounds(r, numeric.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)
}

func TestBounds_OffLattice(t *testing.T) {
	_, _, err := threej.Bounds(threej.Request{J1: 1.3, J2: 1, J3: 1}, numeric.DefaultEpsilon)
	assert.ErrorIs(t, err, numeric.ErrNotInteger)
}

// TestSum checks the bare alternating sum against hand-computed values.
func TestSum(t *testing.T) {
	// k = 0..2: 1/8 − 1 + 1/8
	got, err := threej.Sum(threej.Request{J1: 2, J2: 2, J3: 2})
	require.NoError(t, err)
	assert.InDelta(t, -0.75, got, 1e-15)

	got, err = threej.Sum(threej.Request{J1: 2, J2: 2, J3: 2}, racah.WithMethod(racah.LogGamma))
	require.NoError(t, err)
	assert.InDelta(t, -0.75, got, 1e-13)

	// k = 0 only: 1/(0!·0!·0!·1!·1!·0!) = 1
	got, err = threej.Sum(threej.Request{J1: 0.5, J2: 0.5, J3: 1, M1: 0.5, M2: 0.5, M3: -1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-15)
}

// TestSeries_Shape inspects the Racah form handed to the backend.
func TestSeries_Shape(t *testing.T) {
	s, err := threej.Series(threej.Request{J1: 2, J2: 2, J3: 2}, numeric.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Phase)
	assert.Len(t, s.Terms, 3)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2, 2, 2, 2}, s.RootNum, "Δ numerators then (j∓m)!")
	assert.Equal(t, []int{7}, s.RootDen)
	assert.Equal(t, []int{0, 2, 2, 2, 0, 0}, s.Terms[0].Den)
	assert.Equal(t, -1, s.Terms[1].Sign)
}
