package threej

import (
	"math"

	"github.com/katalvlaran/wigner/numeric"
	"github.com/katalvlaran/wigner/racah"
)

// NonZero applies the 3-j selection rules. It returns false (the symbol is
// exactly zero) unless all of the following hold within eps:
//   - m1 + m2 + m3 = 0;
//   - −j ≤ m ≤ j for every column;
//   - |j1 − j2| ≤ j3 ≤ j1 + j2;
//   - j1 + j2 + j3 is an integer.
//
// It performs no factorial work and never fails.
func NonZero(r Request, eps float64) bool {
	if math.Abs(r.M1+r.M2+r.M3) > eps {
		return false
	}
	for _, c := range r.Columns() {
		j, m := c[0], c[1]
		if m < -j-eps || m > j+eps {
			return false
		}
	}
	if !racah.Triangular(r.J1, r.J2, r.J3, eps) {
		return false
	}

	return numeric.IsInteger(r.J1+r.J2+r.J3, eps)
}
