package threej

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wigner/numeric"
)

// finite rejects NaN and ±Inf before screening, so they surface as
// integrality errors instead of slipping through (or failing) comparisons.
func finite(r Request) error {
	for i, c := range r.Columns() {
		for _, x := range c {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("threej: column %d: %w: %v", i+1, numeric.ErrNotInteger, x)
			}
		}
	}

	return nil
}

// validate checks lattice membership after screening:
//   - Stage 1: every j is a half-integer;
//   - Stage 2: every j − m is an integer (m shares the lattice of its j).
//
// Errors wrap numeric.ErrNotInteger with the offending column.
func validate(r Request, eps float64) error {
	for i, c := range r.Columns() {
		if !numeric.IsHalfInteger(c[0], eps) {
			return fmt.Errorf("threej: j%d=%v is not a half-integer: %w", i+1, c[0], numeric.ErrNotInteger)
		}
	}
	for i, c := range r.Columns() {
		if _, err := numeric.ToInt(c[0]-c[1], eps); err != nil {
			return fmt.Errorf("threej: j%d−m%d: %w", i+1, i+1, err)
		}
	}

	return nil
}
