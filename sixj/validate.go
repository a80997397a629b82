package sixj

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wigner/numeric"
)

func finite(r Request) error {
	for i, j := range r.Values() {
		if math.IsNaN(j) || math.IsInf(j, 0) {
			return fmt.Errorf("sixj: j%d: %w: %v", i+1, numeric.ErrNotInteger, j)
		}
	}

	return nil
}

// validate checks, after screening, that every j is a half-integer and
// every triad sums to an integer.
func validate(r Request, eps float64) error {
	for i, j := range r.Values() {
		if !numeric.IsHalfInteger(j, eps) {
			return fmt.Errorf("sixj: j%d=%v is not a half-integer: %w", i+1, j, numeric.ErrNotInteger)
		}
	}
	for i, t := range r.Triads() {
		if _, err := numeric.ToInt(t[0]+t[1]+t[2], eps); err != nil {
			return fmt.Errorf("sixj: triad %d %v: %w", i+1, t, err)
		}
	}

	return nil
}
