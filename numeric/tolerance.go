package numeric

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used for every integrality and equality
// check unless a caller overrides it.
const DefaultEpsilon = 1e-9

// maxExactInt is the largest magnitude at which every integer is exactly
// representable as a float64 (2^53).
const maxExactInt = 1 << 53

// ToInt rounds x to the nearest integer and accepts it only when the
// residual is within eps.
//
// Errors:
//   - ErrNotInteger: x is NaN/±Inf, beyond 2^53, or |x − round(x)| > eps.
func ToInt(x, eps float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > maxExactInt {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, x)
	}
	r := math.Round(x)
	if math.Abs(x-r) > eps {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, x)
	}

	return int(r), nil
}

// IsInteger reports whether x is within eps of an integer.
func IsInteger(x, eps float64) bool {
	_, err := ToInt(x, eps)

	return err == nil
}

// IsHalfInteger reports whether x lies on the half-integer lattice
// {…, −1, −½, 0, ½, 1, …}, i.e. 2x is within 2·eps of an integer.
func IsHalfInteger(x, eps float64) bool {
	return IsInteger(2*x, 2*eps)
}

// Parity returns (−1)^n for an integral exponent given as float64.
//
// Errors:
//   - ErrNotInteger: when x is not within eps of an integer
//     (a phase such as (−1)^½ is not real).
func Parity(x, eps float64) (int, error) {
	n, err := ToInt(x, eps)
	if err != nil {
		return 0, err
	}
	if n%2 != 0 {
		return -1, nil
	}

	return 1, nil
}
