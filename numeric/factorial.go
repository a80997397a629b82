package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// FactorialArg validates x as a factorial argument.
// Implementation:
//   - Stage 1: round x to nearest and check the residual against eps (ToInt).
//   - Stage 2: reject negative results.
//
// Errors:
//   - ErrNotInteger: x is not within eps of an integer.
//   - ErrNegativeFactorial: x rounds to a negative integer.
//
// Complexity:
//   - Time O(1), Space O(1).
func FactorialArg(x, eps float64) (int, error) {
	n, err := ToInt(x, eps)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeFactorial, n)
	}

	return n, nil
}

// Factorial returns x! exactly, where x must be within eps of a
// non-negative integer. See FactorialArg for the error contract.
func Factorial(x, eps float64) (*big.Int, error) {
	n, err := FactorialArg(x, eps)
	if err != nil {
		return nil, err
	}

	return FactorialInt(n), nil
}

// FactorialInt returns n! as a fresh *big.Int. n must be non-negative;
// 0! = 1! = 1.
func FactorialInt(n int) *big.Int {
	if n < 0 {
		panic(fmt.Sprintf("numeric: FactorialInt(%d): negative argument", n))
	}
	if n < 2 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(2, int64(n))
}

// LogFactorial returns ln(n!) for n ≥ 0.
func LogFactorial(n int) float64 {
	if n < 0 {
		panic(fmt.Sprintf("numeric: LogFactorial(%d): negative argument", n))
	}
	if n < 2 {
		return 0
	}
	lg, _ := math.Lgamma(float64(n) + 1)

	return lg
}
