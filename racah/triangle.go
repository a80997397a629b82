package racah

import (
	"math"
	"math/big"

	"github.com/katalvlaran/wigner/numeric"
)

// Triangular reports whether (a, b, c) satisfy |a − b| ≤ c ≤ a + b, with eps
// slack on both sides. A triangular triple is necessarily non-negative.
func Triangular(a, b, c, eps float64) bool {
	return math.Abs(a-b) <= c+eps && c <= a+b+eps
}

// TriangleFactors returns the factorial arguments of Δ(a,b,c):
//
//	num = [a+b−c, a−b+c, −a+b+c],  den = [a+b+c+1]
//
// Errors:
//   - numeric.ErrNotInteger: a+b+c is off the integer lattice.
//   - numeric.ErrNegativeFactorial: the triangle inequality is violated;
//     callers are expected to screen with Triangular first.
func TriangleFactors(a, b, c, eps float64) (num []int, den []int, err error) {
	args := [4]float64{a + b - c, a - b + c, -a + b + c, a + b + c + 1}
	var n [4]int
	for i, x := range args {
		if n[i], err = numeric.FactorialArg(x, eps); err != nil {
			return nil, nil, err
		}
	}

	return []int{n[0], n[1], n[2]}, []int{n[3]}, nil
}

// Triangle returns the triangle coefficient Δ(a,b,c) exactly.
//
//	Δ(a,b,c) = (a+b−c)! (a−b+c)! (−a+b+c)! / (a+b+c+1)!
//
// Only Options.Epsilon is consulted. See TriangleFactors for errors.
func Triangle(a, b, c float64, opts ...Option) (*big.Rat, error) {
	o := Resolve(opts...)
	num, den, err := TriangleFactors(a, b, c, o.eps)
	if err != nil {
		return nil, err
	}

	return factorialRatio(num, den), nil
}

// factorialRatio returns Π num! / Π den! as a big.Rat.
func factorialRatio(num, den []int) *big.Rat {
	p := big.NewInt(1)
	for _, n := range num {
		p.Mul(p, numeric.FactorialInt(n))
	}
	q := big.NewInt(1)
	for _, n := range den {
		q.Mul(q, numeric.FactorialInt(n))
	}

	return new(big.Rat).SetFrac(p, q)
}

// logFactorialRatio returns ln(Π num! / Π den!).
func logFactorialRatio(num, den []int) float64 {
	s := 0.0
	for _, n := range num {
		s += numeric.LogFactorial(n)
	}
	for _, n := range den {
		s -= numeric.LogFactorial(n)
	}

	return s
}

// logFactorialWeight returns Σ ln(n!) over num and den; it scales the
// absolute rounding error of logFactorialRatio.
func logFactorialWeight(num, den []int) float64 {
	s := 0.0
	for _, n := range num {
		s += numeric.LogFactorial(n)
	}
	for _, n := range den {
		s += numeric.LogFactorial(n)
	}

	return s
}
