package racah

import (
	"math"
	"math/big"

	"github.com/katalvlaran/wigner/numeric"
)

// sqrtPrec is the big.Float mantissa precision used for the final root;
// far beyond float64 so the single rounding to float64 dominates.
const sqrtPrec = 256

// logRelTolerance is the largest estimated relative error the LogGamma
// backend may return; past it the result is recomputed exactly.
const logRelTolerance = 1e-11

// machineEps is the float64 unit roundoff doubled (2^-52).
const machineEps = 0x1p-52

// Term is one summand Sign · Π Num! / Π Den!.
type Term struct {
	Sign int
	Num  []int
	Den  []int
}

// Series describes Phase · √(Π RootNum! / Π RootDen!) · Σ Terms.
// All factorial arguments are validated non-negative integers.
type Series struct {
	Phase   int
	RootNum []int
	RootDen []int
	Terms   []Term
}

// Root appends the factorial arguments of a ratio to the square-root prefactor.
func (s *Series) Root(num, den []int) {
	s.RootNum = append(s.RootNum, num...)
	s.RootDen = append(s.RootDen, den...)
}

// Evaluate returns the value of s with the chosen backend.
// An empty Terms slice evaluates to 0.
//
// LogGamma falls back to Exact when cancellation in the alternating sum
// leaves fewer correct digits than logRelTolerance allows; the returned
// value is therefore never a float64 artefact of cancellation.
func Evaluate(s Series, m Method) float64 {
	if m == LogGamma {
		if v, ok := evaluateLog(s); ok {
			return v
		}
	}

	return evaluateExact(s)
}

// Sum returns Σ Terms alone (without phase or prefactor), with the same
// LogGamma fallback as Evaluate.
func Sum(s Series, m Method) float64 {
	if m == LogGamma {
		if v, ok := logSum(s.Terms, 0, 0); ok {
			return v
		}
	}
	f, _ := SumExact(s).Float64()

	return f
}

// SumExact returns Σ Terms as an exact rational.
func SumExact(s Series) *big.Rat {
	sum := new(big.Rat)
	for _, t := range s.Terms {
		r := factorialRatio(t.Num, t.Den)
		if t.Sign < 0 {
			r.Neg(r)
		}
		sum.Add(sum, r)
	}

	return sum
}

// evaluateExact squares the sum so that the prefactor and the sum share a
// single square root: |value| = √(R · S²).
func evaluateExact(s Series) float64 {
	sum := SumExact(s)
	if sum.Sign() == 0 || s.Phase == 0 {
		return 0
	}
	x := factorialRatio(s.RootNum, s.RootDen)
	x.Mul(x, sum)
	x.Mul(x, sum)

	f := new(big.Float).SetPrec(sqrtPrec).SetRat(x)
	v, _ := new(big.Float).SetPrec(sqrtPrec).Sqrt(f).Float64()
	if sum.Sign()*s.Phase < 0 {
		v = -v
	}

	return v
}

// evaluateLog folds the prefactor into each term in log space.
func evaluateLog(s Series) (float64, bool) {
	if len(s.Terms) == 0 || s.Phase == 0 {
		return 0, true
	}
	half := 0.5 * logFactorialRatio(s.RootNum, s.RootDen)
	halfWeight := 0.5 * logFactorialWeight(s.RootNum, s.RootDen)

	v, ok := logSum(s.Terms, half, halfWeight)

	return float64(s.Phase) * v, ok
}

// logSum returns Σ Terms · e^shift in float64. Terms are scaled by the
// largest one before summing, so the scaled sum S has max |term| = 1 and
// 1/|S| is the cancellation factor. The error estimate multiplies it by the
// size of the log-factorials feeding each exponent. ok is false when that
// estimate exceeds logRelTolerance (including an exact float64 zero).
func logSum(terms []Term, shift, shiftWeight float64) (v float64, ok bool) {
	if len(terms) == 0 {
		return 0, true
	}
	logs := make([]float64, len(terms))
	top, weight := math.Inf(-1), 0.0
	for i, t := range terms {
		logs[i] = shift + logFactorialRatio(t.Num, t.Den)
		top = max(top, logs[i])
		weight = max(weight, shiftWeight+logFactorialWeight(t.Num, t.Den))
	}

	var acc numeric.Accumulator
	for i, t := range terms {
		acc.Add(float64(t.Sign) * math.Exp(logs[i]-top))
	}
	scaled := acc.Sum()

	bound := (1 + weight + float64(len(terms))) * machineEps / math.Abs(scaled)
	if !(bound <= logRelTolerance) {
		return 0, false
	}

	return scaled * math.Exp(top), true
}
