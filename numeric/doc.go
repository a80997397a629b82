// Package numeric holds the tolerance policy and the exact factorial service
// shared by the Racah-formula evaluators.
//
// 🚀 What lives here?
//
//	Every place in this module that turns a float64 quantum number (or a
//	sum/difference of them) into an integer goes through this package:
//	  • ToInt / IsInteger / IsHalfInteger: ε-aware lattice checks
//	  • FactorialArg: validated, non-negative factorial argument
//	  • Factorial / FactorialInt: exact n! on math/big (never overflows)
//	  • LogFactorial: ln(n!) for the log-space evaluation path
//	  • Accumulator: Neumaier compensated summation
//
// ✨ Conversion policy:
//
//	Values are ROUNDED TO NEAREST and the residual is checked against ε.
//	Truncation toward zero is never used: −0.999999 must become −1 (and be
//	rejected as a factorial argument), not 0.
//
// ⚙️ Usage:
//
//	n, err := numeric.FactorialArg(j1+j2-j3, numeric.DefaultEpsilon)
//	if err != nil {
//	  // errors.Is(err, numeric.ErrNotInteger) or numeric.ErrNegativeFactorial
//	}
//	f := numeric.FactorialInt(n) // *big.Int
//
// All functions are pure and safe for concurrent use.
package numeric
