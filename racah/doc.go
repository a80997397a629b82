// Package racah evaluates Racah-type closed forms: a signed square root of a
// factorial ratio times a finite alternating sum of factorial ratios.
//
// 🚀 Why a shared form?
//
//	Both the Wigner 3-j and 6-j symbols reduce to
//
//	    value = phase · √( Π a! / Π b! ) · Σ_k (−1)^k · Π c_k! / Π d_k!
//
//	with integer factorial arguments fixed by the quantum numbers. Packages
//	threej and sixj build a Series; this package owns the triangle
//	coefficient Δ(a,b,c) and the two numeric backends that turn a Series
//	into a float64.
//
// ✨ Backends (choose via WithMethod):
//   - Exact: big.Rat arithmetic for the prefactor and every term; the
//     alternating sum is exact, so there is no cancellation. One square
//     root is taken in big.Float and rounded to float64 at the very end.
//   - LogGamma: log-factorials, one exp per term, Neumaier-compensated
//     float64 sum. Faster for moderate j. When the estimated cancellation
//     error of the alternating sum exceeds 1e-11 (relative) the Series is
//     recomputed with Exact, so large-j results stay correct.
//
// ⚙️ Usage:
//
//	d, err := racah.Triangle(1, 1, 1) // Δ(1,1,1) = 1/24
//	s := racah.Series{Phase: 1, RootNum: []int{2}, Terms: []racah.Term{{Sign: 1}}}
//	v := racah.Evaluate(s, racah.Exact)
//
// Everything here is pure and safe for concurrent use.
package racah
