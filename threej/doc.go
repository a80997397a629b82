// Package threej evaluates the Wigner 3-j symbol
//
//	⎛ j1 j2 j3 ⎞
//	⎝ m1 m2 m3 ⎠
//
// for integer and half-integer angular momenta, using the Racah closed form.
//
// ✨ Pipeline (one straight-line call, no state):
//  1. NonZero: selection rules; a failed rule returns 0 with no error.
//  2. validate: every j on the half-integer lattice, every j−m integral.
//  3. Bounds: summation range over k, by round-to-nearest conversion.
//  4. Series: Δ(j1,j2,j3), the (j±m)! prefactor and the alternating sum.
//  5. racah.Evaluate: Exact (default) or LogGamma backend.
//
// ⚙️ Usage:
//
//	v, err := threej.Calculate(2, 2, 2, 0, 0, 0) // −√(2/35)
//	if errors.Is(err, numeric.ErrNotInteger) {
//	  // off-lattice input such as j = 0.3
//	}
//
// Errors never encode a vanishing symbol: a zero by selection rule is (0, nil).
package threej
