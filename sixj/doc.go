// Package sixj evaluates the Wigner 6-j symbol
//
//	⎧ j1 j2 j3 ⎫
//	⎩ j4 j5 j6 ⎭
//
// for integer and half-integer angular momenta, using Racah's single-sum
// formula over the four triads {j1,j2,j3}, {j1,j5,j6}, {j4,j2,j6}, {j4,j5,j3}.
//
// ⚙️ Usage:
//
//	v, err := sixj.Calculate(2, 2, 2, 2, 2, 2) // −3/70
//
// A symbol ruled out by the triangle rules returns (0, nil); off-lattice
// input returns an error matching numeric.ErrNotInteger.
package sixj
