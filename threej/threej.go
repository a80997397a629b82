package threej

import "github.com/katalvlaran/wigner/racah"

// Calculate returns the Wigner 3-j symbol (j1 j2 j3; m1 m2 m3).
//
// Behavior highlights:
//   - Symbols ruled out by NonZero return (0, nil).
//   - Off-lattice input (e.g. j = 0.3, or m not matching its j) returns an
//     error matching numeric.ErrNotInteger.
//   - NaN or ±Inf in any argument also returns numeric.ErrNotInteger. A
//     comparison-only screen would let NaN through as a zero symbol; this
//     deliberately departs from that and reports it.
//
// Complexity:
//   - Time O(K·F) where K ≤ min(j1+j2−j3, j1−m1, j2+m2)+1 terms and F is the
//     cost of an exact factorial of size O(j1+j2+j3).
func Calculate(j1, j2, j3, m1, m2, m3 float64, opts ...racah.Option) (float64, error) {
	return Request{J1: j1, J2: j2, J3: j3, M1: m1, M2: m2, M3: m3}.Evaluate(opts...)
}

// Evaluate runs the screen → validate → series → backend pipeline.
// NaN and ±Inf are rejected up front with numeric.ErrNotInteger.
func (r Request) Evaluate(opts ...racah.Option) (float64, error) {
	o := racah.Resolve(opts...)
	eps := o.Epsilon()

	if err := finite(r); err != nil {
		return 0, err
	}
	if !NonZero(r, eps) {
		return 0, nil
	}
	if err := validate(r, eps); err != nil {
		return 0, err
	}
	s, err := Series(r, eps)
	if err != nil {
		return 0, err
	}

	return racah.Evaluate(s, o.Method()), nil
}
