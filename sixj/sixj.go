package sixj

import "github.com/katalvlaran/wigner/racah"

// Calculate returns the Wigner 6-j symbol {j1 j2 j3; j4 j5 j6}.
//
// Behavior highlights:
//   - Any non-triangular triad returns (0, nil).
//   - NaN/±Inf, off-lattice j, or a triad with a half-integer sum return an
//     error matching numeric.ErrNotInteger. NaN is reported on purpose rather
//     than returned as the zero a comparison-only screen would produce.
//
// Complexity:
//   - Time O(K·F): K ≤ min(β) − max(α) + 1 terms, F an exact factorial of
//     size O(Σj).
func Calculate(j1, j2, j3, j4, j5, j6 float64, opts ...racah.Option) (float64, error) {
	return Request{J1: j1, J2: j2, J3: j3, J4: j4, J5: j5, J6: j6}.Evaluate(opts...)
}

// Evaluate runs the screen → validate → series → backend pipeline.
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
