package sixj

import (
	"fmt"

	"github.com/katalvlaran/wigner/numeric"
	"github.com/katalvlaran/wigner/racah"
)

// sums holds the integer triad sums α and the quadruple sums β of the
// Racah formula:
//
//	α = [j1+j2+j3, j1+j5+j6, j4+j2+j6, j4+j5+j3]
//	β = [j1+j2+j4+j5, j2+j3+j5+j6, j3+j1+j6+j4]
type sums struct {
	alpha [4]int
	beta  [3]int
}

func newSums(r Request, eps float64) (sums, error) {
	var (
		s   sums
		err error
	)
	for i, t := range r.Triads() {
		if s.alpha[i], err = numeric.ToInt(t[0]+t[1]+t[2], eps); err != nil {
			return sums{}, fmt.Errorf("sixj: triad %d: %w", i+1, err)
		}
	}
	quads := [3]float64{
		r.J1 + r.J2 + r.J4 + r.J5,
		r.J2 + r.J3 + r.J5 + r.J6,
		r.J3 + r.J1 + r.J6 + r.J4,
	}
	for i, q := range quads {
		if s.beta[i], err = numeric.ToInt(q, eps); err != nil {
			return sums{}, fmt.Errorf("sixj: quadruple %d: %w", i+1, err)
		}
	}

	return s, nil
}

// bounds keeps every (k−α)! and (β−k)! argument non-negative.
func (s sums) bounds() (lo, hi int) {
	return max(s.alpha[0], s.alpha[1], s.alpha[2], s.alpha[3]), min(s.beta[0], s.beta[1], s.beta[2])
}

// terms builds (−1)^k (k+1)! / [Π (k−α_i)! · Π (β_i−k)!] for k in range.
func (s sums) terms() []racah.Term {
	lo, hi := s.bounds()
	if lo > hi {
		return nil
	}
	out := make([]racah.Term, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		sign := 1
		if k%2 != 0 {
			sign = -1
		}
		den := make([]int, 0, 7)
		for _, a := range s.alpha {
			den = append(den, k-a)
		}
		for _, b := range s.beta {
			den = append(den, b-k)
		}
		out = append(out, racah.Term{Sign: sign, Num: []int{k + 1}, Den: den})
	}

	return out
}

// Bounds returns the inclusive summation range [lo, hi]:
//
//	lo = max(j1+j2+j3, j4+j5+j3, j1+j5+j6, j4+j2+j6)
//	hi = min(j1+j2+j4+j5, j1+j3+j4+j6, j2+j3+j5+j6)
//
// Sums are converted by round-to-nearest with an eps residual check.
func Bounds(r Request, eps float64) (lo, hi int, err error) {
	s, err := newSums(r, eps)
	if err != nil {
		return 0, 0, err
	}
	lo, hi = s.bounds()

	return lo, hi, nil
}

// Series builds √(Δ(j1,j2,j3)·Δ(j1,j5,j6)·Δ(j4,j2,j6)·Δ(j4,j5,j3)) · Σ_k term(k).
// Selection rules are not applied; callers screen with NonZero first.
func Series(r Request, eps float64) (racah.Series, error) {
	out := racah.Series{Phase: 1}
	for i, t := range r.Triads() {
		num, den, err := racah.TriangleFactors(t[0], t[1], t[2], eps)
		if err != nil {
			return out, fmt.Errorf("sixj: Δ of triad %d: %w", i+1, err)
		}
		out.Root(num, den)
	}

	s, err := newSums(r, eps)
	if err != nil {
		return out, err
	}
	out.Terms = s.terms()

	return out, nil
}

// Sum returns the bare alternating sum over Bounds; an empty range is 0.
func Sum(r Request, opts ...racah.Option) (float64, error) {
	o := racah.Resolve(opts...)
	s, err := newSums(r, o.Epsilon())
	if err != nil {
		return 0, err
	}

	return racah.Sum(racah.Series{Terms: s.terms()}, o.Method()), nil
}
