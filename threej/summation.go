package threej

import (
	"fmt"

	"github.com/katalvlaran/wigner/numeric"
	"github.com/katalvlaran/wigner/racah"
)

// shifts holds the integer offsets of the six k-dependent factorials:
//
//	k!, (a−k)!, (b−k)!, (c−k)!, (d+k)!, (e+k)!
//
// with a = j1+j2−j3, b = j1−m1, c = j2+m2, d = j3−j2+m1, e = j3−j1−m2.
type shifts struct {
	a, b, c, d, e int
}

func newShifts(r Request, eps float64) (shifts, error) {
	var (
		s   shifts
		err error
	)
	exprs := []struct {
		dst  *int
		val  float64
		name string
	}{
		{&s.a, r.J1 + r.J2 - r.J3, "j1+j2−j3"},
		{&s.b, r.J1 - r.M1, "j1−m1"},
		{&s.c, r.J2 + r.M2, "j2+m2"},
		{&s.d, r.J3 - r.J2 + r.M1, "j3−j2+m1"},
		{&s.e, r.J3 - r.J1 - r.M2, "j3−j1−m2"},
	}
	for _, x := range exprs {
		if *x.dst, err = numeric.ToInt(x.val, eps); err != nil {
			return shifts{}, fmt.Errorf("threej: %s: %w", x.name, err)
		}
	}

	return s, nil
}

// Bounds returns the inclusive summation range [lo, hi]:
//
//	lo = max(0, j2−j3−m1, j1−j3+m2)
//	hi = min(j1+j2−j3, j1−m1, j2+m2)
//
// lo > hi means the sum is empty. Every expression is converted by
// round-to-nearest with an eps residual check; see numeric.ToInt.
func Bounds(r Request, eps float64) (lo, hi int, err error) {
	s, err := newShifts(r, eps)
	if err != nil {
		return 0, 0, err
	}
	lo, hi = s.bounds()

	return lo, hi, nil
}

// bounds keeps every factorial argument of every term non-negative.
func (s shifts) bounds() (lo, hi int) {
	return max(0, -s.d, -s.e), min(s.a, s.b, s.c)
}

// terms builds (−1)^k / [k!(a−k)!(b−k)!(c−k)!(d+k)!(e+k)!] for k in range.
func (s shifts) terms() []racah.Term {
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
		out = append(out, racah.Term{
			Sign: sign,
			Den:  []int{k, s.a - k, s.b - k, s.c - k, s.d + k, s.e + k},
		})
	}

	return out
}

// Series builds the full Racah form of the symbol:
//
//	(−1)^(j1−j2−m3) · √Δ(j1,j2,j3) · √[(j1−m1)!(j1+m1)!(j2−m2)!(j2+m2)!(j3−m3)!(j3+m3)!] · Σ_k term(k)
//
// It does not apply selection rules; callers screen with NonZero first.
func Series(r Request, eps float64) (racah.Series, error) {
	var out racah.Series

	phase, err := numeric.Parity(r.J1-r.J2-r.M3, eps)
	if err != nil {
		return out, fmt.Errorf("threej: phase j1−j2−m3: %w", err)
	}
	out.Phase = phase

	num, den, err := racah.TriangleFactors(r.J1, r.J2, r.J3, eps)
	if err != nil {
		return out, fmt.Errorf("threej: Δ(j1,j2,j3): %w", err)
	}
	out.Root(num, den)

	for _, c := range r.Columns() {
		minus, err := numeric.FactorialArg(c[0]-c[1], eps)
		if err != nil {
			return out, fmt.Errorf("threej: (j−m)!: %w", err)
		}
		plus, err := numeric.FactorialArg(c[0]+c[1], eps)
		if err != nil {
			return out, fmt.Errorf("threej: (j+m)!: %w", err)
		}
		out.Root([]int{minus, plus}, nil)
	}

	s, err := newShifts(r, eps)
	if err != nil {
		return out, err
	}
	out.Terms = s.terms()

	return out, nil
}

// Sum returns the bare alternating sum Σ_k term(k) over Bounds.
// An empty range sums to 0. Selection rules are not re-checked here.
func Sum(r Request, opts ...racah.Option) (float64, error) {
	o := racah.Resolve(opts...)
	s, err := newShifts(r, o.Epsilon())
	if err != nil {
		return 0, err
	}

	return racah.Sum(racah.Series{Terms: s.terms()}, o.Method()), nil
}
