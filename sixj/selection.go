package sixj

import "github.com/katalvlaran/wigner/racah"

// NonZero reports whether all four triads satisfy the triangle inequality.
// A false result means the symbol is exactly zero.
func NonZero(r Request, eps float64) bool {
	for _, t := range r.Triads() {
		if !racah.Triangular(t[0], t[1], t[2], eps) {
			return false
		}
	}

	return true
}
