package threej

import "fmt"

// Request is an immutable 3-j query: three (j, m) columns.
type Request struct {
	J1, J2, J3 float64
	M1, M2, M3 float64
}

// Columns returns the (j, m) pairs in column order.
func (r Request) Columns() [3][2]float64 {
	return [3][2]float64{{r.J1, r.M1}, {r.J2, r.M2}, {r.J3, r.M3}}
}

// String renders the symbol in a compact two-row form.
func (r Request) String() string {
	return fmt.Sprintf("(%g %g %g; %g %g %g)", r.J1, r.J2, r.J3, r.M1, r.M2, r.M3)
}
