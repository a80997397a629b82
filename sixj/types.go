package sixj

import "fmt"

// Request is an immutable 6-j query in the standard two-row layout.
type Request struct {
	J1, J2, J3 float64
	J4, J5, J6 float64
}

// Triads returns the four coupled triples that must each be triangular:
// {j1,j2,j3}, {j1,j5,j6}, {j4,j2,j6}, {j4,j5,j3}.
func (r Request) Triads() [4][3]float64 {
	return [4][3]float64{
		{r.J1, r.J2, r.J3},
		{r.J1, r.J5, r.J6},
		{r.J4, r.J2, r.J6},
		{r.J4, r.J5, r.J3},
	}
}

// Values returns j1..j6 in order.
func (r Request) Values() [6]float64 {
	return [6]float64{r.J1, r.J2, r.J3, r.J4, r.J5, r.J6}
}

// String renders the symbol as {upper; lower}.
func (r Request) String() string {
	return fmt.Sprintf("{%g %g %g; %g %g %g}", r.J1, r.J2, r.J3, r.J4, r.J5, r.J6)
}
