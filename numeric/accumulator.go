package numeric

import "math"

// Accumulator sums float64 values with Neumaier compensation, keeping a
// running correction term for the low-order bits lost in each addition.
// The zero value is an empty sum, ready to use.
type Accumulator struct {
	sum float64
	c   float64
}

// Add adds x to the running sum.
func (a *Accumulator) Add(x float64) {
	t := a.sum + x
	if math.Abs(a.sum) >= math.Abs(x) {
		a.c += (a.sum - t) + x
	} else {
		a.c += (x - t) + a.sum
	}
	a.sum = t
}

// Sum returns the compensated total.
func (a *Accumulator) Sum() float64 {
	return a.sum + a.c
}
