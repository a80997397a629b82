package numeric

import "errors"

var (
	// ErrNotInteger indicates a value is not within ε of an integer
	// (including NaN, ±Inf and magnitudes beyond exact float64 integers).
	// Callers see it when angular-momentum numbers leave the half-integer lattice.
	ErrNotInteger = errors.New("numeric: value is not sufficiently close to an integer")

	// ErrNegativeFactorial indicates an integral but negative factorial argument.
	// Selection-rule screening is expected to make this unreachable.
	ErrNegativeFactorial = errors.New("numeric: factorial of a negative integer")
)
