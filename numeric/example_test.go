package numeric_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wigner/numeric"
)

// ExampleFactorial shows the exact factorial service and its integrality guard.
func ExampleFactorial() {
	f, err := numeric.Factorial(20, numeric.DefaultEpsilon)
	fmt.Println(f, err)

	_, err = numeric.Factorial(2.5, numeric.DefaultEpsilon)
	fmt.Println(errors.Is(err, numeric.ErrNotInteger))
	// Output:
	// 2432902008176640000 <nil>
	// true
}
