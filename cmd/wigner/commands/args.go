package commands

import (
	"fmt"
	"math/big"
)

// parseQuantum accepts "2", "2.5", "-1/2" or "5/2".
func parseQuantum(s string) (float64, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("invalid quantum number %q", s)
	}
	f, _ := r.Float64()

	return f, nil
}

func parseQuantums(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := parseQuantum(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
