package threej_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/wigner/racah"
	"github.com/katalvlaran/wigner/threej"
	"github.com/stretchr/testify/assert"
)

// TestConcurrentCalculate runs many evaluations in parallel and compares
// each against its sequential result.
func TestConcurrentCalculate(t *testing.T) {
	reqs := []threej.Request{
		{J1: 2, J2: 2, J3: 2},
		{J1: 6, J2: 4, J3: 2},
		{J1: 2.5, J2: 1.5, J3: 1, M1: 1.5, M2: -0.5, M3: -1},
		{J1: 20, J2: 15, J3: 10, M1: 3, M2: -5, M3: 2},
	}
	want := make([]float64, len(reqs))
	for i, r := range reqs {
		want[i], _ = r.Evaluate()
	}

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			i := id % len(reqs)
			m := racah.Exact
			if id%2 == 1 {
				m = racah.LogGamma
			}
			got, err := reqs[i].Evaluate(racah.WithMethod(m))
			assert.NoError(t, err)
			assert.InDelta(t, want[i], got, 1e-12)
		}(w)
	}
	wg.Wait()
}
