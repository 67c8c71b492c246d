package interpolation_test

import (
	"math"
	"sync"
	"testing"

	"github.com/avdeitch/cmath/interpolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_ConcurrentReads hammers a built polynomial from many
// goroutines; the tables are written once at build time, so every
// reader must observe identical results (run with -race).
func TestEvaluate_ConcurrentReads(t *testing.T) {
	poly, err := interpolation.Interpolate(math.Sin, interpolation.Linspace(0, 3, 12))
	require.NoError(t, err)

	want := poly.Evaluate(1.234)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if got := poly.Evaluate(1.234); got != want {
					t.Errorf("concurrent Evaluate diverged: %g != %g", got, want)

					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, want, poly.Evaluate(1.234), "value stable after concurrent load")
}
