package interpolation

import "math"

// Sampling helpers producing the (x, y) pair stream that display and
// reporting collaborators consume. Points where the function is not
// finite are skipped, never reported as errors: a partial function
// simply contributes fewer pairs.

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n <= 0 yields nil; n == 1 yields [lo]. The values are computed as
// lo + i·step so the spacing is exact in the presence of rounding.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	step := (hi - lo) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	// Land on hi exactly rather than on accumulated rounding.
	xs[n-1] = hi

	return xs
}

// Sample evaluates fn at every abscissa and returns the finite (x, y)
// pairs, preserving order. Abscissae where fn yields NaN or ±Inf are
// skipped. A nil fn yields nil.
func Sample(fn Function, xs []float64) []Node {
	if fn == nil {
		return nil
	}

	nodes := make([]Node, 0, len(xs))
	for _, x := range xs {
		y := fn(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		nodes = append(nodes, Node{X: x, Y: y})
	}

	return nodes
}
