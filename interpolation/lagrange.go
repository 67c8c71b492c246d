package interpolation

import (
	"errors"
	"fmt"
	"math"
)

// Lagrange polynomial construction and evaluation.
//
// Algorithm Outline:
//  1. Validate the node abscissae: non-empty, pairwise distinct.
//  2. Sample y_i = fn(x_i); every sample must be finite.
//  3. Precompute per-node weights w_i = 1 / Π_{k≠i} (x_i − x_k) from the
//     pairwise differences. One O(n²) pass; evaluation never touches a
//     pairwise difference again.
//  4. Evaluate via the first barycentric form:
//     L(x) = Π_k (x − x_k) · Σ_i y_i · w_i / (x − x_i)
//     which is O(n) per call, with an exact short-circuit when x hits a
//     node (no cancellation, node values reproduce bit-for-bit).
//
// Errors:
//   - ErrNilFunction    — Build called without a source function.
//   - ErrNoNodes        — empty abscissae set.
//   - ErrNonFiniteNode  — a node x-coordinate is NaN or ±Inf.
//   - ErrDuplicateNode  — two nodes share an x-coordinate.
//   - ErrUndefinedAtNode— source function non-finite at a node.
//   - ErrLengthMismatch — FromSamples given xs/ys of different lengths.
var (
	// ErrNilFunction indicates Build was invoked with a nil source function.
	ErrNilFunction = errors.New("interpolation: source function is nil")

	// ErrNoNodes indicates the node set is empty; at least one node is required.
	ErrNoNodes = errors.New("interpolation: at least one node required")

	// ErrNonFiniteNode indicates a node x-coordinate is NaN or ±Inf.
	// NaN defeats the duplicate scan (NaN != NaN) and an infinite node
	// poisons every weight, so neither yields a usable interpolant.
	ErrNonFiniteNode = errors.New("interpolation: node x-coordinate must be finite")

	// ErrDuplicateNode indicates two nodes share the same x-coordinate,
	// which zeroes a Lagrange basis denominator.
	ErrDuplicateNode = errors.New("interpolation: duplicate node x-coordinate")

	// ErrUndefinedAtNode indicates the source function returned NaN or
	// ±Inf at a required sample point.
	ErrUndefinedAtNode = errors.New("interpolation: function not finite at node")

	// ErrLengthMismatch indicates FromSamples received xs and ys slices
	// of different lengths.
	ErrLengthMismatch = errors.New("interpolation: xs and ys lengths differ")
)

// Polynomial is the unique degree-≤(n−1) polynomial through n nodes.
// It is immutable once built: the node tables and weights are written
// during construction and only read afterwards, so a Polynomial is safe
// for unlimited concurrent Evaluate calls.
type Polynomial struct {
	xs, ys []float64 // node coordinates, build order preserved
	w      []float64 // w[i] = 1 / Π_{k≠i} (xs[i] − xs[k])
}

// Builder assembles a Polynomial from a source function and a set of
// experimental abscissae, mirroring the construction protocol
// NewBuilder(f).ExperimentalData(xs...).Build().
type Builder struct {
	fn Function
	xs []float64
}

// NewBuilder starts a build around the given source function.
func NewBuilder(fn Function) *Builder {
	return &Builder{fn: fn}
}

// ExperimentalData sets the node abscissae the function will be sampled
// at. Later calls replace earlier ones. Returns the receiver for chaining.
func (b *Builder) ExperimentalData(xs ...float64) *Builder {
	b.xs = xs

	return b
}

// Build samples the source function at every abscissa and constructs
// the interpolant.
//
// Errors: ErrNilFunction, ErrNoNodes, ErrNonFiniteNode,
// ErrDuplicateNode, ErrUndefinedAtNode (the last three wrapped with
// the offending x).
// Complexity: O(n²) time, O(n) memory.
func (b *Builder) Build() (*Polynomial, error) {
	if b.fn == nil {
		return nil, ErrNilFunction
	}
	if len(b.xs) == 0 {
		return nil, ErrNoNodes
	}
	if err := validateAbscissae(b.xs); err != nil {
		return nil, err
	}

	xs := make([]float64, len(b.xs))
	copy(xs, b.xs)

	ys := make([]float64, len(xs))
	for i, x := range xs {
		y := b.fn(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("x=%g: %w", x, ErrUndefinedAtNode)
		}
		ys[i] = y
	}

	return newPolynomial(xs, ys)
}

// Interpolate is the one-shot form of the builder protocol.
func Interpolate(fn Function, xs []float64) (*Polynomial, error) {
	return NewBuilder(fn).ExperimentalData(xs...).Build()
}

// FromSamples constructs the interpolant directly from pre-sampled
// (xs[i], ys[i]) pairs, for collaborators that measured y elsewhere.
//
// Errors: ErrLengthMismatch, ErrNoNodes, ErrNonFiniteNode,
// ErrDuplicateNode, ErrUndefinedAtNode (non-finite ys entry).
// Complexity: O(n²) time, O(n) memory.
func FromSamples(xs, ys []float64) (*Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%d xs vs %d ys: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return nil, ErrNoNodes
	}
	if err := validateAbscissae(xs); err != nil {
		return nil, err
	}

	xsCopy := make([]float64, len(xs))
	copy(xsCopy, xs)
	ysCopy := make([]float64, len(ys))
	copy(ysCopy, ys)

	for i, y := range ysCopy {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("x=%g: %w", xsCopy[i], ErrUndefinedAtNode)
		}
	}

	return newPolynomial(xsCopy, ysCopy)
}

// validateAbscissae rejects NaN and ±Inf node x-coordinates before any
// node-table construction.
func validateAbscissae(xs []float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("x=%g: %w", x, ErrNonFiniteNode)
		}
	}

	return nil
}

// newPolynomial validates distinctness and precomputes the barycentric
// weights. Assumes finite abscissae. Takes ownership of xs and ys.
func newPolynomial(xs, ys []float64) (*Polynomial, error) {
	n := len(xs)

	// Exact-equality duplicate scan: a duplicate zeroes a denominator
	// below, so it is rejected here instead of surfacing as ±Inf later.
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			if xs[i] == xs[k] {
				return nil, fmt.Errorf("x=%g: %w", xs[i], ErrDuplicateNode)
			}
		}
	}

	w := make([]float64, n)
	for i := 0; i < n; i++ {
		den := 1.0
		for k := 0; k < n; k++ {
			if k != i {
				den *= xs[i] - xs[k]
			}
		}
		w[i] = 1 / den
	}

	return &Polynomial{xs: xs, ys: ys, w: w}, nil
}

// Evaluate returns L(x), the interpolant's value at x. Pure: same x,
// same result, no side effects.
//
// Node hits return the cached ordinate exactly; a NaN input propagates
// to a NaN result. Complexity: O(n), zero allocations.
func (p *Polynomial) Evaluate(x float64) float64 {
	// Degree-0 case: the constant polynomial through one node.
	if len(p.xs) == 1 {
		return p.ys[0]
	}

	// Exact node hit: short-circuit before any arithmetic.
	// (False for NaN input, which falls through and propagates.)
	for i, xi := range p.xs {
		if x == xi {
			return p.ys[i]
		}
	}

	// First barycentric form with the cached weights.
	num := 1.0
	var sum float64
	for i, xi := range p.xs {
		num *= x - xi
		sum += p.ys[i] * p.w[i] / (x - xi)
	}

	return num * sum
}

// Degree returns the polynomial's maximal degree, node count − 1.
func (p *Polynomial) Degree() int { return len(p.xs) - 1 }

// NodeCount returns the number of interpolation nodes.
func (p *Polynomial) NodeCount() int { return len(p.xs) }

// Nodes returns a copy of the (x, y) node pairs in build order.
func (p *Polynomial) Nodes() []Node {
	nodes := make([]Node, len(p.xs))
	for i := range p.xs {
		nodes[i] = Node{X: p.xs[i], Y: p.ys[i]}
	}

	return nodes
}
