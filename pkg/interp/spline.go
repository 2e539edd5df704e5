// Package interp fits grid-aligned cubic splines over tabulated data and
// evaluates them at arbitrary points.
package interp

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotAscending reports axis values that are not strictly increasing.
var ErrNotAscending = errors.New("interp: axis values not strictly ascending")

// Spline is a one-dimensional piecewise-cubic interpolant with natural
// boundary conditions (zero second derivative at the ends). The effective
// degree follows the node count: cubic for three or more nodes, linear for
// two, constant for one. Evaluation passes through every node; outside the
// node range the nearest boundary polynomial is extended, so extrapolation
// never fails.
type Spline struct {
	xs, ys []float64
	d2     []float64 // second derivatives at the nodes
}

// NewSpline fits a natural cubic spline through (xs[i], ys[i]). xs must be
// strictly ascending and the same length as ys.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: %d abscissae for %d ordinates", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, errors.New("interp: no nodes")
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%g after x[%d]=%g", ErrNotAscending, i, xs[i], i-1, xs[i-1])
		}
	}
	s := &Spline{xs: xs, ys: ys, d2: make([]float64, len(xs))}
	s.fit()
	return s, nil
}

// fit solves the tridiagonal system for the node second derivatives. With
// fewer than three nodes the derivatives stay zero and the evaluation
// formula degenerates to the lower degree on its own.
func (s *Spline) fit() {
	n := len(s.xs)
	if n < 3 {
		return
	}
	u := make([]float64, n-1)
	for i := 1; i < n-1; i++ {
		sig := (s.xs[i] - s.xs[i-1]) / (s.xs[i+1] - s.xs[i-1])
		p := sig*s.d2[i-1] + 2
		s.d2[i] = (sig - 1) / p
		du := (s.ys[i+1]-s.ys[i])/(s.xs[i+1]-s.xs[i]) - (s.ys[i]-s.ys[i-1])/(s.xs[i]-s.xs[i-1])
		u[i] = (6*du/(s.xs[i+1]-s.xs[i-1]) - sig*u[i-1]) / p
	}
	s.d2[n-1] = 0
	for k := n - 2; k >= 0; k-- {
		s.d2[k] = s.d2[k]*s.d2[k+1] + u[k]
	}
}

// At evaluates the spline at x.
func (s *Spline) At(x float64) float64 {
	n := len(s.xs)
	if n == 1 {
		return s.ys[0]
	}
	i := sort.SearchFloat64s(s.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	h := s.xs[i+1] - s.xs[i]
	a := (s.xs[i+1] - x) / h
	b := (x - s.xs[i]) / h
	return a*s.ys[i] + b*s.ys[i+1] +
		((a*a*a-a)*s.d2[i]+(b*b*b-b)*s.d2[i+1])*h*h/6
}
