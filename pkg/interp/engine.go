package interp

import "fmt"

// Engine answers (pressure, temperature) queries against one property grid.
// It holds a natural cubic spline over the temperature axis for every
// pressure column, fitted once at construction; a query evaluates each
// column spline at the requested temperature and fits one more spline
// across the pressure axis through the results. Queries at grid nodes
// return the stored value, and queries beyond either axis extend the
// boundary polynomials.
//
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	pressure    []float64
	temperature []float64
	cols        []*Spline
}

// NewEngine builds the interpolant for data indexed [temperature row]
// [pressure column]. Both axes must be strictly ascending; the grid must be
// len(temperature) rows of len(pressure) values.
func NewEngine(pressure, temperature []float64, data [][]float64) (*Engine, error) {
	if len(data) != len(temperature) {
		return nil, fmt.Errorf("interp: %d grid rows for %d temperature nodes", len(data), len(temperature))
	}
	for j, row := range data {
		if len(row) != len(pressure) {
			return nil, fmt.Errorf("interp: grid row %d has %d values for %d pressure nodes", j, len(row), len(pressure))
		}
	}
	for i := 1; i < len(pressure); i++ {
		if pressure[i] <= pressure[i-1] {
			return nil, fmt.Errorf("%w: pressure axis", ErrNotAscending)
		}
	}

	e := &Engine{
		pressure:    pressure,
		temperature: temperature,
		cols:        make([]*Spline, len(pressure)),
	}
	col := make([]float64, len(temperature))
	for i := range pressure {
		for j := range temperature {
			col[j] = data[j][i]
		}
		s, err := NewSpline(temperature, append([]float64(nil), col...))
		if err != nil {
			return nil, fmt.Errorf("fitting pressure column %d: %w", i, err)
		}
		e.cols[i] = s
	}
	return e, nil
}

// At evaluates the interpolant at a single (pressure, temperature) point.
func (e *Engine) At(pressure, temperature float64) float64 {
	vals := make([]float64, len(e.cols))
	for i, c := range e.cols {
		vals[i] = c.At(temperature)
	}
	// axes were validated at construction, the row fit cannot fail
	row, _ := NewSpline(e.pressure, vals)
	return row.At(pressure)
}

// Grid evaluates the interpolant on the outer product of the query points,
// returning len(pressures) rows of len(temperatures) values each, the call
// shape of the originating simulator's table lookups.
func (e *Engine) Grid(pressures, temperatures []float64) [][]float64 {
	out := make([][]float64, len(pressures))
	for i := range out {
		out[i] = make([]float64, len(temperatures))
	}
	vals := make([]float64, len(e.cols))
	for j, t := range temperatures {
		for i, c := range e.cols {
			vals[i] = c.At(t)
		}
		row, _ := NewSpline(e.pressure, append([]float64(nil), vals...))
		for i, p := range pressures {
			out[i][j] = row.At(p)
		}
	}
	return out
}
