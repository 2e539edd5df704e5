package interp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func planeGrid(ps, ts []float64, f func(p, t float64) float64) [][]float64 {
	data := make([][]float64, len(ts))
	for j, t := range ts {
		data[j] = make([]float64, len(ps))
		for i, p := range ps {
			data[j][i] = f(p, t)
		}
	}
	return data
}

func TestEngineNodeExactness(tst *testing.T) {

	chk.PrintTitle("engine01. grid nodes return the stored values")

	ps := []float64{1e5, 5e5, 1e6, 5e6}
	ts := []float64{260, 300, 340, 380, 420}
	data := planeGrid(ps, ts, func(p, t float64) float64 {
		return math.Sin(p/1e6) * math.Exp(-t/400)
	})

	e, err := NewEngine(ps, ts, data)
	if err != nil {
		tst.Fatalf("NewEngine: %v", err)
	}
	for j, t := range ts {
		for i, p := range ps {
			chk.Float64(tst, io.Sf("node (%d,%d)", j, i), 1e-12, e.At(p, t), data[j][i])
		}
	}
}

func TestEngineReproducesPlane(tst *testing.T) {

	chk.PrintTitle("engine02. bicubic fit is exact on a bilinear plane")

	ps := []float64{0, 1, 2, 3, 4}
	ts := []float64{0, 2, 4, 6}
	data := planeGrid(ps, ts, func(p, t float64) float64 { return 2*p + 3*t - 1 })

	e, err := NewEngine(ps, ts, data)
	if err != nil {
		tst.Fatalf("NewEngine: %v", err)
	}

	// interior, node-aligned and extrapolated points all sit on the plane
	pts := [][2]float64{
		{0.5, 1}, {2.25, 3.3}, {4, 6}, {0, 0},
		{-1, 2}, {5, 7}, {2, -3}, {1.5, 10},
	}
	for _, q := range pts {
		want := 2*q[0] + 3*q[1] - 1
		chk.Float64(tst, io.Sf("plane at (%g,%g)", q[0], q[1]), 1e-9, e.At(q[0], q[1]), want)
	}
}

func TestEngineGridQuery(tst *testing.T) {

	chk.PrintTitle("engine03. outer-product evaluation matches point queries")

	ps := []float64{1, 2, 4, 8}
	ts := []float64{10, 20, 30, 40}
	data := planeGrid(ps, ts, func(p, t float64) float64 { return p*p + t })

	e, err := NewEngine(ps, ts, data)
	if err != nil {
		tst.Fatalf("NewEngine: %v", err)
	}

	qp := []float64{1.5, 3, 6}
	qt := []float64{12, 35}
	out := e.Grid(qp, qt)
	chk.Int(tst, "rows", len(out), len(qp))
	chk.Int(tst, "cols", len(out[0]), len(qt))
	for i, p := range qp {
		for j, t := range qt {
			chk.Float64(tst, "grid vs point", 1e-12, out[i][j], e.At(p, t))
		}
	}
}

func TestEngineShortAxes(tst *testing.T) {

	chk.PrintTitle("engine04. degrades per axis below cubic node counts")

	// 2 pressure nodes (linear), 3 temperature nodes (cubic)
	ps := []float64{1, 3}
	ts := []float64{0, 1, 2}
	data := planeGrid(ps, ts, func(p, t float64) float64 { return 10*p + t })

	e, err := NewEngine(ps, ts, data)
	if err != nil {
		tst.Fatalf("NewEngine: %v", err)
	}
	chk.Float64(tst, "linear in p", 1e-10, e.At(2, 1), 21)

	// single node in each direction: constant surface
	one, err := NewEngine([]float64{5}, []float64{7}, [][]float64{{42}})
	if err != nil {
		tst.Fatalf("NewEngine(1x1): %v", err)
	}
	chk.Float64(tst, "constant surface", 1e-15, one.At(0, 0), 42)
	chk.Float64(tst, "constant surface", 1e-15, one.At(100, -100), 42)
}

func TestEngineBadInput(tst *testing.T) {

	chk.PrintTitle("engine05. dimension and axis validation")

	if _, err := NewEngine([]float64{1, 2}, []float64{1, 2}, [][]float64{{1, 2}}); err == nil {
		tst.Errorf("want error for row count mismatch")
	}
	if _, err := NewEngine([]float64{1, 2}, []float64{1}, [][]float64{{1, 2, 3}}); err == nil {
		tst.Errorf("want error for column count mismatch")
	}
	if _, err := NewEngine([]float64{2, 1}, []float64{1}, [][]float64{{1, 2}}); err == nil {
		tst.Errorf("want error for descending pressure axis")
	}
	if _, err := NewEngine([]float64{1, 2}, []float64{3, 3}, [][]float64{{1, 2}, {3, 4}}); err == nil {
		tst.Errorf("want error for duplicate temperature node")
	}
}
