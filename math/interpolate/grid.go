package interpolate

import (
	"fmt"
)

// BiInterpolator is a 2D interpolator bound to its data. These interpolators
// use caching, so they are not thread safe.
type BiInterpolator interface {
	// Eval evaluates the interpolator at a point.
	Eval(x, y float64) float64
	// EvalAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys []float64, out ...[]float64) []float64
	// Ref creates a shallow copy of the interpolator with its own cache.
	// Each goroutine using the same interpolator must make a copy with Ref
	// first.
	Ref() BiInterpolator
}

var _ BiInterpolator = &Grid{}

// Grid is an initialized Interp2D together with the grid it was initialized
// with and a pair of accelerators.
type Grid struct {
	xs, ys, zs []float64
	interp     *Interp2D
	xa, ya     *Accel
}

// NewGrid creates an interpolator of type t over the grid with coordinates
// xs and ys and values zs, where vals(ix, iy) -> zs[Index2D(ix, iy, nx, ny)].
// The slices are not copied and must not be modified while the Grid is in
// use.
func NewGrid(t Type, xs, ys, zs []float64) (*Grid, error) {
	interp, err := NewInterp2D(t, len(xs), len(ys))
	if err != nil {
		return nil, err
	}
	if err = interp.Init(xs, ys, zs); err != nil {
		return nil, err
	}

	return &Grid{
		xs: xs, ys: ys, zs: zs, interp: interp,
		xa: NewAccel(), ya: NewAccel(),
	}, nil
}

// NewUniformGrid creates an interpolator of type t on top of a uniform grid.
// The x and y grid lines start at x0 and y0 and increase with steps of dx
// and dy, respectively.
func NewUniformGrid(
	t Type,
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	zs []float64,
) (*Grid, error) {
	return NewGrid(t, Uniform(x0, dx, nx), Uniform(y0, dy, ny), zs)
}

// Eval evaluates the interpolator at (x, y).
func (g *Grid) Eval(x, y float64) float64 {
	return g.interp.Eval(g.xs, g.ys, g.zs, x, y, g.xa, g.ya)
}

// EvalAll evaluates the interpolator at all the given (x, y) values. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (g *Grid) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		))
	}
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		out[0][i] = g.Eval(xs[i], ys[i])
	}
	return out[0]
}

// Ref returns a copy of g which shares its data and Interp2D but has its own
// accelerators.
func (g *Grid) Ref() BiInterpolator {
	ref := *g
	ref.xa, ref.ya = NewAccel(), NewAccel()
	return &ref
}

// Interp returns the underlying Interp2D.
func (g *Grid) Interp() *Interp2D { return g.interp }

// Accels returns the x and y accelerators used by Eval.
func (g *Grid) Accels() (xa, ya *Accel) { return g.xa, g.ya }

// Uniform returns n grid lines starting at x0 and separated by dx.
func Uniform(x0, dx float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return xs
}

// Linspace returns n evenly spaced values from lo to hi, inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return Uniform(lo, 0, n)
	}
	xs := Uniform(lo, (hi-lo)/float64(n-1), n)
	xs[n-1] = hi
	return xs
}
