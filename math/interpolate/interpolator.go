/*package interpolate implements two-dimensional interpolation over
rectangular, non-uniform grids with interchangeable algorithms.

An algorithm is described by a Type. An Interp2D binds a Type to a grid shape
and owns the algorithm's State. Grid data is owned by the caller and is passed
to every Init and Eval call; the z values are laid out as described by
Index2D.
*/
package interpolate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a grid is too small for an
	// algorithm or when grid slices do not match the allocated shape.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInitFailure is returned when an algorithm cannot precompute its
	// internal state from the supplied grid.
	ErrInitFailure = errors.New("initialization failed")
)

// Type describes an interpolation algorithm. Types are immutable and shared
// by every Interp2D which uses them; all mutable data lives in the State
// returned by Alloc.
type Type interface {
	// Name identifies the algorithm in diagnostics.
	Name() string
	// MinSize is the minimum number of grid points needed along each axis.
	MinSize() int
	// Alloc returns a fresh State for a grid with size z values.
	Alloc(size int) State
}

// State is the per-instance data of an algorithm.
type State interface {
	// Init precomputes whatever the algorithm needs from the full grid.
	Init(xs, ys, zs []float64, nx, ny int) error
	// Eval evaluates the interpolant at (x, y). xa and ya may be nil.
	Eval(
		xs, ys, zs []float64, nx, ny int,
		x, y float64, xa, ya *Accel,
	) (float64, error)
	// Free releases any memory held by the state.
	Free()
}

// Types lists every algorithm implemented by this package.
var Types = []Type{BiLinear, BiCubic}

// TypeFromName returns the algorithm in Types with the given name. Names are
// case insensitive.
func TypeFromName(name string) (Type, bool) {
	for _, t := range Types {
		if strings.EqualFold(t.Name(), name) {
			return t, true
		}
	}
	return nil, false
}

// TypeMinSize returns the minimum number of points along each axis needed by
// algorithms of type t.
func TypeMinSize(t Type) int { return t.MinSize() }

// Interp2D is an interpolation algorithm bound to a grid shape. It is created
// once per grid and reused for any number of evaluations.
type Interp2D struct {
	// Extents of the grid. These are set by Init.
	XMin, XMax, YMin, YMax float64

	typ    Type
	nx, ny int
	state  State
	inited bool
}

// NewInterp2D allocates an interpolator of type t for a grid with nx points
// along x and ny points along y.
func NewInterp2D(t Type, nx, ny int) (*Interp2D, error) {
	if nx < t.MinSize() || ny < t.MinSize() {
		return nil, fmt.Errorf(
			"%w: %s interpolation needs at least %d points along each "+
				"axis, but nx = %d and ny = %d",
			ErrInvalidArgument, t.Name(), t.MinSize(), nx, ny,
		)
	}

	in := &Interp2D{typ: t, nx: nx, ny: ny}
	in.state = t.Alloc(GridLen(nx, ny))
	return in, nil
}

// Init binds the interpolator to the grid with coordinates xs and ys and
// values zs. xs and ys must be strictly increasing; this is not checked by
// every algorithm.
//
// Init does not copy the slices, and the same slices should be passed to
// every later call to Eval.
func (in *Interp2D) Init(xs, ys, zs []float64) error {
	if in.state == nil {
		panic("Interp2D.Init called after Free.")
	}

	if len(xs) != in.nx || len(ys) != in.ny {
		return fmt.Errorf(
			"%w: interpolator allocated for a %d x %d grid, but "+
				"len(xs) = %d and len(ys) = %d",
			ErrInvalidArgument, in.nx, in.ny, len(xs), len(ys),
		)
	} else if n := GridLen(in.nx, in.ny); len(zs) < n {
		return fmt.Errorf(
			"%w: a %d x %d grid needs %d z values, but len(zs) = %d",
			ErrInvalidArgument, in.nx, in.ny, n, len(zs),
		)
	}

	in.XMin, in.XMax = xs[0], xs[in.nx-1]
	in.YMin, in.YMax = ys[0], ys[in.ny-1]

	in.inited = false
	if err := in.state.Init(xs, ys, zs, in.nx, in.ny); err != nil {
		return fmt.Errorf("%s: %w", in.typ.Name(), err)
	}
	in.inited = true

	return nil
}

// EvalErr evaluates the interpolator at (x, y) using the same grid passed to
// Init. xa and ya are optional accelerators for the x and y axes. Points
// outside the grid are extrapolated from the nearest boundary cell.
//
// EvalErr panics if called before Init or after Free.
func (in *Interp2D) EvalErr(
	xs, ys, zs []float64, x, y float64, xa, ya *Accel,
) (float64, error) {
	if !in.inited {
		panic(fmt.Sprintf(
			"%s Interp2D evaluated before a successful Init.", in.typ.Name(),
		))
	}
	return in.state.Eval(xs, ys, zs, in.nx, in.ny, x, y, xa, ya)
}

// Eval is identical to EvalErr, except that it panics if the algorithm
// reports an error.
func (in *Interp2D) Eval(
	xs, ys, zs []float64, x, y float64, xa, ya *Accel,
) float64 {
	z, err := in.EvalErr(xs, ys, zs, x, y, xa, ya)
	if err != nil {
		panic(err.Error())
	}
	return z
}

// Free releases the interpolator's state. The interpolator cannot be used
// afterwards.
func (in *Interp2D) Free() {
	if in.state != nil {
		in.state.Free()
	}
	in.state = nil
	in.inited = false
}

// MinSize returns the minimum number of points along each axis needed by
// the interpolator's algorithm.
func (in *Interp2D) MinSize() int { return in.typ.MinSize() }

// Name returns the name of the interpolator's algorithm.
func (in *Interp2D) Name() string { return in.typ.Name() }

// Size returns the grid shape the interpolator was allocated for.
func (in *Interp2D) Size() (nx, ny int) { return in.nx, in.ny }

func (in *Interp2D) String() string {
	return fmt.Sprintf(
		"Interp2D{%s, %d x %d, x: [%g, %g], y: [%g, %g]}",
		in.typ.Name(), in.nx, in.ny, in.XMin, in.XMax, in.YMin, in.YMax,
	)
}
