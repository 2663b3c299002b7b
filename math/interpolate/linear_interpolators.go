package interpolate

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is bi-linear interpolation. It needs at least two points along
// each axis and keeps no state between calls.
var BiLinear Type = biLinearType{}

type biLinearType struct{}

func (biLinearType) Name() string         { return "bilinear" }
func (biLinearType) MinSize() int         { return 2 }
func (biLinearType) Alloc(size int) State { return biLinearState{} }

type biLinearState struct{}

func (biLinearState) Init(xs, ys, zs []float64, nx, ny int) error { return nil }

func (biLinearState) Free() {}

// Eval blends the four corners of the cell containing (x, y). Cells with
// zero width give undefined results.
func (biLinearState) Eval(
	xs, ys, zs []float64, nx, ny int,
	x, y float64, xa, ya *Accel,
) (float64, error) {
	ix := find(xa, xs, x)
	iy := find(ya, ys, y)

	x1, x2 := xs[ix], xs[ix+1]
	y1, y2 := ys[iy], ys[iy+1]

	v11 := zs[Index2D(ix, iy, nx, ny)]
	v12 := zs[Index2D(ix, iy+1, nx, ny)]
	v21 := zs[Index2D(ix+1, iy, nx, ny)]
	v22 := zs[Index2D(ix+1, iy+1, nx, ny)]

	t := (x - x1) / (x2 - x1)
	u := (y - y1) / (y2 - y1)

	return (1-t)*(1-u)*v11 + t*(1-u)*v21 + (1-t)*u*v12 + t*u*v22, nil
}
