package interpolate

////////////////////////////
// BiCubic Implementation //
////////////////////////////

// BiCubic is bi-cubic interpolation. At Init it estimates the partial
// derivatives z_x, z_y, and z_xy at every grid point with natural cubic
// splines and evaluates a cubic Hermite patch over each cell. It needs at
// least four points along each axis.
//
// After Init the state is only read, so one initialized BiCubic Interp2D may
// be evaluated from several goroutines as long as each uses its own Accels.
var BiCubic Type = biCubicType{}

type biCubicType struct{}

func (biCubicType) Name() string { return "bicubic" }
func (biCubicType) MinSize() int { return 4 }

func (biCubicType) Alloc(size int) State {
	return &biCubicState{
		zx:  make([]float64, size),
		zy:  make([]float64, size),
		zxy: make([]float64, size),
	}
}

type biCubicState struct {
	zx, zy, zxy []float64
}

func (bi *biCubicState) Init(xs, ys, zs []float64, nx, ny int) error {
	n := nx
	if ny > n {
		n = ny
	}
	in, out := make([]float64, n), make([]float64, n)
	xIn, xOut := in[:nx], out[:nx]
	yIn, yOut := in[:ny], out[:ny]

	// z_x along each line of constant y.
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			xIn[ix] = zs[Index2D(ix, iy, nx, ny)]
		}
		if err := splineDerivs(xs, xIn, xOut); err != nil {
			return err
		}
		for ix := 0; ix < nx; ix++ {
			bi.zx[Index2D(ix, iy, nx, ny)] = xOut[ix]
		}
	}

	// z_y along each line of constant x.
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			yIn[iy] = zs[Index2D(ix, iy, nx, ny)]
		}
		if err := splineDerivs(ys, yIn, yOut); err != nil {
			return err
		}
		for iy := 0; iy < ny; iy++ {
			bi.zy[Index2D(ix, iy, nx, ny)] = yOut[iy]
		}
	}

	// z_xy is the x derivative of z_y.
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			xIn[ix] = bi.zy[Index2D(ix, iy, nx, ny)]
		}
		if err := splineDerivs(xs, xIn, xOut); err != nil {
			return err
		}
		for ix := 0; ix < nx; ix++ {
			bi.zxy[Index2D(ix, iy, nx, ny)] = xOut[ix]
		}
	}

	return nil
}

func (bi *biCubicState) Free() {
	bi.zx, bi.zy, bi.zxy = nil, nil, nil
}

func (bi *biCubicState) Eval(
	xs, ys, zs []float64, nx, ny int,
	x, y float64, xa, ya *Accel,
) (float64, error) {
	ix := find(xa, xs, x)
	iy := find(ya, ys, y)

	dx, dy := xs[ix+1]-xs[ix], ys[iy+1]-ys[iy]
	t, u := (x-xs[ix])/dx, (y-ys[iy])/dy

	// Hermite basis functions: h[0] and h[1] weight the values at the low
	// and high ends of the cell, g[0] and g[1] weight the slopes.
	ht := [2]float64{(1 + 2*t) * (1 - t) * (1 - t), t * t * (3 - 2*t)}
	gt := [2]float64{t * (1 - t) * (1 - t), t * t * (t - 1)}
	hu := [2]float64{(1 + 2*u) * (1 - u) * (1 - u), u * u * (3 - 2*u)}
	gu := [2]float64{u * (1 - u) * (1 - u), u * u * (u - 1)}

	sum := 0.0
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			i := Index2D(ix+a, iy+b, nx, ny)
			sum += ht[a]*hu[b]*zs[i] +
				dx*gt[a]*hu[b]*bi.zx[i] +
				dy*ht[a]*gu[b]*bi.zy[i] +
				dx*dy*gt[a]*gu[b]*bi.zxy[i]
		}
	}

	return sum, nil
}
