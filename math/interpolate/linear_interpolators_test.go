package interpolate

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-10

var (
	gridCoords = []float64{0, 1, 2, 3}

	// z = 1 + (x + y)/10
	symmetricZs = []float64{
		1.0, 1.1, 1.2, 1.3,
		1.1, 1.2, 1.3, 1.4,
		1.2, 1.3, 1.4, 1.5,
		1.3, 1.4, 1.5, 1.6,
	}

	asymmetricZs = []float64{
		1.0, 1.3, 1.5, 1.6,
		1.1, 1.4, 1.6, 1.9,
		1.2, 1.5, 1.7, 2.2,
		1.4, 1.7, 1.9, 2.3,
	}
)

type evalCase struct {
	x, y, z float64
}

func newInterp(t *testing.T, typ Type, xs, ys, zs []float64) *Interp2D {
	interp, err := NewInterp2D(typ, len(xs), len(ys))
	require.NoError(t, err)
	require.NoError(t, interp.Init(xs, ys, zs))
	return interp
}

func TestBiLinearSymmetric(t *testing.T) {
	cases := []evalCase{
		{0.0, 0.0, 1.0},
		{0.5, 0.5, 1.1},
		{1.0, 1.0, 1.2},
		{1.5, 1.5, 1.3},
		{2.5, 2.5, 1.5},
		{3.0, 3.0, 1.6},
	}

	interp := newInterp(t, BiLinear, gridCoords, gridCoords, symmetricZs)
	xa, ya := NewAccel(), NewAccel()
	for i, c := range cases {
		z := interp.Eval(gridCoords, gridCoords, symmetricZs, c.x, c.y, xa, ya)
		assert.InDelta(t, c.z, z, eps, "%d) (%g, %g)", i, c.x, c.y)

		z = interp.Eval(gridCoords, gridCoords, symmetricZs, c.x, c.y, nil, nil)
		assert.InDelta(t, c.z, z, eps, "%d) (%g, %g) unaccelerated", i, c.x, c.y)
	}
}

func TestBiLinearAsymmetric(t *testing.T) {
	// Reference values from an independent bilinear implementation.
	cases := []evalCase{
		{0.0, 0.0, 1.0},
		{0.5, 0.5, 1.2},
		{1.0, 1.0, 1.4},
		{1.5, 1.5, 1.55},
		{2.5, 2.5, 2.025},
		{3.0, 3.0, 2.3},
		{1.3954, 0.265371, 1.2191513},
		{1.6476, 2.13849, 1.7242442248},
		{0.824957, 1.62114, 1.5067237},
		{2.41108, 1.22198, 1.626612},
		{2.98619, 0.724681, 1.6146423},
		{1.36485, 0.0596087, 1.15436761},
	}

	interp := newInterp(t, BiLinear, gridCoords, gridCoords, asymmetricZs)
	xa, ya := NewAccel(), NewAccel()
	for i, c := range cases {
		z := interp.Eval(gridCoords, gridCoords, asymmetricZs, c.x, c.y, xa, ya)
		assert.InDelta(t, c.z, z, eps, "%d) (%g, %g)", i, c.x, c.y)
	}
}

func TestBiLinearNodes(t *testing.T) {
	xs := []float64{-2, 0.5, 0.75, 4}
	ys := []float64{0, 0.1, 3, 3.5}
	interp := newInterp(t, BiLinear, xs, ys, asymmetricZs)

	for ix := range xs {
		for iy := range ys {
			z := interp.Eval(xs, ys, asymmetricZs, xs[ix], ys[iy], nil, nil)
			want := asymmetricZs[Index2D(ix, iy, len(xs), len(ys))]
			assert.InDelta(t, want, z, eps, "node (%d, %d)", ix, iy)
		}
	}
}

func TestBiLinearBounded(t *testing.T) {
	rand.Seed(0)
	n := len(gridCoords)
	interp := newInterp(t, BiLinear, gridCoords, gridCoords, asymmetricZs)

	for i := 0; i < 1000; i++ {
		x, y := 3*rand.Float64(), 3*rand.Float64()
		ix, iy := int(x), int(y)

		lo, hi := math.Inf(+1), math.Inf(-1)
		for _, j := range []int{
			Index2D(ix, iy, n, n), Index2D(ix+1, iy, n, n),
			Index2D(ix, iy+1, n, n), Index2D(ix+1, iy+1, n, n),
		} {
			lo, hi = math.Min(lo, asymmetricZs[j]), math.Max(hi, asymmetricZs[j])
		}

		z := interp.Eval(gridCoords, gridCoords, asymmetricZs, x, y, nil, nil)
		assert.True(t, z >= lo-eps && z <= hi+eps,
			"(%g, %g) -> %g outside [%g, %g]", x, y, z, lo, hi)
	}
}

func TestBiLinearSymmetry(t *testing.T) {
	rand.Seed(1)
	interp := newInterp(t, BiLinear, gridCoords, gridCoords, symmetricZs)

	for i := 0; i < 100; i++ {
		x, y := 3*rand.Float64(), 3*rand.Float64()
		z1 := interp.Eval(gridCoords, gridCoords, symmetricZs, x, y, nil, nil)
		z2 := interp.Eval(gridCoords, gridCoords, symmetricZs, y, x, nil, nil)
		assert.InDelta(t, z1, z2, eps, "(%g, %g)", x, y)
	}
}

func TestBiLinearAccelEquivalence(t *testing.T) {
	for _, typ := range []Type{BiLinear, BiCubic} {
		accelEquivalence(t, typ)
	}
}

func accelEquivalence(t *testing.T, typ Type) {
	xs := []float64{0, 0.2, 0.5, 1.1, 1.3, 2, 2.8, 3}
	ys := []float64{-1, -0.5, 0, 0.25, 0.5, 1, 1.5, 4}
	n := len(xs)
	zs := make([]float64, GridLen(n, n))
	for i := range zs {
		zs[i] = math.Sin(float64(i))
	}

	interp := newInterp(t, typ, xs, ys, zs)
	xa, ya := NewAccel(), NewAccel()

	// A slowly increasing sweep followed by random jumps, some of which
	// leave the grid.
	qxs, qys := Linspace(0, 3, 200), Linspace(-1, 4, 200)
	rand.Seed(2)
	for i := 0; i < 200; i++ {
		qxs = append(qxs, 4*rand.Float64()-0.5)
		qys = append(qys, 6*rand.Float64()-1.5)
	}

	for i := range qxs {
		z1 := interp.Eval(xs, ys, zs, qxs[i], qys[i], xa, ya)
		z2 := interp.Eval(xs, ys, zs, qxs[i], qys[i], nil, nil)
		assert.InDelta(t, z2, z1, eps, "%s (%g, %g)", typ.Name(), qxs[i], qys[i])
	}

	assert.True(t, xa.Hits() > 0, typ.Name())
	assert.True(t, ya.Hits() > 0, typ.Name())
}

func TestBiLinearExtrapolation(t *testing.T) {
	interp := newInterp(t, BiLinear, gridCoords, gridCoords, symmetricZs)

	cases := []evalCase{
		{-1, 0, 0.9},
		{0, -1, 0.9},
		{4, 4, 1.8},
		{-0.5, 3.5, 1.3},
	}
	xa, ya := NewAccel(), NewAccel()
	for i, c := range cases {
		z := interp.Eval(gridCoords, gridCoords, symmetricZs, c.x, c.y, xa, ya)
		assert.InDelta(t, c.z, z, eps, "%d) (%g, %g)", i, c.x, c.y)
	}
}

func TestBiLinearMinSize(t *testing.T) {
	assert.Equal(t, 2, TypeMinSize(BiLinear))

	for _, size := range [][2]int{{1, 4}, {4, 1}, {0, 0}, {1, 1}} {
		interp, err := NewInterp2D(BiLinear, size[0], size[1])
		assert.Nil(t, interp)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "%v: %v", size, err)
	}

	_, err := NewInterp2D(BiLinear, 2, 2)
	assert.NoError(t, err)
}

func BenchmarkBiLinearAccel(b *testing.B) {
	benchmarkBiLinear(b, true)
}

func BenchmarkBiLinearNoAccel(b *testing.B) {
	benchmarkBiLinear(b, false)
}

func benchmarkBiLinear(b *testing.B, accel bool) {
	n := 256
	xs := Uniform(0, 1, n)
	zs := make([]float64, GridLen(n, n))
	interp, _ := NewInterp2D(BiLinear, n, n)
	if err := interp.Init(xs, xs, zs); err != nil {
		b.Fatal(err.Error())
	}

	var xa, ya *Accel
	if accel {
		xa, ya = NewAccel(), NewAccel()
	}
	qs := Linspace(0, float64(n-1), 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := qs[i%len(qs)]
		interp.Eval(xs, xs, zs, q, q, xa, ya)
	}
}
