package interpolate

import (
	"errors"
	"fmt"
)

var errSingular = errors.New("tridiagonal system is singular")

// splineDerivs writes the first derivative of the natural cubic spline
// through (xs, ys) at each point of xs into dys.
//
// xs must be strictly increasing. If it isn't, an error wrapping
// ErrInitFailure is returned.
func splineDerivs(xs, ys, dys []float64) error {
	n := len(xs)
	if len(ys) != n || len(dys) != n {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d and len(dys) = %d",
			n, len(ys), len(dys),
		))
	}

	for i := 0; i < n-1; i++ {
		if xs[i+1] <= xs[i] {
			return fmt.Errorf(
				"%w: coordinates not strictly increasing at index %d "+
					"(%g, %g)", ErrInitFailure, i, xs[i], xs[i+1],
			)
		}
	}

	// Second derivatives. The boundaries are zero for a natural spline.
	y2s := make([]float64, n)
	if n > 2 {
		as, bs := make([]float64, n-2), make([]float64, n-2)
		cs, rs := make([]float64, n-2), make([]float64, n-2)

		for i := range rs {
			// j indexes into xs and ys.
			j := i + 1

			as[i] = (xs[j] - xs[j-1]) / 6
			bs[i] = (xs[j+1] - xs[j-1]) / 3
			cs[i] = (xs[j+1] - xs[j]) / 6
			rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
				((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
		}

		if err := TriDiagAt(as, bs, cs, rs, y2s[1:n-1]); err != nil {
			return fmt.Errorf("%w: %s", ErrInitFailure, err.Error())
		}
	}

	for i := 0; i < n-1; i++ {
		h := xs[i+1] - xs[i]
		dys[i] = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
	}
	h := xs[n-1] - xs[n-2]
	dys[n-1] = (ys[n-1]-ys[n-2])/h + h*(y2s[n-2]+2*y2s[n-1])/6

	return nil
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..       |   | out0 |   | r0 |
// | a1 b1 c1 ..    |   | out1 |   | r1 |
// | ..             | * | ..   | = | .. |
// | ..       an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice. a0 and cn are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) error {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		return fmt.Errorf(
			"lengths of arguments to TriDiagAt are unequal: "+
				"%d, %d, %d, %d, %d",
			len(as), len(bs), len(cs), len(rs), len(out),
		)
	} else if len(as) == 0 {
		return nil
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		return errSingular
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return errSingular
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}

	return nil
}

// TriDiag is the same as TriDiagAt, but allocates its output.
func TriDiag(as, bs, cs, rs []float64) ([]float64, error) {
	us := make([]float64, len(as))
	if err := TriDiagAt(as, bs, cs, rs, us); err != nil {
		return nil, err
	}
	return us, nil
}
