/*package io reads the configuration files and text tables used by the
interp2d command and writes its results.
*/
package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/interp2d/math/interpolate"
)

// ReadColumn reads the column with index col from the text table fname.
func ReadColumn(fname string, col int) ([]float64, error) {
	cols, err := table.ReadTable(fname, []int{col}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ReadQueries reads the query points in the first two columns of the text
// table fname.
func ReadQueries(fname string) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

// ReadGrid loads the grid lines and values described by con. con must have
// passed Check.
func (con *GridConfig) ReadGrid() (xs, ys, zs []float64, err error) {
	if con.ValidXFile() {
		if xs, err = ReadColumn(con.XFile, 0); err != nil {
			return nil, nil, nil, err
		}
	} else {
		xs = interpolate.Uniform(con.X0, con.DX, con.NX)
	}

	if con.ValidYFile() {
		if ys, err = ReadColumn(con.YFile, 0); err != nil {
			return nil, nil, nil, err
		}
	} else {
		ys = interpolate.Uniform(con.Y0, con.DY, con.NY)
	}

	if zs, err = ReadColumn(con.ZFile, 0); err != nil {
		return nil, nil, nil, err
	}

	if n := interpolate.GridLen(len(xs), len(ys)); len(zs) < n {
		return nil, nil, nil, fmt.Errorf(
			"ZFile '%s' has %d values, but a %d x %d grid needs %d.",
			con.ZFile, len(zs), len(xs), len(ys), n,
		)
	}

	return xs, ys, zs, nil
}
