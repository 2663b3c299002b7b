package interpolate

// Index2D returns the offset of the grid point (xi, yi) in a flattened z
// array. The layout is vals(xi, yi) -> vals[xi*nx + yi].
//
// ny is unused, but is part of the signature so callers spell out the full
// grid shape.
func Index2D(xi, yi, nx, ny int) int {
	return xi*nx + yi
}

// GridLen returns the number of z values addressed by an nx x ny grid under
// Index2D. This is nx*ny for square grids.
func GridLen(nx, ny int) int {
	return Index2D(nx-1, ny-1, nx, ny) + 1
}
