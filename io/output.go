package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteEvals writes "x y z" lines for each evaluated point to the file
// fname, or to stdout if fname is empty.
func WriteEvals(fname string, xs, ys, zs []float64) error {
	if fname == "" {
		return writeEvals(os.Stdout, xs, ys, zs)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err = writeEvals(f, xs, ys, zs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeEvals(w io.Writer, xs, ys, zs []float64) error {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		panic(fmt.Sprintf(
			"len(xs) = %d, len(ys) = %d, but len(zs) = %d",
			len(xs), len(ys), len(zs),
		))
	}

	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, "# x y z")
	for i := range xs {
		fmt.Fprintf(buf, "%.10g %.10g %.10g\n", xs[i], ys[i], zs[i])
	}
	return buf.Flush()
}
