package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/interp2d/math/interpolate"
)

const (
	ExampleGridSection = `[Grid]

#######################
# Required Parameters #
#######################

# The interpolation algorithm. Can be set to one of:
# [ bilinear | bicubic ]
Algorithm = bilinear

# Text table containing the z values of the grid, one per line. The value of
# grid point (ix, iy) is on line ix*NX + iy.
ZFile = path/to/z.txt

# The grid lines are either read from single-column tables:
XFile = path/to/x.txt
YFile = path/to/y.txt

# or are uniformly spaced, starting at X0 and Y0 with NX and NY lines
# separated by DX and DY. Only one of the two methods can be used per axis.
# X0 = 0
# DX = 0.5
# NX = 10
# Y0 = 0
# DY = 0.5
# NY = 10`

	ExampleEvalFile = ExampleGridSection + `

[Eval]

#######################
# Required Parameters #
#######################

# Text table with the x coordinates of query points in the first column and
# the y coordinates in the second column.
QueryFile = path/to/queries.txt

#######################
# Optional Parameters #
#######################

# File that "x y z" lines are written to. Defaults to stdout.
# Output = path/to/output.txt

# Whether to cache grid lookups between queries. This is faster when queries
# are sorted, and gives identical results either way. Default is true.
# UseAccel = true

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

	ExamplePlotFile = ExampleGridSection + `

[Plot]

#######################
# Required Parameters #
#######################

# Image file the plot is saved to.
Output = path/to/plot.png

#######################
# Optional Parameters #
#######################

# Number of lines of constant y to plot, evenly spaced across the grid, and
# the number of points along each of them. Defaults are 5 and 100.
# Slices = 5
# Points = 100

# Title = My Grid

# ProfileFile = prof.out
# LogFile = log.out`
)

// GridConfig describes where the grid comes from and how to interpolate it.
type GridConfig struct {
	// Required
	Algorithm string
	ZFile     string

	// One of these per axis.
	XFile, YFile string
	X0, DX       float64
	Y0, DY       float64
	NX, NY       int
}

func (con *GridConfig) ValidAlgorithm() bool {
	_, ok := interpolate.TypeFromName(con.Algorithm)
	return ok
}
func (con *GridConfig) ValidZFile() bool {
	return con.ZFile != ""
}
func (con *GridConfig) ValidXFile() bool {
	return con.XFile != ""
}
func (con *GridConfig) ValidYFile() bool {
	return con.YFile != ""
}
func (con *GridConfig) ValidUniformX() bool {
	return con.NX > 0 && con.DX > 0
}
func (con *GridConfig) ValidUniformY() bool {
	return con.NY > 0 && con.DY > 0
}

// Type returns the interpolation algorithm named by Algorithm.
func (con *GridConfig) Type() interpolate.Type {
	t, ok := interpolate.TypeFromName(con.Algorithm)
	if !ok {
		panic(fmt.Sprintf("Unknown algorithm '%s'.", con.Algorithm))
	}
	return t
}

// Check returns a descriptive error if the [Grid] section cannot be used.
func (con *GridConfig) Check() error {
	if !con.ValidAlgorithm() {
		names := []string{}
		for _, t := range interpolate.Types {
			names = append(names, t.Name())
		}
		return fmt.Errorf(
			"Invalid/non-existent 'Algorithm' value, '%s'. The only "+
				"accepted algorithms are: %s.",
			con.Algorithm, strings.Join(names, ", "),
		)
	} else if !con.ValidZFile() {
		return fmt.Errorf("Invalid/non-existent 'ZFile' value.")
	}

	if con.ValidXFile() == con.ValidUniformX() {
		return fmt.Errorf(
			"You must set either 'XFile' or a valid 'NX' and 'DX', " +
				"but not both.",
		)
	} else if con.ValidYFile() == con.ValidUniformY() {
		return fmt.Errorf(
			"You must set either 'YFile' or a valid 'NY' and 'DY', " +
				"but not both.",
		)
	}

	return nil
}

// SharedConfig holds the parameters used by every mode.
type SharedConfig struct {
	Output               string
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type EvalConfig struct {
	SharedConfig

	// Required
	QueryFile string

	// Optional
	UseAccel bool
}

func (con *EvalConfig) ValidQueryFile() bool {
	return con.QueryFile != ""
}

type EvalWrapper struct {
	Grid GridConfig
	Eval EvalConfig
}

func DefaultEvalWrapper() *EvalWrapper {
	wrap := &EvalWrapper{}
	wrap.Eval.UseAccel = true
	return wrap
}

type PlotConfig struct {
	SharedConfig

	// Optional
	Slices, Points int
	Title          string
}

func (con *PlotConfig) ValidSlices() bool {
	return con.Slices > 0
}
func (con *PlotConfig) ValidPoints() bool {
	return con.Points > 1
}

type PlotWrapper struct {
	Grid GridConfig
	Plot PlotConfig
}

func DefaultPlotWrapper() *PlotWrapper {
	wrap := &PlotWrapper{}
	wrap.Plot.Slices = 5
	wrap.Plot.Points = 100
	return wrap
}

// ReadEvalConfig reads and checks an [Eval] mode configuration file.
func ReadEvalConfig(fname string) (*EvalWrapper, error) {
	wrap := DefaultEvalWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return wrap, wrap.Check()
}

// Check returns a descriptive error if the configuration cannot be run.
func (wrap *EvalWrapper) Check() error {
	if err := wrap.Grid.Check(); err != nil {
		return err
	} else if !wrap.Eval.ValidQueryFile() {
		return fmt.Errorf("Invalid/non-existent 'QueryFile' value.")
	}
	return nil
}

// ReadPlotConfig reads and checks a [Plot] mode configuration file.
func ReadPlotConfig(fname string) (*PlotWrapper, error) {
	wrap := DefaultPlotWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return wrap, wrap.Check()
}

// Check returns a descriptive error if the configuration cannot be run.
func (wrap *PlotWrapper) Check() error {
	if err := wrap.Grid.Check(); err != nil {
		return err
	} else if !wrap.Plot.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !wrap.Plot.ValidSlices() {
		return fmt.Errorf("Invalid 'Slices' value, %d.", wrap.Plot.Slices)
	} else if !wrap.Plot.ValidPoints() {
		return fmt.Errorf("Invalid 'Points' value, %d.", wrap.Plot.Points)
	}
	return nil
}
