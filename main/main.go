package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/interp2d/io"
	"github.com/phil-mansfield/interp2d/math/interpolate"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		eval, plot    string
		exampleConfig string
	)
	vars := map[string]*string{
		"Eval":          &eval,
		"Plot":          &plot,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&eval, "Eval", "",
		"Configuration file for [Eval] mode.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Configuration file for [Plot] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Eval' and "+
			"'Plot'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Eval":
		wrap, err := io.ReadEvalConfig(eval)
		if err != nil {
			log.Fatal(err.Error())
		}
		fg := setupIO(&wrap.Eval.SharedConfig)
		defer fg.Close()
		evalMain(&wrap.Grid, &wrap.Eval)

	case "Plot":
		wrap, err := io.ReadPlotConfig(plot)
		if err != nil {
			log.Fatal(err.Error())
		}
		fg := setupIO(&wrap.Plot.SharedConfig)
		defer fg.Close()
		plotMain(&wrap.Grid, &wrap.Plot)

	case "ExampleConfig":
		switch exampleConfig {
		case "Eval":
			fmt.Println(io.ExampleEvalFile)
		case "Plot":
			fmt.Println(io.ExamplePlotFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Eval' and 'Plot'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but interp2d "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupIO(con *io.SharedConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

func readGrid(grid *io.GridConfig) (xs, ys, zs []float64) {
	xs, ys, zs, err := grid.ReadGrid()
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Read %d x %d grid, x: [%g, %g], y: [%g, %g]",
		len(xs), len(ys), xs[0], xs[len(xs)-1], ys[0], ys[len(ys)-1],
	)
	return xs, ys, zs
}

func evalMain(grid *io.GridConfig, con *io.EvalConfig) {
	xs, ys, zs := readGrid(grid)

	interp, err := interpolate.NewInterp2D(grid.Type(), len(xs), len(ys))
	if err != nil {
		log.Fatal(err.Error())
	}
	defer interp.Free()
	if err = interp.Init(xs, ys, zs); err != nil {
		log.Fatal(err.Error())
	}

	qxs, qys, err := io.ReadQueries(con.QueryFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	var xa, ya *interpolate.Accel
	if con.UseAccel {
		xa, ya = interpolate.NewAccel(), interpolate.NewAccel()
	}

	out := make([]float64, len(qxs))
	outside := 0
	for i := range qxs {
		x, y := qxs[i], qys[i]
		if x < interp.XMin || x > interp.XMax ||
			y < interp.YMin || y > interp.YMax {
			outside++
		}

		out[i], err = interp.EvalErr(xs, ys, zs, x, y, xa, ya)
		if err != nil {
			log.Fatalf("Evaluating (%g, %g): %s", x, y, err.Error())
		}
	}

	log.Printf("Evaluated %d points with %s", len(out), interp)
	if outside > 0 {
		log.Printf(
			"%d points were outside the grid and were extrapolated from "+
				"the nearest boundary cell.", outside,
		)
	}
	if con.UseAccel {
		log.Printf("x lookups: %s", xa)
		log.Printf("y lookups: %s", ya)
	}

	if err = io.WriteEvals(con.Output, qxs, qys, out); err != nil {
		log.Fatal(err.Error())
	}
}

func plotMain(grid *io.GridConfig, con *io.PlotConfig) {
	xs, ys, zs := readGrid(grid)

	g, err := interpolate.NewGrid(grid.Type(), xs, ys, zs)
	if err != nil {
		log.Fatal(err.Error())
	}
	in := g.Interp()

	px := interpolate.Linspace(in.XMin, in.XMax, con.Points)
	py := make([]float64, con.Points)

	plt.Figure()
	for _, y := range interpolate.Linspace(in.YMin, in.YMax, con.Slices) {
		for i := range py {
			py[i] = y
		}
		pz := g.EvalAll(px, py)
		plt.Plot(px, pz, plt.LW(2), plt.Label(fmt.Sprintf("$y = %.3g$", y)))
	}

	title := con.Title
	if title == "" {
		title = fmt.Sprintf("%s interpolation", in.Name())
	}
	plt.Title(title)
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$z$`, plt.FontSize(16))
	plt.Legend(plt.Loc("upper left"))
	plt.SaveFig(con.Output)

	log.Printf("Plotted %d slices to %s", con.Slices, con.Output)
	plt.Execute()
}
