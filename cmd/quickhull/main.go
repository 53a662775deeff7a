package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/osuushi/quickhull"
	"github.com/osuushi/quickhull/pointio"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line driver for the quickhull package. It reads a point set, finds
// its hull, and prints the hull vertices. By default, input on stdin should be
// newline separated points in the form "x y".

type config struct {
	input      *string
	format     *string
	output     *string
	demo       *bool
	parallel   *bool
	trace      *bool
	png        *string
	scale      *float64
	imgcat     *bool
	cpuProfile *bool
}

func newApp() (*kingpin.Application, *config) {
	app := kingpin.New("quickhull", "Find the convex hull of a set of 2D points.")
	formats := make([]string, len(pointio.Formats))
	for i, format := range pointio.Formats {
		formats[i] = string(format)
	}

	c := &config{
		input:      app.Arg("input", "File to read points from. Defaults to stdin.").String(),
		format:     app.Flag("format", "Input format.").Short('f').Default(string(pointio.Text)).Enum(formats...),
		output:     app.Flag("output", "Report format.").Short('o').Default(string(pointio.Text)).Enum(string(pointio.Text), string(pointio.YAML)),
		demo:       app.Flag("demo", "Ignore the input and use the built in eight point demo set.").Bool(),
		parallel:   app.Flag("parallel", "Search both sides of the initial split concurrently.").Bool(),
		trace:      app.Flag("trace", "Write each step of the recursion to stderr.").Bool(),
		png:        app.Flag("png", "Render the points and hull to a PNG file.").PlaceHolder("PATH").String(),
		scale:      app.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64(),
		imgcat:     app.Flag("imgcat", "Render the hull to the terminal (iTerm only).").Bool(),
		cpuProfile: app.Flag("cpuprofile", "Write a CPU profile to the working directory.").Bool(),
	}
	return app, c
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("quickhull: ")

	app, c := newApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *c.cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := run(context.Background(), c, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Cause(err) == quickhull.ErrTooFewPoints {
			app.FatalUsage("%v\n", err)
		}
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, c *config, stdin io.Reader, stdout, stderr io.Writer) error {
	points, err := readPoints(c, stdin)
	if err != nil {
		return err
	}

	options := quickhull.Options{Parallel: *c.parallel}
	if *c.trace {
		options.Trace = stderr
	}
	hull, err := quickhull.ConvexHullWithOptions(ctx, points, options)
	if err != nil {
		return err
	}

	switch pointio.Format(*c.output) {
	case pointio.YAML:
		err = pointio.WriteYAML(stdout, hull)
	default:
		err = pointio.WriteText(stdout, hull)
	}
	if err != nil {
		return err
	}

	if *c.png != "" {
		if err := hull.SavePNG(*c.png, *c.scale); err != nil {
			return err
		}
	}
	if *c.imgcat {
		return hull.Preview(*c.scale)
	}
	return nil
}

func readPoints(c *config, stdin io.Reader) (quickhull.PointList, error) {
	if *c.demo {
		return demoPoints(), nil
	}

	in := stdin
	if *c.input != "" && *c.input != "-" {
		file, err := os.Open(*c.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
	}
	return pointio.Read(in, pointio.Format(*c.format))
}

func demoPoints() quickhull.PointList {
	return quickhull.PointList{
		{X: 0, Y: 3},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 4, Y: 4},
		{X: 0, Y: 0},
		{X: 1, Y: 2},
		{X: 3, Y: 1},
		{X: 3, Y: 3},
	}
}
