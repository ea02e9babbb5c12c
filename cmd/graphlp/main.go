package main

import (
	"fmt"
	"io"
	"log"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/graphlp/advanced"
	"github.com/osuushi/graphlp/lpjson"
)

type config struct {
	input         string
	sense         string
	excludeOrigin bool
	png           string
	scale         float64
	imgcat        bool
	geojson       string
	pretty        bool
	noColor       bool
	quiet         bool
}

// Solve a two variable linear program described by a JSON request, and write
// the JSON response to stdout. The request looks like:
//
//	{"constraints": [[1, 1, 4], [1, 0, 3]], "objective": [1, 2], "type": "max"}
//
// where each constraint [a, b, c] means a*x + b*y <= c, with x, y >= 0
// implied. The feasible region can also be rendered to a PNG (and shown inline
// in iTerm) or exported as GeoJSON.
func main() {
	log.SetFlags(0)
	log.SetPrefix("graphlp: ")

	app := kingpin.New("graphlp", "Solve two-variable linear programs by vertex enumeration.")
	var cfg config
	app.Flag("input", "Request file, or - for stdin.").Short('i').Default("-").Envar("GRAPHLP_INPUT").StringVar(&cfg.input)
	app.Flag("type", "Report this optimum as best_point/best_value, overriding the request.").EnumVar(&cfg.sense, string(advanced.Minimize), string(advanced.Maximize))
	app.Flag("exclude-origin", "Do not test the origin as a candidate vertex.").BoolVar(&cfg.excludeOrigin)
	app.Flag("png", "Render the feasible region to this PNG file.").StringVar(&cfg.png)
	app.Flag("scale", "Pixels per unit when rendering.").Default("50").Envar("GRAPHLP_SCALE").Float64Var(&cfg.scale)
	app.Flag("imgcat", "Print the rendered region inline (iTerm only). Implies rendering.").BoolVar(&cfg.imgcat)
	app.Flag("geojson", "Write the region and optima as GeoJSON to this file.").StringVar(&cfg.geojson)
	app.Flag("pretty", "Indent the JSON response.").BoolVar(&cfg.pretty)
	app.Flag("no-color", "Do not color the summary.").BoolVar(&cfg.noColor)
	app.Flag("quiet", "Do not print a summary to stderr.").Short('q').BoolVar(&cfg.quiet)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(cfg, os.Stdout); err != nil {
		if errors.Is(err, lpjson.ErrMalformedRequest) {
			// The error response is already on stdout
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(cfg config, stdout io.Writer) error {
	in, err := openInput(cfg.input)
	if err != nil {
		return err
	}
	defer in.Close()

	opts := lpjson.HandleOptions{
		Solver: advanced.Options{ExcludeOrigin: cfg.excludeOrigin},
		Pretty: cfg.pretty,
	}
	if cfg.sense != "" {
		sense := advanced.Sense(cfg.sense)
		opts.Sense = &sense
	}

	result, err := lpjson.Handle(in, stdout, opts)
	if err != nil {
		return err
	}

	if !cfg.quiet {
		fmt.Fprintln(os.Stderr, result.Summary(!cfg.noColor))
	}
	if err := writeImage(cfg, result); err != nil {
		return err
	}
	return writeGeoJSON(cfg.geojson, result)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	return f, errors.Wrap(err, "opening request")
}

func writeImage(cfg config, result *advanced.Result) error {
	if cfg.png == "" && !cfg.imgcat {
		return nil
	}
	path := cfg.png
	if path == "" {
		f, err := os.CreateTemp("", "graphlp-*.png")
		if err != nil {
			return errors.Wrap(err, "creating temporary image")
		}
		f.Close()
		path = f.Name()
		defer os.Remove(path)
	}

	if err := result.SavePNG(path, advanced.DrawOptions{Scale: cfg.scale}); err != nil {
		return errors.Wrap(err, "rendering region")
	}
	if cfg.imgcat {
		if err := imgcat.CatFile(path, os.Stderr); err != nil {
			return errors.Wrap(err, "printing image")
		}
	}
	return nil
}

func writeGeoJSON(path string, result *advanced.Result) error {
	if path == "" {
		return nil
	}
	data, err := result.FeatureCollection().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "writing geojson")
}
