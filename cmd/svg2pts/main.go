// Command svg2pts converts all paths in an SVG document into a list of
// points, one "X Y" pair per line.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/exrok/svg2pts"
	"github.com/exrok/svg2pts/internal/svg"
)

const usageText = `svg2pts ` + svg2pts.Version + `
Converts all paths in an SVG to a list of points. Will ignore paths
with no stroke or fill. Output is a sequence of points, "X Y\n".

USAGE:
    svg2pts [OPTIONS] [ <input> [ <output> ] ]

FLAGS:
        --even       Split each segment evenly instead of keeping exact
                     spacing across segment boundaries
    -h, --help       Prints help information
    -v, --verbose    Enables debug logging on standard error

OPTIONS:
    -a, --accuracy <accuracy>    Set target accuracy for bezier curves
                                 [default: 0.05 if distance == 0, else distance/25]
    -d, --distance <distance>    Set target distance between points, depends on DPI of SVG.
                                 If distance == 0.0 point distance not normalized.
                                 [default: 0.0]
    -p, --points <points>        Set target number of points, derived from the
                                 estimated total path length. Overrides --distance.
                                 [default: 0]

ARGS:
    <input>     Input SVG file, stdin if not present
    <output>    Output file, stdout if not present`

const basicUsageText = `
USAGE:
    svg2pts [OPTIONS] [ <input> [ <output> ] ]

For more information try --help`

// errHelp signals that usage was requested rather than a failure.
var errHelp = errors.New("help requested")

type options struct {
	cfg     svg2pts.Config
	input   string
	output  string
	verbose bool
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}

	next := func(flag string) (string, error) {
		if len(args) == 0 {
			return "", fmt.Errorf("missing argument after: %s", flag)
		}
		v := args[0]
		args = args[1:]
		return v, nil
	}

	for len(args) > 0 {
		arg := args[0]
		args = args[1:]

		if len(arg) > 1 && arg[0] == '-' {
			switch arg {
			case "-h", "--help":
				return nil, errHelp
			case "-v", "--verbose":
				opts.verbose = true
			case "--even":
				opts.cfg.Policy = svg2pts.PolicyEvenSplit
			case "-d", "--distance":
				v, err := next(arg)
				if err != nil {
					return nil, err
				}
				dist, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, fmt.Errorf("invalid value for '%s' <f64>: invalid float literal", arg)
				}
				if dist < 0 {
					return nil, fmt.Errorf("%s is out of range, distance >= 0", arg)
				}
				opts.cfg.Distance = dist
			case "-a", "--accuracy":
				v, err := next(arg)
				if err != nil {
					return nil, err
				}
				acc, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, fmt.Errorf("invalid value for '%s' <f64>: invalid float literal", arg)
				}
				if acc <= 0 {
					return nil, fmt.Errorf("%s is out of range, accuracy > 0", arg)
				}
				opts.cfg.Accuracy = acc
			case "-p", "--points":
				v, err := next(arg)
				if err != nil {
					return nil, err
				}
				pts, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("invalid value for '%s' <int>: invalid integer literal", arg)
				}
				if pts < 0 {
					return nil, fmt.Errorf("%s is out of range, points >= 0", arg)
				}
				opts.cfg.Points = pts
			default:
				return nil, fmt.Errorf("unknown flag %s", arg)
			}
		} else if opts.input == "" {
			opts.input = arg
		} else if opts.output == "" {
			opts.output = arg
		} else {
			return nil, fmt.Errorf("unexpected extra argument %s", arg)
		}
	}

	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, errHelp) {
			fmt.Println(usageText)
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		fmt.Println(basicUsageText)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	if opts.verbose {
		svg2pts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var in io.Reader = os.Stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("could not read input file %q: %w", opts.input, err)
		}
		defer f.Close()
		in = f
	}

	doc, err := svg.Parse(bufio.NewReader(in))
	if err != nil {
		return err
	}
	opts.cfg.PageHeight = doc.PageHeight()

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("could not create output file %q: %w", opts.output, err)
		}
		defer f.Close()
		out = f
	}

	if err := svg2pts.Convert(out, doc.SegmentLists(), opts.cfg); err != nil {
		return err
	}
	if opts.output != "" {
		// Surface close errors for real files; the deferred close is
		// then a harmless double close.
		return out.Close()
	}
	return nil
}
