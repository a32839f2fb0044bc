// Command curvesample evaluates a curve definition.
//
// It prints position,value rows for evenly spaced positions. With -target, it
// prints the position whose value is closest to the target instead. With
// -split, it splits a Hermite spline and prints the pieces as YAML documents.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"honnef.co/go/spline"
	"honnef.co/go/spline/curvedef"
)

type options struct {
	in      string
	n       int
	from    float64
	to      float64
	target  float64
	split   float64
	extents bool
	set     map[string]bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("curvesample", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: curvesample -in <file> [-n 16] [-from x] [-to x] [-target v | -split x | -extents]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.in, "in", "", "Path to curve definition `file`")
	fs.IntVar(&opts.n, "n", 16, "Number of samples")
	fs.Float64Var(&opts.from, "from", 0, "First sampled `position` (default: start of the curve)")
	fs.Float64Var(&opts.to, "to", 0, "Last sampled `position` (default: end of the curve)")
	fs.Float64Var(&opts.target, "target", 0, "Search for the position with this `value`")
	fs.Float64Var(&opts.split, "split", 0, "Split a Hermite spline at `position`")
	fs.BoolVar(&opts.extents, "extents", false, "Print the estimated minimum and maximum value")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.in == "" || fs.NArg() != 0 {
		fs.Usage()
		return opts, errors.New("missing or superfluous arguments")
	}
	if opts.n < 2 {
		return opts, fmt.Errorf("need at least 2 samples, got %d", opts.n)
	}
	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

func run(opts options, w io.Writer) error {
	def, err := curvedef.LoadFile(opts.in)
	if err != nil {
		return err
	}

	if opts.set["split"] {
		s, err := def.Hermite()
		if err != nil {
			return err
		}
		var out []*curvedef.Definition
		for i, piece := range s.Split(opts.split) {
			out = append(out, curvedef.FromHermite(fmt.Sprintf("%s.%d", def.Name, i), piece))
		}
		return curvedef.Encode(w, out...)
	}

	c, err := def.Build()
	if err != nil {
		return err
	}
	from, to := c.Start(), c.End()
	if opts.set["from"] {
		from = opts.from
	}
	if opts.set["to"] {
		to = opts.to
	}

	switch {
	case opts.set["target"]:
		pos, ok := c.Search(func(_, v float64) float64 {
			return math.Abs(v - opts.target)
		}, from, to, spline.SearchOptions{})
		if !ok {
			return fmt.Errorf("no position in [%g, %g] approaches %g", from, to, opts.target)
		}
		_, err := fmt.Fprintf(w, "%g,%g\n", pos, c.At(pos))
		return err
	case opts.extents:
		lo, hi, ok := extents(c)
		if !ok {
			return errors.New("curve has no points")
		}
		_, err := fmt.Fprintf(w, "%g,%g\n", lo, hi)
		return err
	default:
		for i := range opts.n {
			pos := from + (to-from)*float64(i)/float64(opts.n-1)
			if _, err := fmt.Fprintf(w, "%g,%g\n", pos, c.At(pos)); err != nil {
				return err
			}
		}
		return nil
	}
}

func extents(c curvedef.Sampler) (lo, hi float64, ok bool) {
	const detail = 32
	switch c := c.(type) {
	case *spline.Curve[float64]:
		return c.EstimateExtents(nil, detail)
	case *spline.HermiteSpline[float64]:
		return c.EstimateExtents(nil, detail)
	default:
		panic(fmt.Sprintf("unexpected sampler %T", c))
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("curvesample: ")

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Print(err)
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
