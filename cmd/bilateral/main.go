// Package main provides the bilateral command: an edge-preserving smoothing
// filter for images and raw float32 volumes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/born-ml/bilateral/bilateral"
	"github.com/born-ml/bilateral/internal/imageio"
	"github.com/born-ml/bilateral/internal/tensor"
)

const version = "v0.1.0-dev"

// options holds the parsed command line.
type options struct {
	in, out      string
	spatialSigma float64
	colorSigma   float64
	gray         bool
	workers      int
	sequential   bool
	rawShape     string
	verbose      bool
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bilateral: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("bilateral", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.in, "in", "", "input image (png, jpeg, gif, bmp, tiff, webp) or raw float32 volume")
	fs.StringVar(&opts.out, "out", "", "output file; image format chosen by extension")
	fs.Float64Var(&opts.spatialSigma, "spatial", 2, "spatial sigma in elements")
	fs.Float64Var(&opts.colorSigma, "color", 25, "color sigma in channel units (0-255 for images)")
	fs.BoolVar(&opts.gray, "gray", false, "filter a single luminance channel instead of RGB")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	fs.BoolVar(&opts.sequential, "seq", false, "filter on a single goroutine")
	fs.StringVar(&opts.rawShape, "raw-shape", "", "treat -in as raw little-endian float32 with this shape, e.g. 1,1,64,64,64")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.in == "" || opts.out == "" {
		fs.Usage()
		return nil, errors.New("both -in and -out are required")
	}
	if opts.workers < 1 {
		return nil, fmt.Errorf("-workers must be >= 1, got %d", opts.workers)
	}
	return opts, nil
}

func run(args []string, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stderr, "bilateral %s\n", version)
		return nil
	}

	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	bilateral.SetLogger(logger)
	defer bilateral.SetLogger(nil)

	input, err := load(opts)
	if err != nil {
		return err
	}

	cfg := bilateral.DefaultConfig()
	cfg.NumWorkers = opts.workers
	cfg.Enabled = !opts.sequential && opts.workers > 1
	logStats(logger, "input", input, cfg)

	output, err := bilateral.FilterWithConfig(input, float32(opts.spatialSigma), float32(opts.colorSigma), cfg)
	if err != nil {
		return err
	}
	logStats(logger, "output", output, cfg)

	if err := save(opts, output); err != nil {
		return err
	}
	logger.Info("wrote output", "path", opts.out, "shape", output.Shape())
	return nil
}

func load(opts *options) (*tensor.RawTensor, error) {
	f, err := os.Open(opts.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.rawShape != "" {
		shape, err := imageio.ParseShape(opts.rawShape)
		if err != nil {
			return nil, err
		}
		return imageio.ReadRaw(f, shape)
	}

	img, _, err := imageio.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.in, err)
	}
	return imageio.ToTensor(img, opts.gray)
}

func save(opts *options, output *tensor.RawTensor) (err error) {
	var write func(io.Writer) error
	if opts.rawShape != "" {
		write = func(w io.Writer) error { return imageio.WriteRaw(w, output) }
	} else {
		format, err := imageio.FormatFromPath(opts.out)
		if err != nil {
			return err
		}
		img, err := imageio.FromTensor(output, 0)
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return imageio.Encode(w, img, format) }
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
