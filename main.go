package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/raymini/go-sphere-tracer/pkg/renderer"
	"github.com/raymini/go-sphere-tracer/pkg/scene"
	"github.com/raymini/go-sphere-tracer/pkg/sink"
	"github.com/raymini/go-sphere-tracer/pkg/tracer"
)

// Default grid sizes per sink kind. The terminal grid keeps the image
// readable in an 80-column window; the file sinks render full size.
const (
	defaultTermWidth  = 40
	defaultTermHeight = 25
	defaultFileWidth  = 800
	defaultFileHeight = 600
)

func main() {
	sinkName := flag.String("sink", "terminal", "Output sink: 'terminal', 'pgm' or 'png'")
	width := flag.Int("width", 0, "Image width in pixels (0 = sink default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = sink default)")
	out := flag.String("out", "", "Output file path for file sinks (default render.pgm / render.png)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Tracer")
		fmt.Println("Usage: sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available sinks:")
		fmt.Println("  terminal - ASCII art on stdout (default 40x25)")
		fmt.Println("  pgm      - plain-text P2 grayscale pixel map (default 800x600)")
		fmt.Println("  png      - 8-bit grayscale PNG (default 800x600)")
		return
	}

	w, h, err := resolveSize(*sinkName, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Trace the frame before opening any output: the render itself
	// cannot fail, only the sink I/O can.
	trc := tracer.NewTracer(scene.NewReferenceScene())
	r := renderer.NewRenderer(trc, w, h)
	r.SetNumWorkers(*workers)

	frame, stats := r.Render()

	dest, cleanup, err := openOutput(*sinkName, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output: %v\n", err)
		os.Exit(1)
	}

	s, err := newSink(*sinkName, dest)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := s.Write(frame.Width, frame.Height, frame.At); err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	if err := cleanup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing output: %v\n", err)
		os.Exit(1)
	}

	reportStats(*sinkName, *out, stats)
}

// resolveSize picks the image dimensions for a sink, substituting the
// sink's defaults when a dimension is left unset. Validating the sink
// name here keeps a bad -sink from rendering a frame or creating an
// output file before failing.
func resolveSize(sinkName string, width, height int) (int, int, error) {
	var dw, dh int
	switch sinkName {
	case "terminal":
		dw, dh = defaultTermWidth, defaultTermHeight
	case "pgm", "png":
		dw, dh = defaultFileWidth, defaultFileHeight
	default:
		return 0, 0, fmt.Errorf("unknown sink type: %s", sinkName)
	}

	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("dimensions must be non-negative, got %dx%d", width, height)
	}

	if width == 0 {
		width = dw
	}
	if height == 0 {
		height = dh
	}
	return width, height, nil
}

// newSink creates the sink named on the command line
func newSink(sinkName string, w io.Writer) (sink.Sink, error) {
	switch sinkName {
	case "terminal":
		return sink.NewTerminal(w), nil
	case "pgm":
		return sink.NewPixmap(w), nil
	case "png":
		return sink.NewPNG(w), nil
	default:
		return nil, fmt.Errorf("unknown sink type: %s", sinkName)
	}
}

// defaultOutput returns the output path used when -out is not given
func defaultOutput(sinkName string) string {
	if sinkName == "png" {
		return "render.png"
	}
	return "render.pgm"
}

// openOutput returns the destination writer for a sink and a cleanup
// function that flushes and closes it. The terminal sink writes to
// stdout, which is not ours to close.
func openOutput(sinkName, out string) (io.Writer, func() error, error) {
	if sinkName == "terminal" {
		return os.Stdout, func() error { return nil }, nil
	}

	if out == "" {
		out = defaultOutput(sinkName)
	}
	file, err := os.Create(out)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

// reportStats prints the render summary the way a user sees it
func reportStats(sinkName, out string, stats renderer.RenderStats) {
	fmt.Fprintf(os.Stderr, "Rendered %d pixels (%d rays) with %d workers in %v\n",
		stats.TotalPixels, stats.PrimaryRays, stats.Workers,
		stats.Elapsed.Round(time.Microsecond))
	if sinkName != "terminal" {
		if out == "" {
			out = defaultOutput(sinkName)
		}
		fmt.Fprintf(os.Stderr, "Output saved as %s\n", out)
	}
}
