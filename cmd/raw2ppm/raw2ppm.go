package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abworrall/nefraw/pkg/rawimage"
	"github.com/abworrall/nefraw/pkg/rawpipeline"
)

var (
	fVerbosity   int
	fColorDepth  int
	fInterpolate string
	fConfigPath  string
	fStats       bool
	fDebugPixel  string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.IntVar(&fColorDepth, "depth", 16, "output PPM color depth, 8 or 16")
	flag.StringVar(&fInterpolate, "interpolator", "ahd", "demosaic algorithm: ahd or bilinear")
	flag.StringVar(&fConfigPath, "config", "", "optional YAML config file (camera overrides etc)")
	flag.BoolVar(&fStats, "stats", false, "report p50/p90/p99 of the final RGB channel distribution")
	flag.StringVar(&fDebugPixel, "debug-pixel", "", "row,col of a pixel to snapshot at every stage (requires -v)")
}

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: raw2ppm [flags] <input.nef> <output.ppm>\n")
		os.Exit(1)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	cfg := rawpipeline.NewConfig()
	if fConfigPath != "" {
		loaded, err := rawpipeline.LoadConfig(fConfigPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg.Verbosity = fVerbosity
	cfg.ColorDepth = fColorDepth
	cfg.Interpolator = fInterpolate

	if fDebugPixel != "" {
		var row, col int
		if _, err := fmt.Sscanf(fDebugPixel, "%d,%d", &row, &col); err != nil {
			log.Fatalf("bad -debug-pixel %q, want \"row,col\": %v", fDebugPixel, err)
		}
		cfg.DebugPixel = &rawimage.Point{Row: row, Col: col}
	}

	if cfg.Verbosity > 0 {
		log.Printf("raw2ppm starting, configuration:-\n\n%s\n", cfg.AsYaml())
	}

	in, err := os.Open(inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	openOut := func() (io.WriteCloser, error) { return os.Create(outPath) }

	rgb, err := rawpipeline.Run(in, openOut, cfg)
	if err != nil {
		log.Printf("raw2ppm: %v\n", err)
		os.Exit(2)
	}

	if fStats {
		log.Printf("channel stats: %s\n", rawpipeline.BuildChannelStats(rgb))
	}
}
