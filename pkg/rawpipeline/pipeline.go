// Package rawpipeline sequences the decode -> scale -> demosaic -> convert
// -> histogram -> gamma -> write stages into the one operation a driver
// actually wants to call.
package rawpipeline

import (
	"fmt"
	"io"
	"log"

	"github.com/abworrall/nefraw/pkg/ahd"
	"github.com/abworrall/nefraw/pkg/nefdecode"
	"github.com/abworrall/nefraw/pkg/ppm"
	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawexif"
	"github.com/abworrall/nefraw/pkg/rawfilters"
	"github.com/abworrall/nefraw/pkg/rawhisto"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

// Run reads a NEF from src (exif and pixel data both come from the same
// seekable source), runs it through every stage, and writes the result at
// the configured color depth. openDst is not called until every stage has
// succeeded and there is an image ready to write, so a failed decode never
// creates or truncates the destination. It returns the fully developed
// image too, so a caller that wants -stats-style summaries doesn't need to
// re-decode anything.
func Run(src io.ReadSeeker, openDst func() (io.WriteCloser, error), cfg Config) (*rawimage.RGBImage, error) {
	exifData, err := rawexif.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("exif decode: %w", err)
	}

	gray, err := nefdecode.Decode(src, exifData)
	if err != nil {
		return nil, fmt.Errorf("nef decode: %w", err)
	}
	cfg.logf("decoded %dx%d raw image\n", gray.Width(), gray.Height())

	cd := gray.Camera()
	ccd := resolveColorConversionData(cd, exifData, cfg)

	var snap *PixelSnapshot
	if cfg.DebugPixel != nil {
		snap = &PixelSnapshot{Pos: *cfg.DebugPixel}
		snap.Raw = gray.At(snap.Pos.Row, snap.Pos.Col).V
	}

	rawfilters.ScaleColors(gray, ccd)
	cfg.logf("scaled colors\n")
	if snap != nil {
		snap.Scaled = gray.At(snap.Pos.Row, snap.Pos.Col).V
	}

	rgb := demosaic(gray, ccd, cd.NColors(), cfg)
	cfg.logf("demosaiced with %q\n", cfg.Interpolator)
	if snap != nil {
		snap.Demosaiced = rgb.At(snap.Pos.Row, snap.Pos.Col)
	}

	rawfilters.ConvertToRgb(rgb, ccd)
	cfg.logf("converted to RGB\n")
	if snap != nil {
		snap.Converted = rgbPixelToHDR(rgb.At(snap.Pos.Row, snap.Pos.Col))
	}

	hist := rawhisto.BuildHistogram(rgb)
	curve := rawhisto.NewGammaCurveFromHistogram(hist)
	rawfilters.ApplyGamma(rgb, curve)
	cfg.logf("applied gamma\n")
	if snap != nil {
		snap.GammaApplied = rgbPixelToColorful(rgb.At(snap.Pos.Row, snap.Pos.Col))
		cfg.logf("pixel snapshot:\n%s", snap)
	}

	depth := cfg.ColorDepth
	if depth == 0 {
		depth = 16
	}

	dst, err := openDst()
	if err != nil {
		return nil, fmt.Errorf("open destination: %w", err)
	}
	defer dst.Close()

	if err := ppm.Write(dst, rgb, depth); err != nil {
		return nil, fmt.Errorf("ppm write: %w", err)
	}
	cfg.logf("wrote %d-bit PPM\n", depth)

	return rgb, nil
}

func (c Config) logf(format string, args ...interface{}) {
	if c.Verbosity > 0 {
		log.Printf(format, args...)
	}
}

func demosaic(gray *rawimage.GrayImage, ccd rawcamera.ColorConversionData, nColors int, cfg Config) *rawimage.RGBImage {
	if cfg.Interpolator == "bilinear" {
		return ahd.InterpolateBilinear(gray)
	}
	return ahd.Interpolate(gray, ccd, nColors)
}

func resolveColorConversionData(cd *rawcamera.CameraData, e rawexif.ExifData, cfg Config) rawcamera.ColorConversionData {
	if model, err := e.String("Exif.Image.Model"); err == nil {
		if override, ok := cfg.CameraOverrides[model]; ok {
			return override
		}
	}
	return cd.ColorConversionData()
}
