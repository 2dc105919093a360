package rawpipeline

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/nefraw/pkg/rawimage"
)

// PixelSnapshot captures one pixel's value as it passes through every
// pipeline stage, for the -v diagnostic dump. It never feeds back into the
// numeric pipeline.
type PixelSnapshot struct {
	Pos rawimage.Point

	Raw          uint16            // straight off the sensor, before scaling
	Scaled       uint16            // after ScaleColors
	Demosaiced   rawimage.RGBPixel // after AHD/bilinear fill
	Converted    hdrcolor.RGB      // after camera-to-RGB conversion, normalized to [0,1]
	GammaApplied colorful.Color    // after the gamma curve, normalized to [0,1]
}

func normalize16(v uint16) float64 { return float64(v) / 0xffff }

func (p PixelSnapshot) String() string {
	str := fmt.Sprintf("----- Pixel @%s -----\n", p.Pos)
	str += fmt.Sprintf("Raw              : 0x%04x\n", p.Raw)
	str += fmt.Sprintf("Scaled           : 0x%04x\n", p.Scaled)
	str += fmt.Sprintf("Demosaiced       : [0x%04x, 0x%04x, 0x%04x]\n", p.Demosaiced.R, p.Demosaiced.G, p.Demosaiced.B)
	str += fmt.Sprintf("Converted (RGB)  : [%8.6f, %8.6f, %8.6f]\n", p.Converted.R, p.Converted.G, p.Converted.B)
	str += fmt.Sprintf("GammaApplied     : %s\n", p.GammaApplied.Hex())
	return str
}

func rgbPixelToHDR(p rawimage.RGBPixel) hdrcolor.RGB {
	return hdrcolor.RGB{R: normalize16(p.R), G: normalize16(p.G), B: normalize16(p.B)}
}

func rgbPixelToColorful(p rawimage.RGBPixel) colorful.Color {
	return colorful.Color{R: normalize16(p.R), G: normalize16(p.G), B: normalize16(p.B)}
}
