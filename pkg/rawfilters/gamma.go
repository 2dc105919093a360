package rawfilters

import "github.com/abworrall/nefraw/pkg/rawimage"

// GammaLookup is the narrow interface ApplyGamma needs from a gamma
// curve: map one raw channel value to its corrected value. pkg/rawhisto's
// GammaCurve implements it.
type GammaLookup interface {
	At(v uint16) uint16
}

// ApplyGamma runs every channel of every pixel of im through curve, in
// place.
func ApplyGamma(im *rawimage.RGBImage, curve GammaLookup) {
	width, height := im.Width(), im.Height()
	for row := 0; row < height; row++ {
		rowPixels := im.Row(row)
		for col := 0; col < width; col++ {
			p := rowPixels[col]
			rowPixels[col] = rawimage.RGBPixel{
				R: curve.At(p.R),
				G: curve.At(p.G),
				B: curve.At(p.B),
			}
		}
	}
}
