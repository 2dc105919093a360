package rawfilters

import (
	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

// ScaleColors multiplies every raw sensor sample by its color plane's
// white-balance scaling multiplier, in place. Each row alternates between
// only two of the camera's color planes, so the multiplier lookup is
// cached once per row rather than recomputed per pixel.
func ScaleColors(im *rawimage.GrayImage, ccd rawcamera.ColorConversionData) {
	width, height := im.Width(), im.Height()
	for row := 0; row < height; row++ {
		c0 := int(im.ColorAt(row, 0))
		c1 := int(im.ColorAt(row, 1))
		m0 := ccd.ScalingMultipliers[c0]
		m1 := ccd.ScalingMultipliers[c1]

		rowPixels := im.Row(row)
		for col := 0; col < width; col++ {
			m := m0
			if col&1 == 1 {
				m = m1
			}
			v := float64(rowPixels[col].V) * m
			rowPixels[col].V = clamp16(int(v))
		}
	}
}
