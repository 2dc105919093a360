package ahd

import "github.com/abworrall/nefraw/pkg/rawimage"

// InterpolateBilinear demosaics a raw Bayer-patterned GrayImage with plain
// bilinear interpolation: each missing channel at a pixel is the weighted
// average of same-color neighbors, weighted 2x for an edge-adjacent
// neighbor (directly above/below/left/right) over a diagonal one. It does
// not attempt the original's precomputed per-position instruction cache,
// since ColorAt is already cheap to call directly in this port.
func InterpolateBilinear(gray *rawimage.GrayImage) *rawimage.RGBImage {
	image := promoteToRGB(gray)
	interpolateBorder(image, 1)

	width, height := image.Width(), image.Height()

	for row := 1; row < height-1; row++ {
		for col := 1; col < width-1; col++ {
			curC := image.ColorAt(row, col)

			var sums, weights [3]int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					shift := 0
					if dx == 0 {
						shift++
					}
					if dy == 0 {
						shift++
					}
					c := image.ColorAt(row+dy, col+dx)
					sums[c] += int(image.At(row+dy, col+dx).At(c)) << shift
					weights[c] += 1 << shift
				}
			}

			p := image.At(row, col)
			for c := rawimage.R; c <= rawimage.B; c++ {
				if c == curC || weights[c] == 0 {
					continue
				}
				p.Set(c, uint16(sums[c]/weights[c]))
			}
			image.Set(row, col, p)
		}
	}

	return image
}
