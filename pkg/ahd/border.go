package ahd

import "github.com/abworrall/nefraw/pkg/rawimage"

// promoteToRGB places each raw sensor sample into the RGB channel its
// Bayer position belongs to, leaving the other two channels zero; this is
// the seed image every interpolator (AHD or bilinear) then fills in.
func promoteToRGB(gray *rawimage.GrayImage) *rawimage.RGBImage {
	width, height := gray.Width(), gray.Height()
	rgb := rawimage.NewRGBImageWithFilters(width, height, gray.Camera(), gray.Filters())
	for row := 0; row < height; row++ {
		grayRow := gray.Row(row)
		rgbRow := rgb.Row(row)
		for col := 0; col < width; col++ {
			rgbRow[col].Set(gray.ColorAt(row, col), grayRow[col].V)
		}
	}
	return rgb
}

// interpolateBorder fills, for every pixel within `border` pixels of any
// edge, the two missing color channels with a 3x3-neighborhood average
// (skipping the pixel's own known channel and any neighbor that falls
// outside the image). It scans the full perimeter band, jumping straight
// from the left edge to the right edge of interior rows.
func interpolateBorder(image *rawimage.RGBImage, border int) {
	width, height := image.Width(), image.Height()

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if col == border && row >= border && row < height-border {
				col = width - border
				if col >= width {
					break
				}
			}

			var sum [3]int
			var count [3]int
			for y := row - 1; y <= row+1; y++ {
				if y < 0 || y >= height {
					continue
				}
				for x := col - 1; x <= col+1; x++ {
					if x < 0 || x >= width {
						continue
					}
					c := image.ColorAt(y, x)
					switch c {
					case rawimage.R:
						sum[0] += int(image.At(y, x).R)
						count[0]++
					case rawimage.G:
						sum[1] += int(image.At(y, x).G)
						count[1]++
					default:
						sum[2] += int(image.At(y, x).B)
						count[2]++
					}
				}
			}

			curC := image.ColorAt(row, col)
			p := image.At(row, col)
			if curC != rawimage.R && count[0] > 0 {
				p.R = uint16(sum[0] / count[0])
			}
			if curC != rawimage.G && count[1] > 0 {
				p.G = uint16(sum[1] / count[1])
			}
			if curC != rawimage.B && count[2] > 0 {
				p.B = uint16(sum[2] / count[2])
			}
			image.Set(row, col, p)
		}
	}
}
