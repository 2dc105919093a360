package ahd

import "github.com/abworrall/nefraw/pkg/rawimage"

// rgbToLab projects one directional RGB estimate into CIELAB space via the
// camera's cameraToXyz matrix, using the cube-root lookup table for the
// nonlinear L*/a*/b* terms.
func rgbToLab(rgb rawimage.RGBPixel, cameraToXyz [3][4]float64) rawimage.LABPixel {
	ensureXyzCbrtLookup()

	r, g, b := float64(rgb.R), float64(rgb.G), float64(rgb.B)

	cbrtX := xyz64Cbrt(float32(0.5 + cameraToXyz[0][0]*r + cameraToXyz[0][1]*g + cameraToXyz[0][2]*b))
	cbrtY := xyz64Cbrt(float32(0.5 + cameraToXyz[1][0]*r + cameraToXyz[1][1]*g + cameraToXyz[1][2]*b))
	cbrtZ := xyz64Cbrt(float32(0.5 + cameraToXyz[2][0]*r + cameraToXyz[2][1]*g + cameraToXyz[2][2]*b))

	l := int16(116.0*cbrtY - 64.0*16.0)
	a := int16(500.0 * (cbrtX - cbrtY))
	bb := int16(200.0 * (cbrtY - cbrtZ))

	return rawimage.LABPixel{L: l, A: a, B: bb}
}

// createCielabImage converts a directional RGB tile's interior into the
// matching LAB tile, one pixel inset on every side since rgbToLab only
// needs the pixel itself (the inset keeps both tiles' usable regions in
// lockstep with the neighbor lookups fillHomogeneityMap does next).
func createCielabImage(
	rgbTile *rawimage.ImageTile[rawimage.RGBPixel],
	labTile *rawimage.ImageTile[rawimage.LABPixel],
	cameraToXyz [3][4]float64,
) {
	top := rgbTile.Top() + 1
	left := rgbTile.Left() + 1
	right := rgbTile.Right() - 1
	bottom := rgbTile.Bottom() - 1

	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			p := rawimage.Point{Row: row, Col: col}
			labTile.Set(p, rgbToLab(rgbTile.At(p), cameraToXyz))
		}
	}
}
