package ahd

import "github.com/abworrall/nefraw/pkg/rawimage"

// createGreenDirectionalImages fills, for every red/blue pixel in the
// tile's interior, the green value two independent ways: hTile gets a
// horizontal estimate, vTile a vertical one. Green pixels in the source
// are left untouched here; fillDirectionalImage copies them through later.
func createGreenDirectionalImages(
	image *rawimage.RGBImage,
	hTile, vTile *rawimage.ImageTile[rawimage.RGBPixel],
) {
	top, left, right, bottom := hTile.Top(), hTile.Left(), hTile.Right(), hTile.Bottom()

	for row := top; row < bottom; row++ {
		startCol := left + int(image.ColorAt(row, left))&1 // land on the first R or B column

		for col := startCol; col < right; col += 2 {
			c := image.ColorAt(row, col)

			gLeft := image.At(row, col-1).G
			gRight := image.At(row, col+1).G
			cHere := image.At(row, col).At(c)
			cFarLeft := image.At(row, col-2).At(c)
			cFarRight := image.At(row, col+2).At(c)

			hValue := ((int(gLeft)+int(cHere)+int(gRight))*2 - int(cFarLeft) - int(cFarRight)) >> 2
			hTile.Ptr(rawimage.Point{Row: row, Col: col}).G = boundInt(hValue, gLeft, gRight)

			gAbove := image.At(row-1, col).G
			gBelow := image.At(row+1, col).G
			cFarAbove := image.At(row-2, col).At(c)
			cFarBelow := image.At(row+2, col).At(c)

			vValue := ((int(gAbove)+int(cHere)+int(gBelow))*2 - int(cFarAbove) - int(cFarBelow)) >> 2
			vTile.Ptr(rawimage.Point{Row: row, Col: col}).G = boundInt(vValue, gAbove, gBelow)
		}
	}
}

// fillRandBinGPixel fills the two non-green channels of a green pixel in a
// directional tile, given which real color lies on its row and which on
// its column.
func fillRandBinGPixel(
	dTile *rawimage.ImageTile[rawimage.RGBPixel], row, col int,
	rowC, colC rawimage.Color, image *rawimage.RGBImage,
) {
	p := rawimage.Point{Row: row, Col: col}
	pix := image.At(row, col)

	colCValue := int(pix.G) + ((int(image.At(row-1, col).At(colC)) + int(image.At(row+1, col).At(colC)) -
		int(dTile.At(rawimage.Point{Row: row - 1, Col: col}).G) -
		int(dTile.At(rawimage.Point{Row: row + 1, Col: col}).G)) >> 1)
	dTile.Ptr(p).Set(colC, clamp16(int32(colCValue)))

	rowCValue := int(pix.G) + ((int(image.At(row, col-1).At(rowC)) + int(image.At(row, col+1).At(rowC)) -
		int(dTile.At(rawimage.Point{Row: row, Col: col - 1}).G) -
		int(dTile.At(rawimage.Point{Row: row, Col: col + 1}).G)) >> 1)
	dTile.Ptr(p).Set(rowC, clamp16(int32(rowCValue)))
}

// fillRandBinBorRPixel fills the remaining channel of a red or blue pixel
// (the one neither its own native color nor green) from the four diagonal
// neighbors, correcting for their already-filled green estimates.
func fillRandBinBorRPixel(
	dTile *rawimage.ImageTile[rawimage.RGBPixel], row, col int,
	colC rawimage.Color, image *rawimage.RGBImage,
) {
	p := rawimage.Point{Row: row, Col: col}
	dG := dTile.At(p).G

	aboveLeft := image.At(row-1, col-1).At(colC)
	aboveRight := image.At(row-1, col+1).At(colC)
	belowLeft := image.At(row+1, col-1).At(colC)
	belowRight := image.At(row+1, col+1).At(colC)

	dAboveLeft := dTile.At(rawimage.Point{Row: row - 1, Col: col - 1}).G
	dAboveRight := dTile.At(rawimage.Point{Row: row - 1, Col: col + 1}).G
	dBelowLeft := dTile.At(rawimage.Point{Row: row + 1, Col: col - 1}).G
	dBelowRight := dTile.At(rawimage.Point{Row: row + 1, Col: col + 1}).G

	colCValue := int(dG) + ((int(aboveLeft) + int(aboveRight) + int(belowLeft) + int(belowRight) -
		int(dAboveLeft) - int(dAboveRight) - int(dBelowLeft) - int(dBelowRight) + 1) >> 2)
	dTile.Ptr(p).Set(colC, clamp16(int32(colCValue)))
}

// fillDirectionalImage completes a green-only directional tile into a full
// RGB directional estimate: every row alternates between green pixels
// (whose R/B get filled by fillRandBinGPixel) and red/blue pixels (whose
// remaining channel gets filled by fillRandBinBorRPixel), one column pass
// each, after first copying through the channel the source already knows.
func fillDirectionalImage(image *rawimage.RGBImage, dTile *rawimage.ImageTile[rawimage.RGBPixel]) {
	top := dTile.Top() + 1
	left := dTile.Left() + 1
	right := dTile.Right() - 1
	bottom := dTile.Bottom() - 1

	for row := top; row < bottom; row++ {
		c := image.ColorAt(row, left)

		var rowC, colC rawimage.Color
		if c == rawimage.G {
			rowC = image.ColorAt(row, left+1)
			colC = rawimage.Color(2 - int(rowC))
		} else {
			rowC = c
			colC = rawimage.Color(2 - int(c))
		}

		startColG := left
		if c != rawimage.G {
			startColG = left + 1
		}
		for col := startColG; col < right; col += 2 {
			dTile.Ptr(rawimage.Point{Row: row, Col: col}).G = image.At(row, col).G
			fillRandBinGPixel(dTile, row, col, rowC, colC, image)
		}

		startColRB := left
		if c == rawimage.G {
			startColRB = left + 1
		}
		for col := startColRB; col < right; col += 2 {
			dTile.Ptr(rawimage.Point{Row: row, Col: col}).Set(rowC, image.At(row, col).At(rowC))
			fillRandBinBorRPixel(dTile, row, col, colC, image)
		}
	}
}
