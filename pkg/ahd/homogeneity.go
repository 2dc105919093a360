package ahd

import "github.com/abworrall/nefraw/pkg/rawimage"

const (
	dirH = 0
	dirV = 1
)

// adjacentOffsets matches the left/right/above/below order fillHomogeneityMap
// compares each pixel's LAB value against.
var adjacentOffsets = [4]rawimage.Point{
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// epsilon derives the per-pixel homogeneity threshold from the horizontal
// estimate's left/right difference and the vertical estimate's
// above/below difference: whichever direction agrees more with its own
// natural neighbors sets the bar the other must clear.
func epsilon(diff [2][4]int) int {
	return minInt(maxInt(diff[dirH][0], diff[dirH][1]), maxInt(diff[dirV][2], diff[dirV][3])) + 1
}

// fillHomogeneityMap scores, at every interior pixel of the tile, how many
// of its four neighbors agree with it in both lightness and chroma, once
// per directional (H, V) candidate.
func fillHomogeneityMap(
	hLab, vLab *rawimage.ImageTile[rawimage.LABPixel],
	homo *rawimage.ImageTile[rawimage.HomogeneityPixel],
) {
	top := hLab.Top() + 2
	left := hLab.Left() + 2
	right := hLab.Right() - 2
	bottom := hLab.Bottom() - 2

	labTiles := [2]*rawimage.ImageTile[rawimage.LABPixel]{hLab, vLab}

	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			p := rawimage.Point{Row: row, Col: col}

			var lDiff, abDiff [2][4]int
			for dir := 0; dir < 2; dir++ {
				here := labTiles[dir].At(p)
				for adjDir, off := range adjacentOffsets {
					adj := labTiles[dir].At(p.Add(off))
					lDiff[dir][adjDir] = absInt(int(here.L) - int(adj.L))
					da := int(here.A) - int(adj.A)
					db := int(here.B) - int(adj.B)
					abDiff[dir][adjDir] = da*da + db*db
				}
			}

			lEps := epsilon(lDiff)
			abEps := epsilon(abDiff)

			hp := homo.Ptr(p)
			for dir := 0; dir < 2; dir++ {
				homogeneity := 0
				for adjDir := 0; adjDir < 4; adjDir++ {
					if lDiff[dir][adjDir] < lEps && abDiff[dir][adjDir] < abEps {
						homogeneity++
					}
				}
				if dir == dirH {
					hp.H = int8(homogeneity)
				} else {
					hp.V = int8(homogeneity)
				}
			}
		}
	}
}

// refillImage fuses the H and V directional estimates back into the real
// image: first it sums each pixel's 3x3 neighborhood of H/V homogeneity
// counts into a single Diff, then picks whichever direction's estimate won
// that neighborhood (or averages the two on a tie).
func refillImage(
	image *rawimage.RGBImage,
	hTile, vTile *rawimage.ImageTile[rawimage.RGBPixel],
	homo *rawimage.ImageTile[rawimage.HomogeneityPixel],
) {
	top := hTile.Top() + 3
	left := hTile.Left() + 3
	right := hTile.Right() - 3
	bottom := hTile.Bottom() - 3

	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			p := rawimage.Point{Row: row, Col: col}

			var hmH, hmV int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					n := homo.At(rawimage.Point{Row: row + dy, Col: col + dx})
					hmH += int(n.H)
					hmV += int(n.V)
				}
			}
			homo.Ptr(p).Diff = int8(hmH - hmV)
		}
	}

	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			p := rawimage.Point{Row: row, Col: col}

			diff := homo.At(p).Diff
			h := hTile.At(p)
			v := vTile.At(p)

			var out rawimage.RGBPixel
			switch {
			case diff > 0:
				out = h
			case diff < 0:
				out = v
			default:
				out = rawimage.RGBPixel{
					R: uint16((int(h.R) + int(v.R)) >> 1),
					G: uint16((int(h.G) + int(v.G)) >> 1),
					B: uint16((int(h.B) + int(v.B)) >> 1),
				}
			}
			image.Set(row, col, out)
		}
	}
}
