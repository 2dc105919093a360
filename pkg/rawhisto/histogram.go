// Package rawhisto builds the coarse per-color histogram the gamma curve
// is derived from, and the gamma curve's lookup table itself.
package rawhisto

import "github.com/abworrall/nefraw/pkg/rawimage"

// Coarseness controls how many low bits of each 16-bit channel value are
// dropped before counting; spec.md fixes this at 3 for 16-bit pixels,
// giving 8192 slots per color.
const Coarseness = 3

const nSlots = (0xffff >> Coarseness) + 1

// Histogram counts, for each of the three RGB channels, how many pixels
// fall into each of nSlots coarseness-bucketed value ranges.
type Histogram struct {
	counts  [3][nSlots]int
	nPixels int
}

// BuildHistogram walks every pixel of im once, incrementing one bucket per
// channel per pixel.
func BuildHistogram(im *rawimage.RGBImage) *Histogram {
	h := &Histogram{}
	width, height := im.Width(), im.Height()
	for row := 0; row < height; row++ {
		rowPixels := im.Row(row)
		for col := 0; col < width; col++ {
			p := rowPixels[col]
			h.counts[0][p.R>>Coarseness]++
			h.counts[1][p.G>>Coarseness]++
			h.counts[2][p.B>>Coarseness]++
			h.nPixels++
		}
	}
	return h
}

func (h *Histogram) NPixels() int { return h.nPixels }

// CountAt returns the bucket count for channel c (0=R,1=G,2=B) at the
// given coarseness-shifted slot.
func (h *Histogram) CountAt(c, slot int) int { return h.counts[c][slot] }
