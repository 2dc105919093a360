package rawhisto

import "math"

const curveSize = 1 << 16

// GammaCurve is a full 65536-entry 16-bit-to-16-bit lookup table, derived
// either from explicit (power, toe-slope) parameters or from a Histogram's
// 1%-white detection, following the same two-stage construction dcraw's
// gamma_curve uses.
type GammaCurve struct {
	curve [curveSize]uint16
}

// NewGammaCurve builds the curve directly from a power/toe-slope pair and
// a white point (the raw value that should map to "full brightness").
func NewGammaCurve(pwr, ts float64, white int) *GammaCurve {
	c := &GammaCurve{}
	c.init(pwr, ts, white)
	return c
}

// NewGammaCurveFromHistogram finds the 1%-from-white point of each color
// channel (walking down from the top histogram slot until 1% of all
// pixels have been accounted for, or the slot value drops to 32), takes
// the brightest of the three as the white point, and builds a curve with
// dcraw's standard sRGB-ish power/toe-slope (0.45, 4.5).
func NewGammaCurveFromHistogram(h *Histogram) *GammaCurve {
	perc := float64(h.NPixels()) * 0.01

	white := 0
	for c := 0; c < 3; c++ {
		total := 0
		val := nSlots - 1
		for ; val > 0; val-- {
			total += h.CountAt(c, val)
			if float64(total) > perc || val <= 32 {
				break
			}
		}
		if val > white {
			white = val
		}
	}

	return NewGammaCurve(0.45, 4.5, white<<Coarseness)
}

func (c *GammaCurve) init(pwr, ts float64, max int) {
	g0, g1 := pwr, ts
	var g2, g3, g4 float64

	if g1 != 0 && (g1-1)*(g0-1) <= 0 {
		bnd := [2]float64{0, 0}
		if g1 >= 1 {
			bnd[1] = 1
		} else {
			bnd[0] = 1
		}
		for i := 0; i < 48; i++ {
			g2 = (bnd[0] + bnd[1]) / 2
			var cond bool
			if g0 != 0 {
				t := math.Pow(g2/g1, -g0) - 1
				cond = t/g0-1/g2 > -1
			} else {
				cond = g2/math.Exp(1-1/g2) < g1
			}
			if cond {
				bnd[1] = g2
			} else {
				bnd[0] = g2
			}
		}
		g3 = g2 / g1
		if g0 != 0 {
			g4 = g2 * (1/g0 - 1)
		}
	}

	for i := 0; i < curveSize; i++ {
		c.curve[i] = 0xffff
		r := float64(i) / float64(max)
		if r < 1 {
			var val float64
			if r < g3 {
				val = r * g1
			} else if g0 != 0 {
				val = math.Pow(r, g0)*(1+g4) - g4
			} else {
				val = math.Log(r)*g2 + 1
			}
			c.curve[i] = uint16(curveSize * val)
		}
	}
}

// At looks up the gamma-corrected value for a raw channel sample.
func (c *GammaCurve) At(v uint16) uint16 { return c.curve[v] }
