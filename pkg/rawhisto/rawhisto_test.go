package rawhisto

import (
	"testing"

	"github.com/abworrall/nefraw/pkg/rawimage"
)

func TestBuildHistogramCountsEveryPixelPerChannel(t *testing.T) {
	im := rawimage.NewRGBImage(2, 2, nil)
	im.Set(0, 0, rawimage.RGBPixel{R: 100, G: 200, B: 300})
	im.Set(0, 1, rawimage.RGBPixel{R: 100, G: 200, B: 300})
	im.Set(1, 0, rawimage.RGBPixel{R: 0, G: 0, B: 0})
	im.Set(1, 1, rawimage.RGBPixel{R: 0, G: 0, B: 0})

	h := BuildHistogram(im)
	if h.NPixels() != 4 {
		t.Fatalf("nPixels = %d, want 4", h.NPixels())
	}
	if got := h.CountAt(0, 100>>Coarseness); got != 2 {
		t.Errorf("CountAt(R, slot) = %d, want 2", got)
	}
	if got := h.CountAt(0, 0); got != 2 {
		t.Errorf("CountAt(R, 0) = %d, want 2", got)
	}
}

func TestGammaCurveMonotonicAndBounded(t *testing.T) {
	c := NewGammaCurve(0.45, 4.5, 0xf000)
	prev := uint16(0)
	for i := 0; i < 0x10000; i += 97 {
		v := c.At(uint16(i))
		if v < prev {
			t.Fatalf("gamma curve not monotonic at i=%d: %d < %d", i, v, prev)
		}
		prev = v
	}
	if c.At(0) != 0 {
		t.Errorf("At(0) = %d, want 0", c.At(0))
	}
	if c.At(0xffff) != 0xffff {
		t.Errorf("At(0xffff) = %d, want 0xffff (past white point, clamped to limit)", c.At(0xffff))
	}
}

func TestGammaCurveFromHistogramPicksBrightestChannel(t *testing.T) {
	im := rawimage.NewRGBImage(1, 100, nil)
	for row := 0; row < 100; row++ {
		im.Set(row, 0, rawimage.RGBPixel{R: 60000, G: 1000, B: 1000})
	}
	h := BuildHistogram(im)
	c := NewGammaCurveFromHistogram(h)

	if c.At(60000) == 0 {
		t.Fatalf("a near-white input should not collapse to 0")
	}
	// White comes from R (60000); had G or B (1000) been picked, every
	// value above 1000 would already be clamped to 0xffff.
	if c.At(30000) == 0xffff {
		t.Fatalf("At(30000) saturated: white point was not taken from the brightest channel")
	}
}
