package rawfilters

import (
	"testing"

	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

func TestColorConverterBasicMultiply(t *testing.T) {
	conv := NewColorConverter([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	out := conv.Convert([]float64{1, 2, 3})
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("identity matrix convert changed values: %v", out)
	}
}

func TestColorConverterTreatsShortInputAsZero(t *testing.T) {
	conv := NewColorConverter([][]float64{
		{1, 1, 1, 1},
		{0, 0, 0, 1},
	})
	out := conv.Convert([]float64{2, 3, 5}) // missing the 4th input
	if out[0] != 10 {
		t.Fatalf("out[0] = %v, want 10 (2+3+5+0)", out[0])
	}
	if out[1] != 0 {
		t.Fatalf("out[1] = %v, want 0 (missing 4th input treated as zero)", out[1])
	}
}

func TestColorConverter4To3MatchesSpecScenario(t *testing.T) {
	conv := NewColorConverter([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	out := conv.Convert([]float64{1, 2, 3, 4})
	if out[0] != 30 || out[1] != 70 || out[2] != 110 {
		t.Fatalf("out = %v, want [30 70 110]", out)
	}
}

func TestClamp16SaturatesBothWays(t *testing.T) {
	if clamp16(-5) != 0 {
		t.Errorf("clamp16(-5) should be 0")
	}
	if clamp16(0x10000) != 0xffff {
		t.Errorf("clamp16(0x10000) should saturate to 0xffff")
	}
	if clamp16(100) != 100 {
		t.Errorf("clamp16(100) should pass through")
	}
}

func TestSignExtendClamp16SaturatesBothWays(t *testing.T) {
	if signExtendClamp16(-5) != 0 {
		t.Errorf("signExtendClamp16(-5) should be 0")
	}
	if signExtendClamp16(0x1ffff) != 0xffff {
		t.Errorf("signExtendClamp16(0x1ffff) should saturate to 0xffff")
	}
	if signExtendClamp16(1234) != 1234 {
		t.Errorf("signExtendClamp16(1234) should pass through")
	}
}

func TestScaleColorsAppliesPerColorMultiplier(t *testing.T) {
	im := rawimage.NewGrayImage(2, 2, nil, 0x61616161)
	im.Set(0, 0, rawimage.GrayPixel{V: 100})
	im.Set(0, 1, rawimage.GrayPixel{V: 100})

	var ccd rawcamera.ColorConversionData
	ccd.ScalingMultipliers = [4]float64{2, 1, 1, 1}

	ScaleColors(im, ccd)

	v00 := im.At(0, 0).V
	v01 := im.At(0, 1).V
	if v00 == v01 {
		t.Fatalf("adjacent columns should have different multipliers applied: %d vs %d", v00, v01)
	}
}

func TestApplyGammaIdentityLookup(t *testing.T) {
	im := rawimage.NewRGBImage(1, 1, nil)
	im.Set(0, 0, rawimage.RGBPixel{R: 10, G: 20, B: 30})
	ApplyGamma(im, identityLookup{})
	if got := im.At(0, 0); got != (rawimage.RGBPixel{R: 10, G: 20, B: 30}) {
		t.Fatalf("identity gamma changed pixel: %+v", got)
	}
}

type identityLookup struct{}

func (identityLookup) At(v uint16) uint16 { return v }
