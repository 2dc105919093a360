package rawcamera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestDeriveColorConversionDataNikonD5000(t *testing.T) {
	ccd := deriveColorConversionData(0, 0xf00, 3, [4][3]float64{
		{0.7309, -0.1403, -0.0519},
		{-0.8474, 1.6008, 0.2622},
		{-0.2433, 0.2826, 0.8064},
	})

	if ccd.Black != 0 || ccd.Maximum != 0xf00 {
		t.Fatalf("black/maximum not carried through: %+v", ccd)
	}

	for i := 0; i < 3; i++ {
		var sum float64
		for j := 0; j < 3; j++ {
			sum += ccd.RgbToCamera[i][j]
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("rgbToCamera row %d does not sum to 1: %v", i, sum)
		}
	}

	min := ccd.CameraMultipliers[0]
	for i := 1; i < 3; i++ {
		if ccd.CameraMultipliers[i] < min {
			min = ccd.CameraMultipliers[i]
		}
	}
	if math.Abs(min-1) > 1e-9 {
		t.Errorf("minimum cameraMultiplier should normalize to 1, got %v", min)
	}
}

// TestPseudoinverseAgainstGonum cross-checks the hand-rolled Gauss-Jordan
// pseudo-inverse against gonum's general matrix inverse, independently of
// the dcraw-matching rounding path that production code takes.
func TestPseudoinverseAgainstGonum(t *testing.T) {
	in := [][3]float64{
		{0.851, -0.065, -0.226},
		{-0.382, 1.182, 0.239},
		{-0.047, 0.109, 0.754},
	}
	got := dcrawPseudoinverse(in, 3)

	a := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, in[i][j])
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		t.Fatalf("gonum inverse failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := inv.At(i, j)
			if math.Abs(got[i][j]-want) > 1e-6 {
				t.Errorf("out[%d][%d] = %v, gonum inverse gives %v", i, j, got[i][j], want)
			}
		}
	}
}
