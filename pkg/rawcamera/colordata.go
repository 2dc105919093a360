package rawcamera

import "github.com/abworrall/nefraw/pkg/rawmath"

// ColorConversionData holds everything downstream filters need to turn raw
// sensor counts into scaled, color-managed RGB: the black/white points and
// the four 4x3 / 3x4 matrices relating the camera's native color space to
// XYZ and to RGB. Rows/columns beyond a camera's own NColors are zero and
// unused; every matrix is sized for up to 4 colors so a single ColorConverter
// shape works for 3- and 4-color sensors alike.
type ColorConversionData struct {
	Black, Maximum int

	// XyzToCamera and RgbToCamera are [colors][3]: they take an XYZ or RGB
	// triple and produce a native-camera sample per color plane.
	XyzToCamera [4][3]float64
	RgbToCamera [4][3]float64

	// CameraToRgb and CameraToXyz are [3][colors]: they take a native-camera
	// sample and produce an RGB or XYZ triple.
	CameraToRgb [3][4]float64
	CameraToXyz [3][4]float64

	CameraMultipliers   [4]float64
	ScalingMultipliers  [4]float64
}

// deriveColorConversionData runs the dcraw-style derivation: from a
// camera's XYZ-to-camera matrix (as published by profiling tools and baked
// into the camera table), compute everything else needed to scale and then
// color-convert raw samples.
func deriveColorConversionData(black, maximum int, nColors int, xyzToCamera [4][3]float64) ColorConversionData {
	ccd := ColorConversionData{
		Black:       black,
		Maximum:     maximum,
		XyzToCamera: xyzToCamera,
	}

	// rgbToCamera = xyzToCamera * rgbToXyz
	for i := 0; i < nColors; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += xyzToCamera[i][k] * rawmath.RgbToXyz[3*k+j]
			}
			ccd.RgbToCamera[i][j] = sum
		}
	}

	// Normalize every row of rgbToCamera to sum to 1; the inverse of that
	// row sum is the per-color white-balance multiplier.
	for i := 0; i < nColors; i++ {
		var sum float64
		for j := 0; j < 3; j++ {
			sum += ccd.RgbToCamera[i][j]
		}
		for j := 0; j < 3; j++ {
			ccd.RgbToCamera[i][j] /= sum
		}
		ccd.CameraMultipliers[i] = 1 / sum
	}

	minMult := ccd.CameraMultipliers[0]
	for i := 1; i < nColors; i++ {
		if ccd.CameraMultipliers[i] < minMult {
			minMult = ccd.CameraMultipliers[i]
		}
	}
	for i := 0; i < nColors; i++ {
		ccd.CameraMultipliers[i] /= minMult
		ccd.ScalingMultipliers[i] = ccd.CameraMultipliers[i] * 65535 / float64(maximum)
	}

	in := make([][3]float64, nColors)
	for i := 0; i < nColors; i++ {
		in[i] = ccd.RgbToCamera[i]
	}
	out := dcrawPseudoinverse(in, nColors)
	for i := 0; i < 3; i++ {
		for j := 0; j < nColors; j++ {
			ccd.CameraToRgb[i][j] = out[i][j]
		}
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < nColors; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += rawmath.RgbToXyz[3*i+k] * ccd.CameraToRgb[k][j]
			}
			ccd.CameraToXyz[i][j] = sum / rawmath.D65White[i]
		}
	}

	return ccd
}

// dcrawPseudoinverse computes the Moore-Penrose-style pseudo-inverse of an
// nColors-by-3 matrix via the normal equations and an unpivoted Gauss-Jordan
// elimination, exactly the way dcraw's color-matrix derivation does it. It
// exists instead of calling into a linear-algebra library so that the
// rounding behaviour matches the reference bit for bit; pkg/rawcamera's
// tests cross-check the result against gonum's general-purpose inverse.
func dcrawPseudoinverse(in [][3]float64, size int) [3][4]float64 {
	var work [3][6]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			if j == i+3 {
				work[i][j] = 1
			}
		}
		for j := 0; j < 3; j++ {
			for k := 0; k < size; k++ {
				work[i][j] += in[k][i] * in[k][j]
			}
		}
	}

	for i := 0; i < 3; i++ {
		num := work[i][i]
		for j := 0; j < 6; j++ {
			work[i][j] /= num
		}
		for k := 0; k < 3; k++ {
			if k == i {
				continue
			}
			num = work[k][i]
			for j := 0; j < 6; j++ {
				work[k][j] -= work[i][j] * num
			}
		}
	}

	var out [3][4]float64
	for i := 0; i < size; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += work[j][k+3] * in[i][k]
			}
			out[j][i] = sum
		}
	}
	return out
}
