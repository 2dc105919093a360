package rawfilters

import (
	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

// ConvertToRgb maps every pixel of a camera-native-color RGBImage (the
// AHD interpolator's output) through the camera's cameraToRgb matrix,
// producing sRGB. It mutates im in place.
func ConvertToRgb(im *rawimage.RGBImage, ccd rawcamera.ColorConversionData) {
	matrix := make([][]float64, 3)
	for i := range matrix {
		matrix[i] = ccd.CameraToRgb[i][:]
	}
	conv := NewColorConverter(matrix)

	width, height := im.Width(), im.Height()
	for row := 0; row < height; row++ {
		rowPixels := im.Row(row)
		for col := 0; col < width; col++ {
			p := rowPixels[col]
			in := []float64{float64(p.R), float64(p.G), float64(p.B)}
			out := conv.Convert(in)
			rowPixels[col] = rawimage.RGBPixel{
				R: signExtendClamp16(int32(out[0])),
				G: signExtendClamp16(int32(out[1])),
				B: signExtendClamp16(int32(out[2])),
			}
		}
	}
}
