package rawcamera

import "github.com/abworrall/nefraw/pkg/rawexif"

// CameraData binds a detected Camera to the Exif data of one particular
// file, giving the decode pipeline a single object to pull raw geometry,
// the Bayer filter mask, and color-conversion data from.
type CameraData struct {
	camera Camera
	exif   rawexif.ExifData
}

// NewCameraData detects the camera from e and binds the two together.
// It never fails: an unrecognized model falls through to NullCamera.
func NewCameraData(e rawexif.ExifData) *CameraData {
	return &CameraData{camera: DetectCamera(e), exif: e}
}

func (cd *CameraData) Camera() Camera { return cd.camera }
func (cd *CameraData) NColors() int   { return cd.camera.NColors() }

func (cd *CameraData) ColorConversionData() ColorConversionData {
	return cd.camera.ColorConversionData()
}

// RawWidth and RawHeight are the undecoded sensor dimensions, read straight
// from the embedded preview/raw subimage's TIFF tags; this module does not
// model active-area cropping, so Width/Height below are aliases of these.
func (cd *CameraData) RawWidth() int  { return rawexif.MustInt(cd.exif, "Exif.SubImage2.ImageWidth") }
func (cd *CameraData) RawHeight() int { return rawexif.MustInt(cd.exif, "Exif.SubImage2.ImageLength") }
func (cd *CameraData) Width() int     { return cd.RawWidth() }
func (cd *CameraData) Height() int    { return cd.RawHeight() }

// Orientation returns the EXIF orientation tag (1-8). Nothing in this
// module's pixel pipeline rotates or flips pixels; it is exposed for a
// caller that wants to apply the rotation itself after writing a PPM.
func (cd *CameraData) Orientation() int {
	if !cd.exif.Has("Exif.Image.Orientation") {
		return 1
	}
	v, err := cd.exif.Int("Exif.Image.Orientation")
	if err != nil {
		return 1
	}
	return v
}

// Filters returns the 32-bit cyclic Bayer color mask used by
// FilterColorAt: 16 two-bit slots, one per (row mod 8, col mod 2)
// combination, built by replicating the sensor's 2x2 CFA tile.
func (cd *CameraData) Filters() uint32 {
	pattern := rawexif.MustBytes(cd.exif, "Exif.SubImage2.CFAPattern")
	var tl, tr, bl, br byte
	if len(pattern) >= 4 {
		tl, tr, bl, br = pattern[0], pattern[1], pattern[2], pattern[3]
	}

	var filters uint32
	for row := 0; row < 8; row++ {
		for col := 0; col < 2; col++ {
			var c byte
			switch {
			case row%2 == 0 && col == 0:
				c = tl
			case row%2 == 0 && col == 1:
				c = tr
			case row%2 == 1 && col == 0:
				c = bl
			default:
				c = br
			}
			idx := ((row<<1)&14 | (col & 1)) << 1
			filters |= uint32(c) << idx
		}
	}
	return filters
}

// FilterColorAt returns the color plane (0..3) at a raw pixel coordinate,
// per the classic Bayer filter-mask lookup.
func FilterColorAt(filters uint32, row, col int) int {
	return int((filters >> uint((((row<<1)&14|(col&1))<<1))) & 3)
}

// FoldFilters collapses the "second green" plane (color index 3) that the
// raw decoder may produce back onto plane 1, the convention every filter
// and the AHD interpolator downstream of decode expect.
func FoldFilters(filters uint32) uint32 {
	return filters &^ ((filters & 0x55555555) << 1)
}
