package rawimage

import "github.com/abworrall/nefraw/pkg/rawcamera"

// GrayImage is a raw, single-channel-per-pixel raster straight off the
// sensor: every pixel holds one color plane's sample, and which plane
// depends on (row,col) via the camera's Bayer filter mask.
type GrayImage struct {
	width, height int
	pixels        []GrayPixel
	camera        *rawcamera.CameraData
	filters       uint32
}

func NewGrayImage(width, height int, camera *rawcamera.CameraData, filters uint32) *GrayImage {
	return &GrayImage{
		width:   width,
		height:  height,
		pixels:  make([]GrayPixel, width*height),
		camera:  camera,
		filters: filters,
	}
}

func (im *GrayImage) Width() int                      { return im.width }
func (im *GrayImage) Height() int                      { return im.height }
func (im *GrayImage) Camera() *rawcamera.CameraData    { return im.camera }
func (im *GrayImage) Filters() uint32                  { return im.filters }

// ColorAt returns which of the (up to 4) color planes the sensor sample at
// (row, col) belongs to, per the camera's cyclic Bayer mask.
func (im *GrayImage) ColorAt(row, col int) Color {
	return Color(rawcamera.FilterColorAt(im.filters, row, col))
}

func (im *GrayImage) At(row, col int) GrayPixel { return im.pixels[row*im.width+col] }
func (im *GrayImage) AtPoint(p Point) GrayPixel { return im.At(p.Row, p.Col) }

func (im *GrayImage) Set(row, col int, v GrayPixel) { im.pixels[row*im.width+col] = v }
func (im *GrayImage) SetPoint(p Point, v GrayPixel) { im.Set(p.Row, p.Col, v) }

// Row returns the slice of pixels backing image row r, for the predictor
// loops that walk a row left to right without recomputing an offset.
func (im *GrayImage) Row(r int) []GrayPixel {
	return im.pixels[r*im.width : (r+1)*im.width]
}

// Pixels exposes the full flat backing slice, row-major, for code that
// wants to iterate every pixel without caring about (row,col).
func (im *GrayImage) Pixels() []GrayPixel { return im.pixels }

// RGBImage is a three-channel raster: the demosaiced, color-converted, or
// gamma-applied stages of the pipeline all operate on one of these.
type RGBImage struct {
	width, height int
	pixels        []RGBPixel
	camera        *rawcamera.CameraData
	filters       uint32
}

func NewRGBImage(width, height int, camera *rawcamera.CameraData) *RGBImage {
	return &RGBImage{
		width:  width,
		height: height,
		pixels: make([]RGBPixel, width*height),
		camera: camera,
	}
}

// NewRGBImageWithFilters is used by the demosaic stage: the promoted,
// not-yet-interpolated working image still needs to know its Bayer
// pattern, which an already-converted RGBImage downstream does not.
func NewRGBImageWithFilters(width, height int, camera *rawcamera.CameraData, filters uint32) *RGBImage {
	im := NewRGBImage(width, height, camera)
	im.filters = filters
	return im
}

func (im *RGBImage) Filters() uint32 { return im.filters }

// ColorAt returns which Bayer color plane (row, col) belongs to. It is
// only meaningful on a working image that was constructed with filters
// set (NewRGBImageWithFilters); a post-demosaic RGBImage has no single
// "native" color per pixel and callers should not call this on one.
func (im *RGBImage) ColorAt(row, col int) Color {
	return Color(rawcamera.FilterColorAt(im.filters, row, col))
}

func (im *RGBImage) Width() int                   { return im.width }
func (im *RGBImage) Height() int                  { return im.height }
func (im *RGBImage) Camera() *rawcamera.CameraData { return im.camera }

func (im *RGBImage) At(row, col int) RGBPixel { return im.pixels[row*im.width+col] }
func (im *RGBImage) AtPoint(p Point) RGBPixel { return im.At(p.Row, p.Col) }

func (im *RGBImage) Set(row, col int, v RGBPixel) { im.pixels[row*im.width+col] = v }
func (im *RGBImage) SetPoint(p Point, v RGBPixel) { im.Set(p.Row, p.Col, v) }

func (im *RGBImage) Row(r int) []RGBPixel {
	return im.pixels[r*im.width : (r+1)*im.width]
}

func (im *RGBImage) Pixels() []RGBPixel { return im.pixels }

// LabImage is the CIELAB-space scratch raster the AHD interpolator builds
// per tile, in each of its two candidate (horizontal, vertical) flavours.
type LabImage struct {
	width, height int
	pixels        []LABPixel
}

func NewLabImage(width, height int) *LabImage {
	return &LabImage{width: width, height: height, pixels: make([]LABPixel, width*height)}
}

func (im *LabImage) Width() int  { return im.width }
func (im *LabImage) Height() int { return im.height }

func (im *LabImage) At(row, col int) LABPixel { return im.pixels[row*im.width+col] }
func (im *LabImage) AtPoint(p Point) LABPixel { return im.At(p.Row, p.Col) }

func (im *LabImage) Set(row, col int, v LABPixel) { im.pixels[row*im.width+col] = v }
func (im *LabImage) SetPoint(p Point, v LABPixel) { im.Set(p.Row, p.Col, v) }

func (im *LabImage) Row(r int) []LABPixel {
	return im.pixels[r*im.width : (r+1)*im.width]
}
