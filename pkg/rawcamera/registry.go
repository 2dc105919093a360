package rawcamera

import (
	"fmt"
	"sync"

	"github.com/abworrall/nefraw/pkg/rawexif"
)

// Camera describes everything the pipeline needs to know about one sensor
// model: how many color planes it has, and how to get from its native
// color space to RGB/XYZ.
type Camera interface {
	Name() string
	NColors() int
	CanHandle(e rawexif.ExifData) bool
	ColorConversionData() ColorConversionData
}

// UnknownCameraError describes a file whose Exif.Image.Model string no
// registered Camera recognizes. DetectCamera never returns it: the registry
// ends with NullCamera, which accepts every file.
type UnknownCameraError struct {
	Model string
}

func (e *UnknownCameraError) Error() string {
	return fmt.Sprintf("unknown camera model: %q", e.Model)
}

type tableCamera struct {
	name    string
	model   string
	nColors int
	ccd     ColorConversionData
}

func (c *tableCamera) Name() string    { return c.name }
func (c *tableCamera) NColors() int    { return c.nColors }
func (c *tableCamera) ColorConversionData() ColorConversionData { return c.ccd }

func (c *tableCamera) CanHandle(e rawexif.ExifData) bool {
	if !e.Has("Exif.Image.Model") {
		return false
	}
	model, err := e.String("Exif.Image.Model")
	if err != nil {
		return false
	}
	return model == c.model
}

// nullCamera is the catch-all fallback every registry ends with: a 3-color
// identity conversion, so an unrecognized camera still decodes (with
// unmanaged color) rather than failing outright. CanHandle always returns
// true, matching refinery's NullCamera.
type nullCamera struct{}

func (nullCamera) Name() string { return "NullCamera" }
func (nullCamera) NColors() int { return 3 }
func (nullCamera) CanHandle(rawexif.ExifData) bool { return true }
func (nullCamera) ColorConversionData() ColorConversionData {
	return deriveColorConversionData(0, 0xffff, 3, [4][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
}

var (
	registryOnce sync.Once
	registry     []Camera
)

func buildRegistry() {
	registry = []Camera{
		&tableCamera{
			name:    "NikonD5000",
			model:   "NIKON D5000",
			nColors: 3,
			ccd: deriveColorConversionData(0, 0xf00, 3, [4][3]float64{
				{0.7309, -0.1403, -0.0519},
				{-0.8474, 1.6008, 0.2622},
				{-0.2433, 0.2826, 0.8064},
			}),
		},
		&tableCamera{
			name:    "NikonD90",
			model:   "NIKON D90",
			nColors: 3,
			ccd: deriveColorConversionData(0, 0xf00, 3, [4][3]float64{
				{0.7309, -0.1403, -0.0519},
				{-0.8474, 1.6008, 0.2622},
				{-0.2434, 0.2826, 0.8064},
			}),
		},
		nullCamera{},
	}
}

// DetectCamera walks the built-in registry in order and returns the first
// Camera that claims the Exif data, falling back to NullCamera. The
// registry is built once, lazily, behind sync.Once (refinery guards the
// equivalent C++ singleton with an OpenMP critical section; a goroutine
// program reaches for sync.Once instead).
func DetectCamera(e rawexif.ExifData) Camera {
	registryOnce.Do(buildRegistry)
	for _, c := range registry {
		if c.CanHandle(e) {
			return c
		}
	}
	panic("unreachable: NullCamera always matches")
}
