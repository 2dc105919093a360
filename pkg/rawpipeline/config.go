package rawpipeline

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

// Config holds everything a Run needs that isn't part of the raw bytes
// themselves: output format, which demosaic algorithm to use, how
// chatty to be, and any manual per-camera color data for sensors the
// built-in registry doesn't know about.
type Config struct {
	ColorDepth   int // 8 or 16
	Verbosity    int
	Interpolator string // "ahd" or "bilinear"

	// CameraOverrides lets a caller supply ColorConversionData for a
	// camera model the built-in registry has no entry for, keyed by the
	// exact Exif.Image.Model string.
	CameraOverrides map[string]rawcamera.ColorConversionData

	// DebugPixel, if set, names a pixel position to snapshot at every
	// pipeline stage and log (as a PixelSnapshot) when Verbosity > 0.
	DebugPixel *rawimage.Point
}

func NewConfig() Config {
	return Config{
		ColorDepth:      16,
		Interpolator:    "ahd",
		CameraOverrides: map[string]rawcamera.ColorConversionData{},
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %w", filename, err)
	}
	return newConfigFromYaml(contents)
}

func (c Config) AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("can't marshal config yaml: %v\n", err)
	}
	return string(b)
}
