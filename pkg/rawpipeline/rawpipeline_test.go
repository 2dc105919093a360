package rawpipeline

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawexif"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

func TestConfigYamlRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.ColorDepth = 8
	cfg.Interpolator = "bilinear"
	cfg.Verbosity = 2

	got, err := newConfigFromYaml([]byte(cfg.AsYaml()))
	if err != nil {
		t.Fatalf("newConfigFromYaml: %v", err)
	}
	if got.ColorDepth != 8 || got.Interpolator != "bilinear" || got.Verbosity != 2 {
		t.Fatalf("round trip changed config: got %+v", got)
	}
}

func TestResolveColorConversionDataPrefersOverride(t *testing.T) {
	e := rawexif.NewInMemoryExifData().SetString("Exif.Image.Model", "SOME CUSTOM CAMERA")
	override := rawcamera.ColorConversionData{Black: 123}

	cfg := NewConfig()
	cfg.CameraOverrides["SOME CUSTOM CAMERA"] = override

	got := resolveColorConversionData(nil, e, cfg)
	if got.Black != 123 {
		t.Fatalf("expected override to win, got %+v", got)
	}
}

func TestPixelSnapshotStringMentionsEveryStage(t *testing.T) {
	snap := PixelSnapshot{
		Pos:        rawimage.Point{Row: 1, Col: 2},
		Raw:        1000,
		Scaled:     2000,
		Demosaiced: rawimage.RGBPixel{R: 3000, G: 4000, B: 5000},
		Converted:  rgbPixelToHDR(rawimage.RGBPixel{R: 3000, G: 4000, B: 5000}),
	}
	str := snap.String()
	for _, want := range []string{"Raw", "Scaled", "Demosaiced", "Converted"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() missing %q section:\n%s", want, str)
		}
	}
}

func TestRgbPixelToColorfulNormalizes(t *testing.T) {
	c := rgbPixelToColorful(rawimage.RGBPixel{R: 0xffff, G: 0, B: 0x7fff})
	if c.R != 1.0 || c.G != 0.0 {
		t.Fatalf("got %+v, want R=1.0 G=0.0", c)
	}
}

type closeTrackingWriter struct {
	bytes.Buffer
	closed bool
}

func (w *closeTrackingWriter) Close() error { w.closed = true; return nil }

func TestRunNeverOpensDestinationOnDecodeFailure(t *testing.T) {
	src := bytes.NewReader([]byte("not a nef file"))

	opened := false
	openDst := func() (io.WriteCloser, error) {
		opened = true
		return &closeTrackingWriter{}, nil
	}

	_, err := Run(src, openDst, NewConfig())
	if err == nil {
		t.Fatal("expected Run to fail on garbage input")
	}
	if opened {
		t.Fatal("Run opened the destination before a pipeline stage failed")
	}
}

func TestBuildChannelStatsOrdersQuantiles(t *testing.T) {
	im := rawimage.NewRGBImage(4, 1, nil)
	im.Set(0, 0, rawimage.RGBPixel{R: 100, G: 100, B: 100})
	im.Set(0, 1, rawimage.RGBPixel{R: 200, G: 200, B: 200})
	im.Set(0, 2, rawimage.RGBPixel{R: 300, G: 300, B: 300})
	im.Set(0, 3, rawimage.RGBPixel{R: 400, G: 400, B: 400})

	stats := BuildChannelStats(im)
	if stats.P50[0] > stats.P90[0] || stats.P90[0] > stats.P99[0] {
		t.Fatalf("quantiles out of order: %s", stats)
	}
}
