package ppm

import (
	"bytes"
	"testing"

	"github.com/abworrall/nefraw/pkg/rawimage"
)

func TestWriteReadRoundTrip16Bit(t *testing.T) {
	im := rawimage.NewRGBImage(3, 2, nil)
	im.Set(0, 0, rawimage.RGBPixel{R: 1000, G: 2000, B: 3000})
	im.Set(1, 1, rawimage.RGBPixel{R: 65535, G: 0, B: 12345})

	var buf bytes.Buffer
	if err := Write(&buf, im, 16); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("got %dx%d, want 3x2", got.Width(), got.Height())
	}
	if got.At(0, 0) != im.At(0, 0) || got.At(1, 1) != im.At(1, 1) {
		t.Fatalf("round trip changed pixel values: got (0,0)=%+v (1,1)=%+v", got.At(0, 0), got.At(1, 1))
	}
}

func TestWrite8BitTruncatesToMSB(t *testing.T) {
	im := rawimage.NewRGBImage(1, 1, nil)
	im.Set(0, 0, rawimage.RGBPixel{R: 0xabcd, G: 0x1234, B: 0xffff})

	var buf bytes.Buffer
	if err := Write(&buf, im, 8); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	p := got.At(0, 0)
	if p.R != 0xab00 || p.G != 0x1200 || p.B != 0xff00 {
		t.Fatalf("8-bit round trip should keep only MSB: got %+v", p)
	}
}

func TestReadRejectsNonP6(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("P5\n1 1\n255\n\x00")))
	if err == nil {
		t.Fatalf("expected an error for non-P6 magic")
	}
}
