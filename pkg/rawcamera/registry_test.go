package rawcamera

import (
	"testing"

	"github.com/abworrall/nefraw/pkg/rawexif"
)

func TestDetectCameraNikonD5000(t *testing.T) {
	e := rawexif.NewInMemoryExifData().SetString("Exif.Image.Model", "NIKON D5000")
	c := DetectCamera(e)
	if c.Name() != "NikonD5000" {
		t.Fatalf("got %s, want NikonD5000", c.Name())
	}
}

func TestDetectCameraFallsBackToNullCamera(t *testing.T) {
	e := rawexif.NewInMemoryExifData().SetString("Exif.Image.Model", "SOME OTHER CAMERA")
	c := DetectCamera(e)
	if c.Name() != "NullCamera" {
		t.Fatalf("got %s, want NullCamera", c.Name())
	}
	if c.NColors() != 3 {
		t.Fatalf("NullCamera should report 3 colors, got %d", c.NColors())
	}
}

func TestDetectCameraNoModelTagFallsBack(t *testing.T) {
	e := rawexif.NewInMemoryExifData()
	c := DetectCamera(e)
	if c.Name() != "NullCamera" {
		t.Fatalf("got %s, want NullCamera", c.Name())
	}
}

func TestFilterColorAtBayerPeriod(t *testing.T) {
	// 0x61616161 is a canonical GRBG-family dcraw filters constant; verify
	// it reproduces a 2x2-periodic pattern (the only property this module
	// relies on, since we cannot bit-compare against a real NEF fixture).
	const filters = 0x61616161
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			got := FilterColorAt(filters, row, col)
			want := FilterColorAt(filters, row%2, col%2)
			if got != want {
				t.Errorf("FilterColorAt(%d,%d)=%d not periodic with (%d,%d)=%d", row, col, got, row%2, col%2, want)
			}
		}
	}
}

func TestFoldFiltersRemovesPlaneThree(t *testing.T) {
	// Build a mask that uses color 3 ("second green") in some slots and
	// confirm folding replaces every 3 with a 1.
	var filters uint32
	for row := 0; row < 8; row++ {
		for col := 0; col < 2; col++ {
			c := 1
			if row%4 == 0 {
				c = 3
			}
			idx := ((row<<1)&14 | (col & 1)) << 1
			filters |= uint32(c) << idx
		}
	}
	folded := FoldFilters(filters)
	for row := 0; row < 8; row++ {
		for col := 0; col < 2; col++ {
			if FilterColorAt(folded, row, col) == 3 {
				t.Fatalf("folded filters still has plane 3 at (%d,%d)", row, col)
			}
		}
	}
}

func TestCameraDataGeometryAndFilters(t *testing.T) {
	e := rawexif.NewInMemoryExifData().
		SetString("Exif.Image.Model", "NIKON D5000").
		SetInt("Exif.SubImage2.ImageWidth", 4352).
		SetInt("Exif.SubImage2.ImageLength", 2868).
		SetInt("Exif.Image.Orientation", 1).
		SetBytes("Exif.SubImage2.CFAPattern", []byte{0, 1, 1, 2})

	cd := NewCameraData(e)
	if cd.Width() != 4352 || cd.Height() != 2868 {
		t.Fatalf("got %dx%d, want 4352x2868", cd.Width(), cd.Height())
	}
	if cd.Orientation() != 1 {
		t.Fatalf("got orientation %d, want 1", cd.Orientation())
	}
	if cd.NColors() != 3 {
		t.Fatalf("got %d colors, want 3", cd.NColors())
	}
	filters := cd.Filters()
	if FilterColorAt(filters, 0, 0) != 0 || FilterColorAt(filters, 0, 1) != 1 {
		t.Fatalf("top-left 2x2 of filters mask does not reflect CFAPattern")
	}
}
