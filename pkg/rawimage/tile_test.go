package rawimage

import "testing"

func TestImageTileBoundsClampToEdge(t *testing.T) {
	// border=5, margin=3 -> edgeSize=2, matching the AHD interpolator's
	// own tile geometry (see pkg/ahd).
	tile := NewImageTile[RGBPixel](Point{100, 100}, Point{30, 30}, 5, 3)

	tile.SetTopLeft(Point{0, 0})
	if tile.Top() != 2 || tile.Left() != 2 {
		t.Fatalf("top-left tile should clamp to edgeSize: top=%d left=%d", tile.Top(), tile.Left())
	}

	tile.SetTopLeft(Point{70, 70})
	if tile.Bottom() != 98 || tile.Right() != 98 {
		t.Fatalf("bottom-right tile should clamp to imageSize-edgeSize: bottom=%d right=%d", tile.Bottom(), tile.Right())
	}

	tile.SetTopLeft(Point{40, 40})
	if tile.Top() != 40 || tile.Left() != 40 {
		t.Fatalf("interior tile should not clamp: top=%d left=%d", tile.Top(), tile.Left())
	}
}

func TestImageTileSetAtRoundTrip(t *testing.T) {
	tile := NewImageTile[LABPixel](Point{100, 100}, Point{20, 20}, 5, 3)
	tile.SetTopLeft(Point{10, 10})

	p := Point{15, 12}
	tile.Set(p, LABPixel{L: 64, A: -1, B: 2})
	got := tile.At(p)
	if got != (LABPixel{L: 64, A: -1, B: 2}) {
		t.Fatalf("got %+v", got)
	}

	tile.Ptr(p).A = 99
	if tile.At(p).A != 99 {
		t.Fatalf("Ptr() did not alias backing storage")
	}
}
