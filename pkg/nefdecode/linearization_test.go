package nefdecode

import (
	"testing"

	"github.com/abworrall/nefraw/pkg/rawexif"
)

func TestLinearizationCurveExpandsAndParsesSplit(t *testing.T) {
	raw := []byte{
		0x44, 0x20, // version0, version1 -> split present
		0, 0, 0, 0, 0, 0, 0, 0, // vpred[2][2], all zero
		0x00, 0x03, // nShorts = 3
		0x00, 0x00, // rawTable[0] = 0
		0x00, 0x64, // rawTable[1] = 100
		0x00, 0xc8, // rawTable[2] = 200
		0x00, 0x05, // split = 5
	}
	e := rawexif.NewInMemoryExifData().SetBytes("Exif.Nikon3.LinearizationTable", raw)

	curve, err := newLinearizationCurve(e, 4) // tableSize = 16
	if err != nil {
		t.Fatalf("newLinearizationCurve: %v", err)
	}

	if curve.split != 5 {
		t.Errorf("split = %d, want 5", curve.split)
	}
	if len(curve.table) != 16 {
		t.Fatalf("table length = %d, want 16", len(curve.table))
	}

	want := []uint16{0, 12, 25, 37, 50, 62, 75, 87, 100, 112, 125, 137, 150, 162, 175, 187}
	for i, w := range want {
		if curve.table[i] != w {
			t.Errorf("table[%d] = %d, want %d", i, curve.table[i], w)
		}
	}

	if curve.max != 15 {
		t.Errorf("max = %d, want 15", curve.max)
	}
}

func TestLinearizationCurveNoSplitWithoutVersionMatch(t *testing.T) {
	raw := []byte{
		0x44, 0x1c, // version1 != 0x20 -> no split
		0, 0, 0, 0, 0, 0, 0, 0,
		0x00, 0x03,
		0x00, 0x00,
		0x00, 0x64,
		0x00, 0xc8,
	}
	e := rawexif.NewInMemoryExifData().SetBytes("Exif.Nikon3.LinearizationTable", raw)

	curve, err := newLinearizationCurve(e, 4)
	if err != nil {
		t.Fatalf("newLinearizationCurve: %v", err)
	}
	if curve.split != 0 {
		t.Errorf("split = %d, want 0", curve.split)
	}
}
