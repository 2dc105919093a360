// Package nefdecode implements the Nikon NEF compressed raw decoder: a
// predictor chain driven by a per-file Huffman table and linearization
// curve, producing a GrayImage of un-demosaiced sensor samples.
package nefdecode

import (
	"fmt"
	"io"

	"github.com/abworrall/nefraw/pkg/huffman"
	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawexif"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

func getBitsPerSample(e rawexif.ExifData) int { return rawexif.MustInt(e, "Exif.SubImage2.BitsPerSample") }
func getDataOffset(e rawexif.ExifData) int    { return rawexif.MustInt(e, "Exif.SubImage2.StripOffsets") }

func createDecoder(src io.ReadSeeker, key int) *huffman.Decoder {
	return huffman.NewDecoder(src, nikonTree[key])
}

// decodeDiff reads one Huffman leaf and its trailing raw bit group and
// turns them into a signed predictor delta, per Nikon's packed
// (length, shift) leaf encoding.
func decodeDiff(dec *huffman.Decoder) int {
	i := int(dec.NextHuffmanValue())
	length := i & 0xf
	shl := i >> 4

	bits := int(dec.NextBitsValue(length - shl))

	diff := ((bits << 1) | 1) << shl >> 1

	if diff&(1<<(length-1)) == 0 {
		sub := 1 << length
		if shl == 0 {
			sub--
		}
		diff -= sub
	}
	return diff
}

// Decode reads a Nikon NEF's compressed grayscale sensor image from src,
// positioned anywhere (it seeks to the strip offset itself), using e for
// camera detection and the per-file linearization/Huffman parameters. The
// returned image's filters mask has already had the "second green" plane
// folded onto green, matching how every downstream filter expects it.
func Decode(src io.ReadSeeker, e rawexif.ExifData) (img *rawimage.GrayImage, err error) {
	defer rawexif.Recover(&err)

	cd := rawcamera.NewCameraData(e)
	bitsPerSample := getBitsPerSample(e)
	if bitsPerSample != 12 {
		return nil, &UnsupportedFormatError{
			Detail: fmt.Sprintf("only 12-bit-lossy NEFs are supported, got %d bits/sample", bitsPerSample),
		}
	}

	width, height := cd.RawWidth(), cd.RawHeight()

	curve, err := newLinearizationCurve(e, bitsPerSample)
	if err != nil {
		return nil, err
	}

	filters := rawcamera.FoldFilters(cd.Filters())
	image := rawimage.NewGrayImage(width, height, cd, filters)

	if _, err := src.Seek(int64(getDataOffset(e)), io.SeekStart); err != nil {
		return nil, &IoError{Op: "seek to strip offset", Err: err}
	}

	dec := createDecoder(src, 0)
	defer func() { dec.Close() }()

	vpred := curve.vpred
	var hpred [2]uint16
	min := 0
	max := curve.max

	for row := 0; row < height; row++ {
		rowPixels := image.Row(row)

		if curve.split != 0 && row == int(curve.split) {
			dec.Close()
			dec = createDecoder(src, 1)
			min = 16
			max += 32
		}

		col := 0
		for ; col < 2; col++ {
			diff := decodeDiff(dec)
			vpred[row&1][col] = uint16(int(vpred[row&1][col]) + diff)
			hpred[col] = vpred[row&1][col]
			if int(hpred[col]) >= max-min {
				return nil, &PredictorOutOfRangeError{Row: row, Col: col, Value: int(hpred[col]), Max: max, Min: min}
			}
			rowPixels[col].V = curve.table[hpred[col]]
		}

		for ; col < width; col++ {
			colIsOdd := col & 1
			diff := decodeDiff(dec)
			hpred[colIsOdd] = uint16(int(hpred[colIsOdd]) + diff)
			if int(hpred[colIsOdd]) >= max-min {
				return nil, &PredictorOutOfRangeError{Row: row, Col: col, Value: int(hpred[colIsOdd]), Max: max, Min: min}
			}
			rowPixels[col].V = curve.table[hpred[colIsOdd]]
		}
	}

	return image, nil
}
