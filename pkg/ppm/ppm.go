// Package ppm reads and writes the P6 (binary RGB) Portable Pixmap format
// the pipeline uses both as a test fixture format and as its own output.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/abworrall/nefraw/pkg/rawimage"
)

const headerSize = 22 // usually overkill, mirrors the reference unpacker

// Read parses a P6 PPM from r and returns it as an RGBImage. 8-bit input
// pixels are promoted to 16-bit by placing the byte in the high half
// (c<<8), matching the reference unpacker's copyChars.
func Read(r io.Reader) (*rawimage.RGBImage, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxValue int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxValue); err != nil {
		return nil, fmt.Errorf("ppm: read header: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("ppm: unsupported magic %q, want P6", magic)
	}
	// The header is followed by exactly one whitespace byte before pixel
	// data begins; Fscan already consumed up to (but not including) it.
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("ppm: read header separator: %w", err)
	}

	is16Bit := maxValue == 65535
	im := rawimage.NewRGBImage(width, height, nil)

	nValues := width * height * 3
	if is16Bit {
		if err := copyShorts(br, nValues, im); err != nil {
			return nil, err
		}
	} else {
		if err := copyChars(br, nValues, im); err != nil {
			return nil, err
		}
	}
	return im, nil
}

func copyShorts(r io.Reader, nValues int, im *rawimage.RGBImage) error {
	buf := make([]byte, 2)
	pixels := im.Pixels()
	for i := 0; i < nValues; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("ppm: read pixel data: %w", err)
		}
		v := uint16(buf[0])<<8 | uint16(buf[1])
		setChannel(pixels, i, v)
	}
	return nil
}

func copyChars(r io.Reader, nValues int, im *rawimage.RGBImage) error {
	buf := make([]byte, 1)
	pixels := im.Pixels()
	for i := 0; i < nValues; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("ppm: read pixel data: %w", err)
		}
		v := uint16(buf[0]) << 8
		setChannel(pixels, i, v)
	}
	return nil
}

func setChannel(pixels []rawimage.RGBPixel, flatIndex int, v uint16) {
	pixelIdx := flatIndex / 3
	switch flatIndex % 3 {
	case 0:
		pixels[pixelIdx].R = v
	case 1:
		pixels[pixelIdx].G = v
	default:
		pixels[pixelIdx].B = v
	}
}

// Write emits im as a P6 PPM at the given color depth (8 or 16 bits).
// 16-bit output is big-endian, matching Read's input convention.
func Write(w io.Writer, im *rawimage.RGBImage, colorDepth int) error {
	maxValue := (1 << colorDepth) - 1
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", im.Width(), im.Height(), maxValue); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	bw := bufio.NewWriter(w)
	width, height := im.Width(), im.Height()
	for row := 0; row < height; row++ {
		rowPixels := im.Row(row)
		for col := 0; col < width; col++ {
			p := rowPixels[col]
			for _, v := range [3]uint16{p.R, p.G, p.B} {
				if colorDepth == 16 {
					if err := bw.WriteByte(byte(v >> 8)); err != nil {
						return fmt.Errorf("ppm: write pixel data: %w", err)
					}
					if err := bw.WriteByte(byte(v)); err != nil {
						return fmt.Errorf("ppm: write pixel data: %w", err)
					}
				} else {
					if err := bw.WriteByte(byte(v >> 8)); err != nil {
						return fmt.Errorf("ppm: write pixel data: %w", err)
					}
				}
			}
		}
	}
	return bw.Flush()
}
