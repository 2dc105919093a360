package rawexif

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// GoExifData wraps goexif's exif.Exif and implements ExifData against the
// dotted key names spec.md's External Interfaces section names
// (Exif.Group.Tag), translating them into goexif's exif.FieldName lookups.
type GoExifData struct {
	x *exif.Exif
}

// Decode parses NEF/TIFF Exif segments out of r.
func Decode(r io.Reader) (*GoExifData, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode exif: %w", err)
	}
	return &GoExifData{x: x}, nil
}

// tagName strips the "Exif.Group." prefix this package's callers use and
// returns the bare tag goexif indexes fields by.
func tagName(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[i+1:]
	}
	return key
}

func (g *GoExifData) field(key string) (*tiff.Tag, error) {
	tag, err := g.x.Get(exif.FieldName(tagName(key)))
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (g *GoExifData) Has(key string) bool {
	_, err := g.field(key)
	return err == nil
}

func (g *GoExifData) String(key string) (string, error) {
	tag, err := g.field(key)
	if err != nil {
		return "", &KeyMissingError{Key: key}
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", &TypeMismatchError{Key: key, Expected: "string"}
	}
	return s, nil
}

func (g *GoExifData) Bytes(key string) ([]byte, error) {
	tag, err := g.field(key)
	if err != nil {
		return nil, &KeyMissingError{Key: key}
	}
	// goexif stores UNDEFINED-type tags (LinearizationTable, CFAPattern) as
	// a raw byte string; everything else is exposed per-component.
	if tag.Type == tiff.DTAscii || tag.Count == 0 {
		return nil, &TypeMismatchError{Key: key, Expected: "bytes"}
	}
	if tag.Type == tiff.DTUndefined {
		return append([]byte(nil), tag.Val...), nil
	}
	buf := make([]byte, 0, tag.Count)
	for i := 0; i < int(tag.Count); i++ {
		v, err := tag.Int(i)
		if err != nil {
			return nil, &TypeMismatchError{Key: key, Expected: "bytes"}
		}
		buf = append(buf, byte(v))
	}
	return buf, nil
}

func (g *GoExifData) Int(key string) (int, error) {
	tag, err := g.field(key)
	if err != nil {
		return 0, &KeyMissingError{Key: key}
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, &TypeMismatchError{Key: key, Expected: "int"}
	}
	return v, nil
}

func (g *GoExifData) Float(key string) (float64, error) {
	tag, err := g.field(key)
	if err != nil {
		return 0, &KeyMissingError{Key: key}
	}
	r, err := tag.Rat(0)
	if err != nil {
		v, err2 := tag.Int(0)
		if err2 != nil {
			return 0, &TypeMismatchError{Key: key, Expected: "float"}
		}
		return float64(v), nil
	}
	f, _ := r.Float64()
	return f, nil
}

// ShortsBigEndian decodes a run of big-endian uint16 values, used when a
// caller needs LinearizationTable's sub-structure rather than its raw bytes.
func ShortsBigEndian(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return out
}
