// Package rawexif defines the narrow Exif metadata facade the decode
// pipeline consumes, plus two implementations: an in-memory fake for tests
// and a github.com/rwcarlsen/goexif-backed reader for real NEF files.
package rawexif

import "fmt"

// ExifData is the minimal key/value facade the pipeline needs from whatever
// Exif parser a driver chooses to wire up.
type ExifData interface {
	Has(key string) bool
	String(key string) (string, error)
	Bytes(key string) ([]byte, error)
	Int(key string) (int, error)
	Float(key string) (float64, error)
}

// KeyMissingError reports a required Exif entry that was not present.
type KeyMissingError struct {
	Key string
}

func (e *KeyMissingError) Error() string {
	return fmt.Sprintf("exif key missing: %s", e.Key)
}

// TypeMismatchError reports an Exif entry present but not convertible to
// the primitive type the caller asked for.
type TypeMismatchError struct {
	Key      string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("exif key %q could not be read as %s", e.Key, e.Expected)
}

// MustString, MustBytes, MustInt and MustFloat are convenience wrappers used
// by callers (camera detection, NEF decode setup) that have no recovery
// path for a missing or mistyped key; they panic with a typed error that
// the decode entry point recovers (see Recover) and returns for the driver
// to report, matching the "fatal at decode
// setup" policy of spec.md §7.
func MustString(e ExifData, key string) string {
	if !e.Has(key) {
		panic(&KeyMissingError{Key: key})
	}
	v, err := e.String(key)
	if err != nil {
		panic(&TypeMismatchError{Key: key, Expected: "string"})
	}
	return v
}

func MustBytes(e ExifData, key string) []byte {
	if !e.Has(key) {
		panic(&KeyMissingError{Key: key})
	}
	v, err := e.Bytes(key)
	if err != nil {
		panic(&TypeMismatchError{Key: key, Expected: "bytes"})
	}
	return v
}

func MustInt(e ExifData, key string) int {
	if !e.Has(key) {
		panic(&KeyMissingError{Key: key})
	}
	v, err := e.Int(key)
	if err != nil {
		panic(&TypeMismatchError{Key: key, Expected: "int"})
	}
	return v
}

func MustFloat(e ExifData, key string) float64 {
	if !e.Has(key) {
		panic(&KeyMissingError{Key: key})
	}
	v, err := e.Float(key)
	if err != nil {
		panic(&TypeMismatchError{Key: key, Expected: "float"})
	}
	return v
}

// Recover turns a panic raised by the Must* helpers back into an error,
// for the one place (the top-level decode entry point) that needs to
// convert "fatal" Exif problems into a normal Go error return.
func Recover(errp *error) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			*errp = err
			return
		}
		panic(r)
	}
}
