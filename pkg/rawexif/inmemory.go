package rawexif

import "strconv"

// InMemoryExifData is a settable fake ExifData, for tests that need to
// drive camera detection or NEF decode setup without a real file.
type InMemoryExifData struct {
	strings map[string]string
	bytes   map[string][]byte
	ints    map[string]int
	floats  map[string]float64
}

func NewInMemoryExifData() *InMemoryExifData {
	return &InMemoryExifData{
		strings: map[string]string{},
		bytes:   map[string][]byte{},
		ints:    map[string]int{},
		floats:  map[string]float64{},
	}
}

func (m *InMemoryExifData) SetString(key, v string) *InMemoryExifData { m.strings[key] = v; return m }
func (m *InMemoryExifData) SetBytes(key string, v []byte) *InMemoryExifData { m.bytes[key] = v; return m }
func (m *InMemoryExifData) SetInt(key string, v int) *InMemoryExifData { m.ints[key] = v; return m }
func (m *InMemoryExifData) SetFloat(key string, v float64) *InMemoryExifData { m.floats[key] = v; return m }

func (m *InMemoryExifData) Has(key string) bool {
	_, ok := m.strings[key]
	if ok {
		return true
	}
	_, ok = m.bytes[key]
	if ok {
		return true
	}
	_, ok = m.ints[key]
	if ok {
		return true
	}
	_, ok = m.floats[key]
	return ok
}

func (m *InMemoryExifData) String(key string) (string, error) {
	if v, ok := m.strings[key]; ok {
		return v, nil
	}
	if v, ok := m.ints[key]; ok {
		return strconv.Itoa(v), nil
	}
	return "", &TypeMismatchError{Key: key, Expected: "string"}
}

func (m *InMemoryExifData) Bytes(key string) ([]byte, error) {
	if v, ok := m.bytes[key]; ok {
		return v, nil
	}
	return nil, &TypeMismatchError{Key: key, Expected: "bytes"}
}

func (m *InMemoryExifData) Int(key string) (int, error) {
	if v, ok := m.ints[key]; ok {
		return v, nil
	}
	return 0, &TypeMismatchError{Key: key, Expected: "int"}
}

func (m *InMemoryExifData) Float(key string) (float64, error) {
	if v, ok := m.floats[key]; ok {
		return v, nil
	}
	if v, ok := m.ints[key]; ok {
		return float64(v), nil
	}
	return 0, &TypeMismatchError{Key: key, Expected: "float"}
}
