package rawimage

// Color indexes into a pixel's channels. 0=R(or the lone Gray channel),
// 1=G, 2=B. A raw filters mask can also produce 3 ("the other green"),
// which callers fold back to 1 before this index is used anywhere past the
// NEF decoder; see rawcamera.FoldFilters.
type Color int

const (
	R Color = 0
	G Color = 1
	B Color = 2
)

// GrayPixel holds a single sensor sample.
type GrayPixel struct {
	V uint16
}

func (p GrayPixel) At(c Color) uint16     { return p.V }
func (p *GrayPixel) Set(c Color, v uint16) { p.V = v }
func (p GrayPixel) NColors() int           { return 1 }

// RGBPixel holds three 16-bit channels, ordered R, G, B.
type RGBPixel struct {
	R, G, B uint16
}

func (p RGBPixel) At(c Color) uint16 {
	switch c {
	case R:
		return p.R
	case G:
		return p.G
	default:
		return p.B
	}
}

func (p *RGBPixel) Set(c Color, v uint16) {
	switch c {
	case R:
		p.R = v
	case G:
		p.G = v
	default:
		p.B = v
	}
}

func (p RGBPixel) NColors() int { return 3 }

// Array returns the pixel as [R,G,B], for feeding a ColorConverter.
func (p RGBPixel) Array() [3]uint16 { return [3]uint16{p.R, p.G, p.B} }

// LABPixel holds a CIELAB triple, ordered L, A, B. Values are scaled 64x
// integers, per the reference cube-root lookup (see pkg/ahd).
type LABPixel struct {
	L, A, B int16
}

func (p LABPixel) At(c Color) int16 {
	switch c {
	case R: // L
		return p.L
	case G: // A
		return p.A
	default: // B
		return p.B
	}
}

func (p *LABPixel) Set(c Color, v int16) {
	switch c {
	case R:
		p.L = v
	case G:
		p.A = v
	default:
		p.B = v
	}
}

// HomogeneityPixel holds the directional vote counts the AHD fuse step
// computes at each pixel: H and V are the per-direction homogeneity counts
// at this pixel (0..4), and Diff is the 3x3-neighborhood sum of H minus the
// 3x3-neighborhood sum of V, the value refillImage actually branches on.
type HomogeneityPixel struct {
	H, V int8
	Diff int8
}
