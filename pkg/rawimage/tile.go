package rawimage

// ImageTile is a reusable scratch window over a conceptually larger image:
// AHD interpolation walks the full raster in fixed-size tiles, and rather
// than allocate a new tile per iteration, a worker moves one tile's
// top-left corner and reuses its backing storage. Border and Margin follow
// refinery's image_tile.h: Border is the width of the full image's outer
// band that the tiled pass leaves to a separate edge fill, Margin is how
// many of a tile's own edge pixels are scratch overlap with its neighbors
// and should not be trusted once written. A tile's bounds stop
// Border-Margin pixels short of each image edge.
type ImageTile[P any] struct {
	imageSize Point
	topLeft   Point
	size      Point
	edgeSize  int
	pixels    []P
}

func NewImageTile[P any](imageSize, size Point, border, margin int) *ImageTile[P] {
	return &ImageTile[P]{
		imageSize: imageSize,
		size:      size,
		edgeSize:  border - margin,
		pixels:    make([]P, size.Row*size.Col),
	}
}

// SetTopLeft repositions the tile within the conceptual full image, for
// reuse across iterations of a tile-grid walk.
func (t *ImageTile[P]) SetTopLeft(p Point) { t.topLeft = p }

func (t *ImageTile[P]) TopLeft() Point { return t.topLeft }
func (t *ImageTile[P]) Size() Point    { return t.size }

// Top, Left, Bottom and Right are the tile's usable bounds in full-image
// coordinates, clamped to stay Border-Margin pixels in from each image
// edge even if the tile's nominal position or size would overhang it.
func (t *ImageTile[P]) Top() int {
	if t.topLeft.Row > t.edgeSize {
		return t.topLeft.Row
	}
	return t.edgeSize
}

func (t *ImageTile[P]) Left() int {
	if t.topLeft.Col > t.edgeSize {
		return t.topLeft.Col
	}
	return t.edgeSize
}

func (t *ImageTile[P]) Bottom() int {
	limit := t.imageSize.Row - t.edgeSize
	want := t.topLeft.Row + t.size.Row
	if want < limit {
		return want
	}
	return limit
}

func (t *ImageTile[P]) Right() int {
	limit := t.imageSize.Col - t.edgeSize
	want := t.topLeft.Col + t.size.Col
	if want < limit {
		return want
	}
	return limit
}

func (t *ImageTile[P]) offset(imagePoint Point) int {
	rel := imagePoint.Sub(t.topLeft)
	return rel.Row*t.size.Col + rel.Col
}

func (t *ImageTile[P]) At(imagePoint Point) P {
	return t.pixels[t.offset(imagePoint)]
}

func (t *ImageTile[P]) Set(imagePoint Point, v P) {
	t.pixels[t.offset(imagePoint)] = v
}

// Ptr returns a pointer into the tile's backing storage, so a caller can
// mutate fields of P in place without a Set round trip.
func (t *ImageTile[P]) Ptr(imagePoint Point) *P {
	return &t.pixels[t.offset(imagePoint)]
}
