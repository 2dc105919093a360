package rawimage

import "fmt"

// Point is a pixel coordinate, or a relative offset between two of them.
type Point struct {
	Row, Col int
}

func (p Point) Add(q Point) Point { return Point{p.Row + q.Row, p.Col + q.Col} }
func (p Point) Sub(q Point) Point { return Point{p.Row - q.Row, p.Col - q.Col} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }
