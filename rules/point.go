package rules

import "fmt"

// Point is a cell on the grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Translate moves the point one step in the given direction.
func (p *Point) Translate(d Direction) {
	p.X += d.DX
	p.Y += d.DY
}

// Equals checks if the point is at the x,y coordinate
func (p Point) Equals(x, y int) bool {
	return p.X == x && p.Y == y
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.Equals(other.X, other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
