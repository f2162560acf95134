package rules

// Grid is the fixed rectangular playing field.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid. The dimensions are taken as given, callers are
// responsible for keeping them at 2 or more.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Contains reports whether x,y lies inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
