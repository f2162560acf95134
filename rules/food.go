package rules

import (
	"fmt"
	"math/rand"
)

// Food is a point the snake can eat. Category is an opaque tag used by
// renderers only.
type Food struct {
	Point
	Category string `json:"category"`
}

// NewFood creates food at x,y.
func NewFood(x, y int, category string) *Food {
	return &Food{Point: Point{X: x, Y: y}, Category: category}
}

func (f *Food) String() string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", f.Point, f.Category)
}

// PlaceFood picks a free cell and a category uniformly at random. It returns
// nil when the snake leaves no free cell on the grid.
func PlaceFood(rnd *rand.Rand, grid Grid, snake *Snake, categories []string) *Food {
	openPoints := FreeCells(grid, snake)
	if len(openPoints) == 0 {
		return nil
	}

	p := openPoints[rnd.Intn(len(openPoints))]
	var category string
	if len(categories) > 0 {
		category = categories[rnd.Intn(len(categories))]
	}
	return &Food{Point: p, Category: category}
}

// FreeCells returns every cell of the grid not occupied by the snake. A nil
// snake leaves the whole grid free.
func FreeCells(grid Grid, snake *Snake) []Point {
	occupied := 0
	if snake != nil {
		occupied = snake.Len()
	}
	numCandidatePoints := grid.Cells() - occupied
	if numCandidatePoints < 0 {
		numCandidatePoints = 0
	}

	candidatePoints := make([]Point, 0, numCandidatePoints)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if snake != nil && snake.Occupies(x, y) {
				continue
			}
			candidatePoints = append(candidatePoints, Point{X: x, Y: y})
		}
	}
	return candidatePoints
}
