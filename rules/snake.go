package rules

import (
	"fmt"
	"strings"
)

// MoveResult is the outcome of Snake.Move.
type MoveResult int

const (
	// MoveRejected means the head would leave the grid or hit the body. The
	// snake was not changed.
	MoveRejected MoveResult = iota
	// MoveAte means the head landed on the food and the snake grew by one.
	MoveAte
	// MoveAdvanced means every segment moved one step, length unchanged.
	MoveAdvanced
)

func (r MoveResult) String() string {
	switch r {
	case MoveAte:
		return "ate"
	case MoveAdvanced:
		return "advanced"
	default:
		return "rejected"
	}
}

// Snake is an ordered body of segments, head first. Each segment keeps the
// category of the food it grew from.
type Snake struct {
	Body []*Food
	Die  bool
	Win  bool

	grid Grid
}

// NewSnake creates a snake of length 1 on the start cell.
func NewSnake(grid Grid, start Food) *Snake {
	return &Snake{
		Body: []*Food{&start},
		grid: grid,
	}
}

// Head returns the first segment in the body
func (s *Snake) Head() *Food {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[0]
}

// Tail returns the last segment in the body
func (s *Snake) Tail() *Food {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[len(s.Body)-1]
}

// Grid returns the grid the snake moves on.
func (s *Snake) Grid() Grid {
	return s.grid
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Terminal reports whether the snake has died or won.
func (s *Snake) Terminal() bool {
	return s.Die || s.Win
}

// Occupies reports whether any segment is at x,y.
func (s *Snake) Occupies(x, y int) bool {
	for _, b := range s.Body {
		if b.Equals(x, y) {
			return true
		}
	}
	return false
}

// next returns the cell the head would enter moving in direction d.
func (s *Snake) next(d Direction) Point {
	head := s.Head().Point
	head.Translate(d)
	return head
}

// CollisionCause returns the death cause a move in direction d would record,
// or "" if the move is legal.
func (s *Snake) CollisionCause(d Direction) string {
	if len(s.Body) == 0 {
		return ""
	}
	return checkForDeath(s.grid, s, s.next(d))
}

// Move the snake 1 space in the given direction. A move onto the body or off
// the grid is rejected and leaves the snake untouched. A move onto the food
// prepends a copy of it, otherwise every segment takes the place of the one
// ahead of it. The new head is returned for accepted moves.
func (s *Snake) Move(d Direction, food *Food) (MoveResult, *Food) {
	if s.Terminal() || len(s.Body) == 0 {
		return MoveRejected, nil
	}

	head := s.next(d)
	if checkForDeath(s.grid, s, head) != "" {
		return MoveRejected, nil
	}

	if food != nil && head.Equal(food.Point) {
		eaten := *food
		s.Body = append([]*Food{&eaten}, s.Body...)
		return MoveAte, s.Body[0]
	}

	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i].Point = s.Body[i-1].Point
	}
	s.Body[0].Point = head
	return MoveAdvanced, s.Body[0]
}

func (s *Snake) String() string {
	points := make([]string, 0, len(s.Body))
	for _, b := range s.Body {
		points = append(points, b.Point.String())
	}
	return fmt.Sprintf("snake[%s] die=%t win=%t", strings.Join(points, " "), s.Die, s.Win)
}
