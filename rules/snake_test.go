package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func snakeAt(grid Grid, points ...Point) *Snake {
	s := &Snake{grid: grid}
	for _, p := range points {
		s.Body = append(s.Body, &Food{Point: p, Category: "red"})
	}
	return s
}

func bodyOf(s *Snake) []Point {
	points := []Point{}
	for _, b := range s.Body {
		points = append(points, b.Point)
	}
	return points
}

func TestSnake_MoveEats(t *testing.T) {
	s := snakeAt(NewGrid(10, 10), Point{X: 5, Y: 5})

	result, head := s.Move(Right, NewFood(6, 5, "green"))
	require.Equal(t, MoveAte, result)
	require.Equal(t, Point{X: 6, Y: 5}, head.Point)
	require.Equal(t, "green", head.Category)
	require.Equal(t, []Point{{X: 6, Y: 5}, {X: 5, Y: 5}}, bodyOf(s))
}

func TestSnake_MoveAdvances(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  []Point
	}{
		{
			Direction: Up,
			Expected:  []Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}},
		},
		{
			Direction: Down,
			Expected:  []Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 5}},
		},
		{
			Direction: Right,
			Expected:  []Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}},
		},
	}

	for _, test := range tests {
		s := snakeAt(NewGrid(10, 10), Point{X: 5, Y: 5}, Point{X: 4, Y: 5}, Point{X: 3, Y: 5})
		result, head := s.Move(test.Direction, NewFood(0, 0, "red"))
		require.Equal(t, MoveAdvanced, result, "Direction: %s", test.Direction)
		require.Equal(t, test.Expected[0], head.Point, "Direction: %s", test.Direction)
		require.Equal(t, test.Expected, bodyOf(s), "Direction: %s", test.Direction)
		require.True(t, s.Head() == head, "head must be the first segment")
	}
}

func TestSnake_MoveKeepsSegmentCategories(t *testing.T) {
	s := &Snake{
		grid: NewGrid(10, 10),
		Body: []*Food{
			NewFood(5, 5, "red"),
			NewFood(4, 5, "blue"),
		},
	}

	_, _ = s.Move(Down, nil)
	require.Equal(t, "red", s.Body[0].Category)
	require.Equal(t, "blue", s.Body[1].Category)
	require.Equal(t, Point{X: 5, Y: 5}, s.Body[1].Point)
}

func TestSnake_MoveRejectedWall(t *testing.T) {
	tests := []struct {
		Start     Point
		Direction Direction
	}{
		{Start: Point{X: 0, Y: 0}, Direction: Left},
		{Start: Point{X: 0, Y: 0}, Direction: Up},
		{Start: Point{X: 9, Y: 4}, Direction: Right},
		{Start: Point{X: 4, Y: 9}, Direction: Down},
	}

	for _, test := range tests {
		s := snakeAt(NewGrid(10, 10), test.Start)
		result, head := s.Move(test.Direction, nil)
		require.Equal(t, MoveRejected, result)
		require.Nil(t, head)
		require.Equal(t, []Point{test.Start}, bodyOf(s))
		require.Equal(t, DeathCauseWallCollision, s.CollisionCause(test.Direction))
	}
}

func TestSnake_MoveRejectedBody(t *testing.T) {
	s := snakeAt(NewGrid(10, 10),
		Point{X: 5, Y: 5},
		Point{X: 5, Y: 6},
		Point{X: 4, Y: 6},
		Point{X: 4, Y: 5},
	)
	before := bodyOf(s)

	result, _ := s.Move(Down, nil)
	require.Equal(t, MoveRejected, result)
	require.Equal(t, before, bodyOf(s))

	// the tail cell counts as occupied even though it would be vacated
	result, _ = s.Move(Left, nil)
	require.Equal(t, MoveRejected, result)
	require.Equal(t, DeathCauseSnakeSelfCollision, s.CollisionCause(Left))
	require.Equal(t, "", s.CollisionCause(Up))
}

func TestSnake_MoveReverseIntoNeck(t *testing.T) {
	s := snakeAt(NewGrid(10, 10), Point{X: 6, Y: 5}, Point{X: 5, Y: 5})
	result, _ := s.Move(Left, nil)
	require.Equal(t, MoveRejected, result)
}

func TestSnake_TerminalSnakeDoesNotMove(t *testing.T) {
	for _, s := range []*Snake{
		{grid: NewGrid(10, 10), Body: []*Food{NewFood(5, 5, "")}, Die: true},
		{grid: NewGrid(10, 10), Body: []*Food{NewFood(5, 5, "")}, Win: true},
	} {
		result, _ := s.Move(Right, NewFood(6, 5, ""))
		require.Equal(t, MoveRejected, result)
		require.Equal(t, []Point{{X: 5, Y: 5}}, bodyOf(s))
	}
}

func TestSnake_LengthConserved(t *testing.T) {
	s := snakeAt(NewGrid(6, 6), Point{X: 0, Y: 0})
	food := NewFood(2, 0, "red")

	moves := []Direction{Right, Right, Down, Down, Left, Left, Up}
	lengths := []int{1, 2, 2, 2, 2, 2}
	for i, d := range moves[:len(lengths)] {
		result, head := s.Move(d, food)
		require.NotEqual(t, MoveRejected, result, "move %d", i)
		require.Equal(t, lengths[i], s.Len(), "move %d", i)
		require.True(t, s.Head() == head)
	}

	result, _ := s.Move(Up, food)
	require.Equal(t, MoveAdvanced, result)
	require.Equal(t, 2, s.Len())
}

func TestSnake_HeadTail(t *testing.T) {
	s := snakeAt(NewGrid(10, 10), Point{X: 5, Y: 5}, Point{X: 4, Y: 5})
	require.Equal(t, Point{X: 5, Y: 5}, s.Head().Point)
	require.Equal(t, Point{X: 4, Y: 5}, s.Tail().Point)

	empty := &Snake{}
	require.Nil(t, empty.Head())
	require.Nil(t, empty.Tail())
}

func TestSnake_Occupies(t *testing.T) {
	s := snakeAt(NewGrid(10, 10), Point{X: 1, Y: 1}, Point{X: 1, Y: 2})
	require.True(t, s.Occupies(1, 1))
	require.True(t, s.Occupies(1, 2))
	require.False(t, s.Occupies(2, 2))
}

func TestNewSnake(t *testing.T) {
	start := Food{Point: Point{X: 3, Y: 4}, Category: "blue"}
	s := NewSnake(NewGrid(5, 5), start)
	require.Equal(t, 1, s.Len())
	require.Equal(t, start, *s.Head())
	require.False(t, s.Die)
	require.False(t, s.Win)

	// the snake owns its own copy of the start food
	s.Head().X = 0
	require.Equal(t, 3, start.X)
}
