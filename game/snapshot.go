package game

import "github.com/gridsnake/engine/rules"

// Snapshot is a copy of the game state that is safe to hand to other
// goroutines.
type Snapshot struct {
	ID        string       `json:"id"`
	Status    Status       `json:"status"`
	Turn      int          `json:"turn"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Direction string       `json:"direction"`
	Snake     []rules.Food `json:"snake"`
	Food      *rules.Food  `json:"food"`
	Die       bool         `json:"die"`
	Win       bool         `json:"win"`
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		ID:        g.id,
		Status:    g.status,
		Turn:      g.turn,
		Width:     g.grid.Width,
		Height:    g.grid.Height,
		Direction: g.direction.String(),
		Snake:     []rules.Food{},
	}
	if g.snake != nil {
		s.Snake = CopyBody(g.snake)
		s.Die = g.snake.Die
		s.Win = g.snake.Win
	}
	if g.food != nil {
		f := *g.food
		s.Food = &f
	}
	return s
}

// CopyBody returns the snake segments by value, head first.
func CopyBody(snake *rules.Snake) []rules.Food {
	body := make([]rules.Food, 0, snake.Len())
	for _, b := range snake.Body {
		body = append(body, *b)
	}
	return body
}
