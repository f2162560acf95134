package api

import (
	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/rules"
)

// Frame is the message pushed to websocket subscribers after every draw.
type Frame struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Snake  []rules.Food `json:"snake"`
	Food   *rules.Food  `json:"food"`
	Die    bool         `json:"die"`
	Win    bool         `json:"win"`
}

// Input is a direction change sent by a websocket client. Either field may
// be used, Direction wins when both are set.
type Input struct {
	Direction string `json:"direction,omitempty"`
	KeyCode   int    `json:"keyCode,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (in Input) toDirection() (rules.Direction, bool) {
	if in.Direction != "" {
		return rules.ParseDirection(in.Direction)
	}
	return rules.DirectionForKey(in.KeyCode)
}

// NewFrame copies the state handed to a draw hook.
func NewFrame(snake *rules.Snake, food *rules.Food) Frame {
	grid := snake.Grid()
	f := Frame{
		Width:  grid.Width,
		Height: grid.Height,
		Snake:  game.CopyBody(snake),
		Die:    snake.Die,
		Win:    snake.Win,
	}
	if food != nil {
		copied := *food
		f.Food = &copied
	}
	return f
}

// FrameFromSnapshot converts a game snapshot into a frame.
func FrameFromSnapshot(s game.Snapshot) Frame {
	return Frame{
		Width:  s.Width,
		Height: s.Height,
		Snake:  s.Snake,
		Food:   s.Food,
		Die:    s.Die,
		Win:    s.Win,
	}
}
