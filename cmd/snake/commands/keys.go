package commands

import (
	"github.com/gridsnake/engine/rules"
	termbox "github.com/nsf/termbox-go"
)

var arrowKeys = map[termbox.Key]rules.Direction{
	termbox.KeyArrowLeft:  rules.Left,
	termbox.KeyArrowUp:    rules.Up,
	termbox.KeyArrowRight: rules.Right,
	termbox.KeyArrowDown:  rules.Down,
}

var letterKeys = map[rune]rules.Direction{
	'a': rules.Left,
	'w': rules.Up,
	'd': rules.Right,
	's': rules.Down,
	'h': rules.Left,
	'k': rules.Up,
	'l': rules.Right,
	'j': rules.Down,
}

// keyToDirection maps arrow keys, WASD and hjkl to a direction. Other keys
// return false.
func keyToDirection(ev termbox.Event) (rules.Direction, bool) {
	if ev.Type != termbox.EventKey {
		return rules.Direction{}, false
	}
	if ev.Ch != 0 {
		d, ok := letterKeys[ev.Ch]
		return d, ok
	}
	d, ok := arrowKeys[ev.Key]
	return d, ok
}

func isQuit(ev termbox.Event) bool {
	return ev.Type == termbox.EventKey &&
		(ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q')
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
