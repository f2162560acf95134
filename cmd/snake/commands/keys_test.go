package commands

import (
	"testing"

	"github.com/gridsnake/engine/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestKeyToDirection(t *testing.T) {
	tests := []struct {
		Event    termbox.Event
		Expected rules.Direction
		OK       bool
	}{
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, Expected: rules.Left, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, Expected: rules.Up, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, Expected: rules.Right, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, Expected: rules.Down, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'w'}, Expected: rules.Up, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'j'}, Expected: rules.Down, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'x'}},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}},
		{Event: termbox.Event{Type: termbox.EventResize, Key: termbox.KeyArrowLeft}},
	}

	for _, test := range tests {
		d, ok := keyToDirection(test.Event)
		require.Equal(t, test.OK, ok, "%+v", test.Event)
		require.Equal(t, test.Expected, d, "%+v", test.Event)
	}
}

func TestIsQuit(t *testing.T) {
	require.True(t, isQuit(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}))
	require.True(t, isQuit(termbox.Event{Type: termbox.EventKey, Ch: 'q'}))
	require.False(t, isQuit(termbox.Event{Type: termbox.EventKey, Ch: 'w'}))
}
