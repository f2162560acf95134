package commands

import (
	"testing"

	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func resetPalette(colors []termbox.Attribute) {
	colorMutex.Lock()
	defer colorMutex.Unlock()

	palette = colors
	colorIndex = 0
	assigned = map[string]termbox.Attribute{}
}

func TestColorForNamedCategory(t *testing.T) {
	require.Equal(t, termbox.ColorRed, colorFor("red"))
	require.Equal(t, termbox.ColorCyan, colorFor("cyan"))
}

func TestColorForUnknownCategory(t *testing.T) {
	resetPalette([]termbox.Attribute{termbox.ColorYellow, termbox.ColorBlue})
	defer resetPalette(defaultPalette)

	require.Equal(t, termbox.ColorYellow, colorFor("apple"))
	require.Equal(t, termbox.ColorBlue, colorFor("pear"))
	// wrap around
	require.Equal(t, termbox.ColorYellow, colorFor("plum"))
	// categories keep their colour
	require.Equal(t, termbox.ColorBlue, colorFor("pear"))
}
