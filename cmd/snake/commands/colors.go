package commands

import (
	"sync"

	termbox "github.com/nsf/termbox-go"
)

var namedColors = map[string]termbox.Attribute{
	"black":   termbox.ColorBlack,
	"red":     termbox.ColorRed,
	"green":   termbox.ColorGreen,
	"yellow":  termbox.ColorYellow,
	"blue":    termbox.ColorBlue,
	"magenta": termbox.ColorMagenta,
	"cyan":    termbox.ColorCyan,
	"white":   termbox.ColorWhite,
}

var defaultPalette = []termbox.Attribute{
	termbox.ColorRed,
	termbox.ColorGreen,
	termbox.ColorBlue,
	termbox.ColorYellow,
	termbox.ColorMagenta,
	termbox.ColorCyan,
}

var palette = defaultPalette

var colorIndex = 0

var assigned = map[string]termbox.Attribute{}

var colorMutex = &sync.Mutex{}

// colorFor returns the terminal colour of a food category. Categories that
// are not colour names get the next palette colour, and keep it.
func colorFor(category string) termbox.Attribute {
	if c, ok := namedColors[category]; ok {
		return c
	}

	colorMutex.Lock()
	defer colorMutex.Unlock()

	if c, ok := assigned[category]; ok {
		return c
	}
	c := palette[colorIndex]
	colorIndex = (colorIndex + 1) % len(palette)
	assigned[category] = c
	return c
}
