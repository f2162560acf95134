package commands

import (
	"fmt"
	"sync"

	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	// terminal cells are about twice as tall as wide
	cellWidth = 2
	left      = 2
	top       = 2
)

var renderMutex sync.Mutex

// render draws the whole frame. It may be called from the game timer and
// from the input loop.
func render(frame api.Frame, help string) error {
	renderMutex.Lock()
	defer renderMutex.Unlock()

	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	bottom := top + frame.Height + 1
	renderTitle(left, top, len(frame.Snake))
	renderBoard(frame.Width, top, bottom, left)
	renderSnake(left, top, frame.Snake)
	renderFood(left, top, frame.Food)
	renderOutcome(left, bottom+1, frame)
	tbprint(left, bottom+2, defaultColor, defaultColor, help)

	return termbox.Flush()
}

func renderSnake(left, top int, body []rules.Food) {
	for i, b := range body {
		color := colorFor(b.Category)
		ch := ' '
		if i == 0 {
			ch = '▓'
		}
		setGridCell(left, top, b.Point, ch, color, color)
	}
}

func renderFood(left, top int, food *rules.Food) {
	if food == nil {
		return
	}
	setGridCell(left, top, food.Point, '●', colorFor(food.Category), bgColor)
}

func setGridCell(left, top int, p rules.Point, ch rune, fg, bg termbox.Attribute) {
	x := left + p.X*cellWidth
	y := top + p.Y + 1
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, y, ch, fg, bg)
		ch = ' '
	}
}

func renderBoard(width, top, bottom, left int) {
	right := left + width*cellWidth
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width*cellWidth, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width*cellWidth, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top, length int) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake! - Length %d", length))
}

func renderOutcome(left, y int, frame api.Frame) {
	switch {
	case frame.Win:
		tbprint(left, y, termbox.ColorGreen|termbox.AttrBold, defaultColor, "You win! The grid is full.")
	case frame.Die:
		tbprint(left, y, termbox.ColorRed|termbox.AttrBold, defaultColor, "Game over.")
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
