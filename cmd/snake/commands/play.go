package commands

import (
	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/rules"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const playHelp = "arrows/wasd/hjkl: move  space: pause  r: restart  q: quit"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal",
	RunE: func(*cobra.Command, []string) error {
		if err := setupLogging(true); err != nil {
			return err
		}
		return play()
	},
}

func drawTerminal(snake *rules.Snake, food *rules.Food) {
	if err := render(api.NewFrame(snake, food), playHelp); err != nil {
		log.WithError(err).Error("unable to render frame")
	}
}

func play() error {
	g, err := game.New(gameConfig(), game.WithDraw(drawTerminal))
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	g.Ready()
	defer g.Pause()

	eventQueue := setupEventQueue()
	for ev := range eventQueue {
		switch ev.Type {
		case termbox.EventError:
			return ev.Err
		case termbox.EventResize:
			if err := render(api.FrameFromSnapshot(g.Snapshot()), playHelp); err != nil {
				return err
			}
		case termbox.EventKey:
			if isQuit(ev) {
				return nil
			}
			switch {
			case ev.Key == termbox.KeySpace:
				togglePause(g)
			case ev.Ch == 'r':
				g.Ready()
			default:
				if d, ok := keyToDirection(ev); ok {
					g.Go(d)
				}
			}
		}
	}
	return nil
}

func togglePause(g *game.Game) {
	if g.Status() == game.StatusRunning {
		g.Pause()
		return
	}
	g.Resume()
}
