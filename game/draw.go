package game

import (
	"github.com/gridsnake/engine/rules"
	log "github.com/sirupsen/logrus"
)

// DrawFunc presents the game. It is called with the live snake and food (nil
// once the grid is full) while the game lock is held, so it must not mutate
// them or call back into the Game.
type DrawFunc func(snake *rules.Snake, food *rules.Food)

// LogDraw is the default hook, it logs the state at debug level.
func LogDraw(snake *rules.Snake, food *rules.Food) {
	log.WithFields(log.Fields{
		"Snake": snake,
		"Food":  food,
	}).Debug("draw")
}

// MultiDraw returns a hook calling each non nil hook in order.
func MultiDraw(draws ...DrawFunc) DrawFunc {
	return func(snake *rules.Snake, food *rules.Food) {
		for _, d := range draws {
			if d != nil {
				d(snake, food)
			}
		}
	}
}
