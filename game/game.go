// Package game drives a snake around a grid. It owns the grid, the snake and
// the pending food, runs the tick timer and hands every state change to a draw
// hook. Presentation and input binding live outside this package.
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gridsnake/engine/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoCategories is returned by New when no food category is configured.
	ErrNoCategories = errors.New("game: at least one food category is required")
)

const (
	// MinDimension is the smallest allowed grid width and height.
	MinDimension = 2
	// MinSpeed is the shortest allowed tick interval.
	MinSpeed = time.Millisecond
)

// Config describes a game. Invalid dimensions and speed are clamped.
type Config struct {
	Width      int
	Height     int
	Speed      time.Duration
	Categories []string
}

// Option customises a Game.
type Option func(*Game)

// WithDraw sets the draw hook.
func WithDraw(draw DrawFunc) Option {
	return func(g *Game) {
		if draw != nil {
			g.draw = draw
		}
	}
}

// WithRand sets the random source used to place food.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Game) {
		if rnd != nil {
			g.rand = rnd
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Game) {
		if logger != nil {
			g.log = logger
		}
	}
}

// Game is the snake engine. All methods are safe for concurrent use, every
// operation and every tick is serialised on one lock.
type Game struct {
	grid       rules.Grid
	speed      time.Duration
	categories []string
	draw       DrawFunc
	rand       *rand.Rand
	log        logrus.FieldLogger

	mu        sync.Mutex
	id        string
	snake     *rules.Snake
	food      *rules.Food
	direction rules.Direction
	status    Status
	turn      int
	stop      chan struct{}
}

// New creates a game from the config.
func New(cfg Config, opts ...Option) (*Game, error) {
	if len(cfg.Categories) == 0 {
		return nil, ErrNoCategories
	}
	for i, c := range cfg.Categories {
		if c == "" {
			return nil, errors.Wrapf(ErrNoCategories, "category %d is empty", i)
		}
	}

	g := &Game{
		grid:       rules.NewGrid(clamp(cfg.Width, MinDimension), clamp(cfg.Height, MinDimension)),
		speed:      cfg.Speed,
		categories: append([]string(nil), cfg.Categories...),
		draw:       LogDraw,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:        logrus.StandardLogger(),
		status:     StatusIdle,
	}
	if g.speed < MinSpeed {
		g.speed = MinSpeed
	}
	for _, opt := range opts {
		opt(g)
	}
	g.draw = instrumentDraw(g.draw)
	return g, nil
}

func clamp(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// Ready starts a new round: a snake of length 1 on a random free cell and a
// food to chase. Any running timer is stopped first.
func (g *Game) Ready() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pauseLocked()
	g.id = uuid.NewV4().String()
	g.turn = 0
	g.direction = rules.Direction{}
	g.status = StatusIdle

	start := rules.PlaceFood(g.rand, g.grid, nil, g.categories)
	g.snake = rules.NewSnake(g.grid, *start)
	g.food = rules.PlaceFood(g.rand, g.grid, g.snake, g.categories)

	fields := logrus.Fields{
		"GameID": g.id,
		"Width":  g.grid.Width,
		"Height": g.grid.Height,
		"Head":   start.Point,
		"Food":   g.food,
	}
	if g.food == nil {
		g.snake.Win = true
		g.status = StatusWon
		roundsTotal.WithLabelValues(string(StatusWon)).Inc()
		g.log.WithFields(fields).Info("no free cell for food, round won")
	} else {
		g.log.WithFields(fields).Info("game ready")
	}
	g.draw(g.snake, g.food)
}

// Go sets the direction and starts the timer. A zero direction is ignored, as
// is any call after the round has ended.
func (g *Game) Go(d rules.Direction) {
	if d.IsZero() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.Terminal() {
		return
	}
	g.direction = d
	g.resumeLocked()
}

// Pause cancels the tick timer. It is safe to call when no timer is running.
func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pauseLocked() && !g.status.Terminal() {
		g.status = StatusPaused
		g.log.WithFields(logrus.Fields{
			"GameID": g.id,
			"Turn":   g.turn,
		}).Info("game paused")
	}
}

// Resume starts the tick timer unless it is already running, the round has
// ended, or no direction has been chosen yet.
func (g *Game) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resumeLocked()
}

// Tick processes one tick immediately. It lets an external clock drive the
// game instead of the built in timer. Ticks are ignored before a direction is
// chosen and after the round has ended.
func (g *Game) Tick() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.snake == nil || g.direction.IsZero() || g.status.Terminal() {
		return g.status
	}
	g.tickLocked()
	return g.status
}

func (g *Game) pauseLocked() bool {
	if g.stop == nil {
		return false
	}
	close(g.stop)
	g.stop = nil
	return true
}

func (g *Game) resumeLocked() {
	if g.stop != nil || g.status.Terminal() {
		return
	}
	if g.snake == nil {
		g.log.Warn("resume called before ready, ignoring")
		return
	}
	if g.direction.IsZero() {
		return
	}

	g.stop = make(chan struct{})
	g.status = StatusRunning
	go g.run(g.stop, g.speed)

	g.log.WithFields(logrus.Fields{
		"GameID":    g.id,
		"Turn":      g.turn,
		"Direction": g.direction,
		"Speed":     g.speed,
	}).Info("game running")
	g.draw(g.snake, g.food)
}

func (g *Game) tickLocked() {
	g.turn++
	ticksTotal.Inc()

	result, head := g.snake.Move(g.direction, g.food)
	switch result {
	case rules.MoveRejected:
		cause := g.snake.CollisionCause(g.direction)
		g.pauseLocked()
		g.snake.Die = true
		g.status = StatusDied
		roundsTotal.WithLabelValues(string(StatusDied)).Inc()
		g.log.WithFields(logrus.Fields{
			"GameID": g.id,
			"Turn":   g.turn,
			"Cause":  cause,
			"Length": g.snake.Len(),
		}).Info("snake died")
	case rules.MoveAte:
		foodEatenTotal.Inc()
		g.log.WithFields(logrus.Fields{
			"GameID": g.id,
			"Turn":   g.turn,
			"Food":   head,
			"Length": g.snake.Len(),
		}).Debug("snake ate")

		g.food = rules.PlaceFood(g.rand, g.grid, g.snake, g.categories)
		if g.food == nil {
			g.pauseLocked()
			g.snake.Win = true
			g.status = StatusWon
			roundsTotal.WithLabelValues(string(StatusWon)).Inc()
			g.log.WithFields(logrus.Fields{
				"GameID": g.id,
				"Turn":   g.turn,
				"Length": g.snake.Len(),
			}).Info("snake won")
		}
	}
	g.draw(g.snake, g.food)
}

// Status returns the current state of the engine.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Direction returns the active direction, zero until the first Go.
func (g *Game) Direction() rules.Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.direction
}

// Turn returns the number of ticks processed in this round.
func (g *Game) Turn() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// ID returns the id of the current round, empty before Ready.
func (g *Game) ID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

// Grid returns the playing field.
func (g *Game) Grid() rules.Grid {
	return g.grid
}

// Speed returns the tick interval.
func (g *Game) Speed() time.Duration {
	return g.speed
}

// Categories returns the configured food categories.
func (g *Game) Categories() []string {
	return append([]string(nil), g.categories...)
}
