package game

import (
	"github.com/gridsnake/engine/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks processed by all games.",
		},
	)
	foodEatenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "food_eaten_total",
			Help:      "Food eaten by all snakes.",
		},
	)
	roundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "rounds_total",
			Help:      "Rounds that reached a terminal state.",
		},
		[]string{"outcome"},
	)
	drawDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "draw_seconds",
			Help:      "Time spent in the draw hook.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticksTotal, foodEatenTotal, roundsTotal, drawDuration)
}

func instrument() func() {
	t := prometheus.NewTimer(drawDuration)
	return func() { t.ObserveDuration() }
}

// instrumentDraw wraps the draw hook to observe how long it takes.
func instrumentDraw(draw DrawFunc) DrawFunc {
	return func(snake *rules.Snake, food *rules.Food) {
		defer instrument()()
		draw(snake, food)
	}
}
