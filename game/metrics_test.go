package game

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridsnake/engine/rules"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
)

func TestMetricsExported(t *testing.T) {
	g, _, _ := newTestGame(t, commonConfig)
	g.Ready()
	place(g, rules.NewFood(1, 0, "red"), rules.Point{X: 0, Y: 0})
	g.Go(rules.Right)
	g.Tick()
	g.Pause()

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "snake_game_ticks_total")
	require.Contains(t, body, "snake_game_food_eaten_total")
	require.Contains(t, body, "snake_game_draw_seconds")
}
