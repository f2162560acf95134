// Package api exposes a single game over HTTP and a websocket so that a remote
// presentation layer can watch and steer it.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gridsnake/engine/config"
	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/rules"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	// ErrUnknownDirection is returned for a direction name that is not one of
	// left, up, right or down.
	ErrUnknownDirection = errors.New("api: unknown direction")
	// ErrTooManyInputs is returned when input arrives faster than the limiter
	// allows.
	ErrTooManyInputs = errors.New("api: too many inputs")
)

// Engine is the part of game.Game the api drives.
type Engine interface {
	Ready()
	Go(rules.Direction)
	Pause()
	Resume()
	Snapshot() game.Snapshot
}

// Server serves one engine.
type Server struct {
	hs      *http.Server
	engine  Engine
	hub     *Hub
	limiter *rate.Limiter
}

// New creates a server for the engine. Frames drawn through hub are streamed
// to websocket clients; a nil hub streams nothing.
func New(addr string, engine Engine, hub *Hub) *Server {
	if hub == nil {
		hub = NewHub()
	}
	s := &Server{
		engine:  engine,
		hub:     hub,
		limiter: rate.NewLimiter(config.InputRate, config.InputBurst),
	}

	router := httprouter.New()
	router.GET("/game", s.status)
	router.POST("/game/ready", s.ready)
	router.POST("/game/pause", s.pause)
	router.POST("/game/resume", s.resume)
	router.POST("/game/go/:direction", s.goDirection)
	router.GET("/socket", s.socket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// Handler returns the http handler of the server.
func (s *Server) Handler() http.Handler {
	return s.hs.Handler
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("snake api serving")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.engine.Ready()
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) pause(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.engine.Pause()
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) resume(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.engine.Resume()
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) goDirection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("direction")
	d, ok := rules.ParseDirection(name)
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Wrap(ErrUnknownDirection, name))
		return
	}
	if err := s.steer(d); err != nil {
		writeError(w, http.StatusTooManyRequests, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

// steer passes a direction to the engine if the input limiter allows it.
func (s *Server) steer(d rules.Direction) error {
	if !s.limiter.Allow() {
		return ErrTooManyInputs
	}
	s.engine.Go(d)
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, ErrorResponse{Error: err.Error()})
}
