package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// socket streams frames to the client and reads direction input from it.
func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("unable to upgrade connection")
		return
	}

	frames := s.hub.subscribe()
	initial, err := json.Marshal(FrameFromSnapshot(s.engine.Snapshot()))
	if err == nil {
		frames <- initial
	}

	go writePump(ws, frames)
	s.readPump(ws)
	s.hub.unsubscribe(frames)
}

func writePump(ws *websocket.Conn, frames <-chan []byte) {
	defer closeSocket(ws)

	for frame := range frames {
		if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.WithError(err).Debug("websocket write failed")
			return
		}
	}
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *Server) readPump(ws *websocket.Conn) {
	for {
		_, message, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Info("websocket closed")
			}
			return
		}

		in := Input{}
		if err := json.Unmarshal(message, &in); err != nil {
			log.WithError(errors.Wrap(err, "decode input")).Warn("ignoring websocket message")
			continue
		}
		d, ok := in.toDirection()
		if !ok {
			continue
		}
		if err := s.steer(d); err != nil {
			log.WithError(err).Debug("input dropped")
		}
	}
}

func closeSocket(ws *websocket.Conn) {
	if err := ws.Close(); err != nil {
		log.WithError(err).Debug("failure to close websocket connection")
	}
}
