package commands

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/gridsnake/engine/api"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const watchHelp = "arrows/wasd/hjkl: move  q: quit"

var apiAddr = "http://localhost:3005"

func init() {
	watchCmd.Flags().StringVar(&apiAddr, "api-addr", apiAddr, "address of the api server")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watch and steer a game served by snake serve",
	RunE: func(*cobra.Command, []string) error {
		if err := setupLogging(true); err != nil {
			return err
		}
		return watch()
	},
}

// socketURL turns the api address into its websocket endpoint.
func socketURL(addr string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", errors.Wrapf(err, "invalid api address %q", addr)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http", "":
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/socket"
	return u.String(), nil
}

func watch() error {
	u, err := socketURL(apiAddr)
	if err != nil {
		return err
	}
	log.Printf("connecting to %s", u)

	c, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		return errors.Wrap(err, "dial")
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("failure to close websocket connection")
		}
	}()

	frames := newFrameHolder()
	closed := make(chan error, 1)
	go readFrames(c, frames, closed)

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	for {
		select {
		case ev := <-eventQueue:
			if ev.Type == termbox.EventError {
				return ev.Err
			}
			if isQuit(ev) {
				_ = c.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return nil
			}
			if d, ok := keyToDirection(ev); ok {
				if err := c.WriteJSON(api.Input{Direction: d.String()}); err != nil {
					return errors.Wrap(err, "send input")
				}
			}
			if ev.Type == termbox.EventResize {
				if err := renderLatest(frames); err != nil {
					return err
				}
			}
		case <-frames.updates:
			if err := renderLatest(frames); err != nil {
				return err
			}
		case err := <-closed:
			return err
		}
	}
}

func renderLatest(frames *frameHolder) error {
	frame := frames.latest()
	if frame == nil {
		return nil
	}
	return render(*frame, watchHelp)
}

func readFrames(c *websocket.Conn, frames *frameHolder, closed chan<- error) {
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				closed <- nil
			} else {
				closed <- errors.Wrap(err, "read")
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		frame := api.Frame{}
		if err := json.Unmarshal(message, &frame); err != nil {
			log.WithError(err).Warn("unable to decode frame")
			continue
		}
		frames.set(frame)
	}
}
