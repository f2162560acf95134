package commands

import (
	"sync"

	"github.com/gridsnake/engine/api"
)

// frameHolder keeps the newest frame received from the server and signals
// the render loop when it changes.
type frameHolder struct {
	sync.RWMutex
	frame   *api.Frame
	frames  int
	updates chan struct{}
}

func newFrameHolder() *frameHolder {
	return &frameHolder{updates: make(chan struct{}, 1)}
}

func (fh *frameHolder) set(frame api.Frame) {
	fh.Lock()
	fh.frame = &frame
	fh.frames++
	fh.Unlock()

	select {
	case fh.updates <- struct{}{}:
	default:
	}
}

func (fh *frameHolder) latest() *api.Frame {
	fh.RLock()
	defer fh.RUnlock()

	return fh.frame
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return fh.frames
}
