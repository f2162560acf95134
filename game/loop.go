package game

import "time"

// run fires a tick every interval until stop is closed. A tick that races
// with Pause sees a different stop channel under the lock and is dropped.
func (g *Game) run(stop chan struct{}, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			g.mu.Lock()
			if g.stop != stop {
				g.mu.Unlock()
				return
			}
			g.tickLocked()
			g.mu.Unlock()
		case <-stop:
			return
		}
	}
}
