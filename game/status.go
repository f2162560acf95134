package game

// Status is the state of the engine.
type Status string

const (
	// StatusIdle represents a game that is ready but has not started moving
	StatusIdle Status = "idle"
	// StatusRunning represents a game with an active tick timer
	StatusRunning Status = "running"
	// StatusPaused represents a game whose timer was cancelled by Pause
	StatusPaused Status = "paused"
	// StatusDied represents a game that ended on a collision
	StatusDied Status = "died"
	// StatusWon represents a game that ended with no free cell left
	StatusWon Status = "won"
)

// Terminal reports whether no further ticks will be processed.
func (s Status) Terminal() bool {
	return s == StatusDied || s == StatusWon
}
