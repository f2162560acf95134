package rules

// Direction is a unit step on the grid. The zero value is no direction.
type Direction struct {
	DX int
	DY int
}

var (
	// Left moves towards x = 0
	Left = Direction{DX: -1, DY: 0}
	// Up moves towards y = 0
	Up = Direction{DX: 0, DY: -1}
	// Right moves away from x = 0
	Right = Direction{DX: 1, DY: 0}
	// Down moves away from y = 0
	Down = Direction{DX: 0, DY: 1}
)

// Key codes reported by browsers for the arrow keys.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)

var keyCodes = map[int]Direction{
	KeyCodeLeft:  Left,
	KeyCodeUp:    Up,
	KeyCodeRight: Right,
	KeyCodeDown:  Down,
}

var names = map[string]Direction{
	"left":  Left,
	"up":    Up,
	"right": Right,
	"down":  Down,
}

// IsZero reports whether d is the absence of a direction.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	for name, dir := range names {
		if dir == d {
			return name
		}
	}
	return "none"
}

// DirectionForKey maps an arrow key code to its direction. Unmapped keys
// return false and should be ignored.
func DirectionForKey(keyCode int) (Direction, bool) {
	d, ok := keyCodes[keyCode]
	return d, ok
}

// ParseDirection maps "left", "up", "right" or "down" to a direction.
func ParseDirection(name string) (Direction, bool) {
	d, ok := names[name]
	return d, ok
}
