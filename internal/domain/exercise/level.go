package exercise

import "fmt"

// Level is a CEFR proficiency tier. Levels are totally ordered,
// from A2.1 up to B1.2.
type Level string

const (
	LevelA21 Level = "A2.1"
	LevelA22 Level = "A2.2"
	LevelB11 Level = "B1.1"
	LevelB12 Level = "B1.2"
)

// levelOrder defines the total ordering of levels.
var levelOrder = []Level{LevelA21, LevelA22, LevelB11, LevelB12}

// ErrUnknownLevel is returned when a level token is not recognized.
var ErrUnknownLevel = fmt.Errorf("unknown level")

// Levels returns all levels in ascending order.
func Levels() []Level {
	out := make([]Level, len(levelOrder))
	copy(out, levelOrder)
	return out
}

// ParseLevel converts a string token into a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range levelOrder {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Previous returns all levels ordered strictly before l, in ascending order.
func (l Level) Previous() []Level {
	for i, candidate := range levelOrder {
		if candidate == l {
			out := make([]Level, i)
			copy(out, levelOrder[:i])
			return out
		}
	}
	return nil
}

// ordinal returns the position of l in the level ordering, or -1 if unknown.
func (l Level) ordinal() int {
	for i, candidate := range levelOrder {
		if candidate == l {
			return i
		}
	}
	return -1
}

// Before reports whether l is ordered strictly before other.
func (l Level) Before(other Level) bool {
	return l.ordinal() < other.ordinal()
}
