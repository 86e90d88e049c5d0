// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateRunning is the normal play state.
	StateRunning State = iota
	// StateTerminated is reached on Escape or when the window closes.
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
