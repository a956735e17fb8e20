package window

import "fmt"

// State is the lifecycle position of a Window. States only move forward.
type State uint32

const (
	// StateUninitialized: the Window exists but the OS has not issued a
	// handle yet.
	StateUninitialized State = iota
	// StateInitializing: the handle is bound and OnInit is running.
	StateInitializing
	// StateLive: the window accepts input and window events.
	StateLive
	// StateClosing: OnClosing has run and the handle is being destroyed.
	StateClosing
	// StateDestroyed: the handle is invalid.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitializing:
		return "Initializing"
	case StateLive:
		return "Live"
	case StateClosing:
		return "Closing"
	case StateDestroyed:
		return "Destroyed"
	default:
		return fmt.Sprintf("State(%d)", uint32(s))
	}
}

// hasHandle reports whether a window in state s owns a usable handle.
func (s State) hasHandle() bool {
	return s == StateInitializing || s == StateLive || s == StateClosing
}
