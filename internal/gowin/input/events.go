// Package input defines the portable keyboard and mouse vocabulary and the
// event values delivered to window controllers.
//
// Events are plain values. The dispatcher builds a fresh one for every
// native message and hands a copy to the controller; nothing keeps it after
// the callback returns.
package input

import "fmt"

// KeyState describes a key transition.
type KeyState uint8

const (
	KeyPress KeyState = iota
	KeyRelease
	// KeyRepeat is an auto-repeated press of a key that was already down.
	KeyRepeat
)

func (s KeyState) String() string {
	switch s {
	case KeyPress:
		return "Press"
	case KeyRelease:
		return "Release"
	case KeyRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("KeyState(%d)", uint8(s))
	}
}

// ButtonState describes a mouse button transition.
type ButtonState uint8

const (
	ButtonRelease ButtonState = iota
	ButtonPress
)

func (s ButtonState) String() string {
	switch s {
	case ButtonRelease:
		return "Release"
	case ButtonPress:
		return "Press"
	default:
		return fmt.Sprintf("ButtonState(%d)", uint8(s))
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseX1 // usually "back"
	MouseX2 // usually "forward"
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseX1:
		return "X1"
	case MouseX2:
		return "X2"
	default:
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
}

// KeyEvent reports a key press, repeat or release.
type KeyEvent struct {
	Key   VirtualKey
	State KeyState

	// Raw is the platform key code the event was decoded from. It is the
	// only way to tell unrecognized keys apart.
	Raw uint32
}

func (e KeyEvent) IsKey(k VirtualKey) bool { return e.Key == k }

// IsDown reports a fresh press; repeats are not included.
func (e KeyEvent) IsDown() bool { return e.State == KeyPress }

func (e KeyEvent) IsUp() bool { return e.State == KeyRelease }

// CharEvent reports a translated character.
type CharEvent struct {
	Char   rune
	Repeat bool
}

// MouseMoveEvent reports the cursor position in client coordinates.
type MouseMoveEvent struct {
	X, Y float32
}

func (e MouseMoveEvent) Pos() (x, y float32) { return e.X, e.Y }

// MouseButtonEvent reports a button transition at a client position.
type MouseButtonEvent struct {
	Button MouseButton
	State  ButtonState
	X, Y   float32
}

func (e MouseButtonEvent) Pos() (x, y float32) { return e.X, e.Y }

// MouseWheelEvent reports wheel rotation in raw delta units, where one notch
// is 120. Wheel messages carry screen coordinates.
type MouseWheelEvent struct {
	Vertical   float32
	Horizontal float32
	X, Y       float32
}

func (e MouseWheelEvent) Pos() (x, y float32) { return e.X, e.Y }

// Notches converts the deltas to wheel notches.
func (e MouseWheelEvent) Notches() (vertical, horizontal float32) {
	return e.Vertical / 120, e.Horizontal / 120
}

// WindowMovedEvent reports the new client-area origin in screen coordinates.
type WindowMovedEvent struct {
	X, Y float32
}

func (e WindowMovedEvent) Pos() (x, y float32) { return e.X, e.Y }

// WindowResizedEvent reports the new client-area size.
type WindowResizedEvent struct {
	Width, Height float32
}

func (e WindowResizedEvent) Size() (width, height float32) { return e.Width, e.Height }

// FocusChangedEvent reports keyboard focus gained or lost.
type FocusChangedEvent struct {
	Focused bool
}
