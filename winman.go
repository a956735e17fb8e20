// Package winman is a small native windowing layer for Windows. An
// Application owns a message loop and a set of Windows; each Window reports
// its lifecycle and input to a WindowController.
//
//	type app struct{}
//
//	func (app) OnInit(a *winman.Application) {
//		w, _ := a.CreateWindow(myController{})
//		w.Show()
//	}
//
//	func (app) OnExit(*winman.Application) int { return 0 }
//
//	code, err := winman.Run[int](app{})
//
// On platforms other than Windows, Run fails with ErrUnsupported.
package winman

import (
	"github.com/tinyrange/winman/internal/gowin/input"
	"github.com/tinyrange/winman/internal/gowin/win32"
	"github.com/tinyrange/winman/internal/gowin/window"
)

// -----------------------------------------------------------------------------
// Type Aliases - These re-export types from internal/gowin/window
// -----------------------------------------------------------------------------

// Application owns the windows of one Run and the loop that feeds them.
type Application = window.Application

// Window is a native window bound to a WindowController.
type Window = window.Window

// WindowConfig describes a window at creation time.
type WindowConfig = window.Config

// Size is a width/height pair in pixels.
type Size = window.Size

// Point is a position in pixels.
type Point = window.Point

// WindowState is the lifecycle position of a Window.
type WindowState = window.State

// WindowController receives the events of one window.
type WindowController = window.WindowController

// NopWindowController can be embedded to implement only some callbacks.
type NopWindowController = window.NopWindowController

// ApplicationController drives an application run.
type ApplicationController[T any] = window.ApplicationController[T]

// BeforeWindowEventsHook runs before every drain of the message queue.
type BeforeWindowEventsHook = window.BeforeWindowEventsHook

// AfterWindowEventsHook replaces the default wait for new messages.
type AfterWindowEventsHook = window.AfterWindowEventsHook

// QuitPolicy decides when destroying a window ends the message loop.
type QuitPolicy = window.QuitPolicy

// Option configures an Application.
type Option = window.Option

// DecodeError reports a message payload that could not be decoded.
type DecodeError = window.DecodeError

// -----------------------------------------------------------------------------
// Type Aliases - These re-export types from internal/gowin/input
// -----------------------------------------------------------------------------

type (
	VirtualKey  = input.VirtualKey
	KeyState    = input.KeyState
	ButtonState = input.ButtonState
	MouseButton = input.MouseButton

	KeyEvent           = input.KeyEvent
	CharEvent          = input.CharEvent
	MouseMoveEvent     = input.MouseMoveEvent
	MouseButtonEvent   = input.MouseButtonEvent
	MouseWheelEvent    = input.MouseWheelEvent
	WindowMovedEvent   = input.WindowMovedEvent
	WindowResizedEvent = input.WindowResizedEvent
	FocusChangedEvent  = input.FocusChangedEvent
)

// -----------------------------------------------------------------------------
// Constants and errors
// -----------------------------------------------------------------------------

const (
	QuitOnLastWindow = window.QuitOnLastWindow
	QuitOnAnyWindow  = window.QuitOnAnyWindow
	QuitManual       = window.QuitManual
)

const (
	StateUninitialized = window.StateUninitialized
	StateInitializing  = window.StateInitializing
	StateLive          = window.StateLive
	StateClosing       = window.StateClosing
	StateDestroyed     = window.StateDestroyed
)

const (
	KeyPress   = input.KeyPress
	KeyRelease = input.KeyRelease
	KeyRepeat  = input.KeyRepeat

	ButtonPress   = input.ButtonPress
	ButtonRelease = input.ButtonRelease

	MouseLeft   = input.MouseLeft
	MouseRight  = input.MouseRight
	MouseMiddle = input.MouseMiddle
	MouseX1     = input.MouseX1
	MouseX2     = input.MouseX2

	KeyUnrecognized = input.KeyUnrecognized
)

var (
	ErrUnsupported     = win32.ErrUnsupported
	ErrRegistration    = window.ErrRegistration
	ErrWindowCreation  = window.ErrWindowCreation
	ErrTitleEncoding   = window.ErrTitleEncoding
	ErrWindowDestroyed = window.ErrWindowDestroyed
	ErrDecode          = window.ErrDecode
)

// -----------------------------------------------------------------------------
// Functions
// -----------------------------------------------------------------------------

// Run creates an Application and runs its message loop on the calling
// goroutine until the quit signal arrives. It returns what ctrl.OnExit
// produces.
func Run[T any](ctrl ApplicationController[T], opts ...Option) (T, error) {
	return window.Run(ctrl, opts...)
}

// DefaultWindowConfig returns a decorated, resizable window with OS chosen
// placement.
func DefaultWindowConfig() WindowConfig {
	return window.DefaultConfig()
}

// LoadWindowConfig reads a YAML window description from path.
func LoadWindowConfig(path string) (WindowConfig, error) {
	return window.LoadConfig(path)
}

// ParseWindowConfig decodes a YAML window description.
func ParseWindowConfig(data []byte) (WindowConfig, error) {
	return window.ParseConfig(data)
}

// DecodeVirtualKey maps a native virtual-key code to a VirtualKey, or
// KeyUnrecognized.
func DecodeVirtualKey(raw uint32) VirtualKey {
	return input.DecodeVirtualKey(raw)
}

var (
	WithLogger     = window.WithLogger
	WithClassName  = window.WithClassName
	WithQuitPolicy = window.WithQuitPolicy
)
