package window

import "github.com/tinyrange/winman/internal/gowin/input"

// WindowController receives the events of one window. Every method is
// called synchronously on the message-loop thread. Embed
// NopWindowController to implement only the callbacks you need.
type WindowController interface {
	// Config is read once, when the window is created.
	Config() Config

	// OnInit runs once the native handle exists, before any other
	// callback for the window.
	OnInit(w *Window)
	// OnClose is asked whether a close request should proceed. Returning
	// false keeps the window open.
	OnClose(w *Window) bool
	// OnClosing runs while the handle is still valid, right before it is
	// destroyed.
	OnClosing(w *Window)
	// OnClosed runs after the handle has been destroyed.
	OnClosed(w *Window)

	OnMoved(w *Window, ev input.WindowMovedEvent)
	OnResized(w *Window, ev input.WindowResizedEvent)

	OnKey(w *Window, ev input.KeyEvent)
	OnChar(w *Window, ev input.CharEvent)
	OnFocus(w *Window, ev input.FocusChangedEvent)

	OnMouseMove(w *Window, ev input.MouseMoveEvent)
	OnMouseButton(w *Window, ev input.MouseButtonEvent)
	OnMouseWheel(w *Window, ev input.MouseWheelEvent)
}

// NopWindowController implements WindowController with no-ops. OnClose
// allows every close request.
type NopWindowController struct{}

func (NopWindowController) Config() Config { return DefaultConfig() }

func (NopWindowController) OnInit(*Window)       {}
func (NopWindowController) OnClose(*Window) bool { return true }
func (NopWindowController) OnClosing(*Window)    {}
func (NopWindowController) OnClosed(*Window)     {}

func (NopWindowController) OnMoved(*Window, input.WindowMovedEvent)     {}
func (NopWindowController) OnResized(*Window, input.WindowResizedEvent) {}

func (NopWindowController) OnKey(*Window, input.KeyEvent)            {}
func (NopWindowController) OnChar(*Window, input.CharEvent)          {}
func (NopWindowController) OnFocus(*Window, input.FocusChangedEvent) {}

func (NopWindowController) OnMouseMove(*Window, input.MouseMoveEvent)     {}
func (NopWindowController) OnMouseButton(*Window, input.MouseButtonEvent) {}
func (NopWindowController) OnMouseWheel(*Window, input.MouseWheelEvent)   {}

var _ WindowController = NopWindowController{}

// ApplicationController drives an application run. OnExit produces the
// value returned by Run, typically a process exit code.
type ApplicationController[T any] interface {
	OnInit(app *Application)
	OnExit(app *Application) T
}

// BeforeWindowEventsHook is implemented by application controllers that
// want to run before every drain of the message queue.
type BeforeWindowEventsHook interface {
	BeforeWindowEvents(app *Application)
}

// AfterWindowEventsHook replaces the default idle behaviour, which is to
// block in Application.WaitForEvents until the next message arrives.
type AfterWindowEventsHook interface {
	AfterWindowEvents(app *Application)
}
