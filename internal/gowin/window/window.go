// Package window runs native windows on top of the win32 API: it registers
// the window class, owns the message loop and turns each message into a
// call on the window's controller.
package window

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/tinyrange/winman/internal/gowin/win32"
)

// Window pairs a native window handle with the controller that receives its
// events.
//
// A Window is allocated before the OS is asked to create it and gets its
// handle from the creation notification, so there is a period in which it
// exists without one (StateUninitialized). Handle and State may be read from
// any goroutine; everything else belongs to the message-loop thread.
type Window struct {
	app        *Application
	controller WindowController
	config     Config

	handle atomic.Uintptr
	state  atomic.Uint32

	// Loop-thread only.
	highSurrogate rune
	destroying    bool
}

func newWindow(app *Application, ctrl WindowController, cfg Config) *Window {
	return &Window{
		app:        app,
		controller: ctrl,
		config:     cfg,
	}
}

// Handle returns the native handle, or 0 before creation has completed.
// After the window is destroyed the last handle is still returned but no
// longer refers to a live window.
func (w *Window) Handle() win32.Handle {
	return win32.Handle(w.handle.Load())
}

// State returns the lifecycle state.
func (w *Window) State() State {
	return State(w.state.Load())
}

// Config returns the configuration the window was created with.
func (w *Window) Config() Config {
	return w.config
}

// Controller returns the window's controller.
func (w *Window) Controller() WindowController {
	return w.controller
}

// Application returns the application that created the window.
func (w *Window) Application() *Application {
	return w.app
}

func (w *Window) String() string {
	return fmt.Sprintf("window(%#x, %s)", uintptr(w.Handle()), w.State())
}

func (w *Window) transition(from, to State) bool {
	return w.state.CompareAndSwap(uint32(from), uint32(to))
}

// bind injects the handle issued by the OS.
func (w *Window) bind(h win32.Handle) bool {
	if !w.transition(StateUninitialized, StateInitializing) {
		return false
	}
	w.handle.Store(uintptr(h))
	return true
}

func (w *Window) liveHandle() (win32.Handle, bool) {
	if !w.State().hasHandle() {
		return 0, false
	}
	h := w.Handle()
	return h, h != 0
}

func (w *Window) show(cmd int32) {
	h, ok := w.liveHandle()
	if !ok {
		return
	}
	w.app.api.ShowWindow(h, cmd)
}

// Show displays the window in its default show state.
func (w *Window) Show() { w.show(win32.SWShowDefault) }

// Hide hides the window.
func (w *Window) Hide() { w.show(win32.SWHide) }

// Minimize minimizes the window.
func (w *Window) Minimize() { w.show(win32.SWShowMinimized) }

// Maximize maximizes the window.
func (w *Window) Maximize() { w.show(win32.SWShowMaximized) }

// SetTitle changes the caption. A title containing a NUL character is
// rejected with ErrTitleEncoding and the window is left unchanged.
func (w *Window) SetTitle(title string) error {
	if strings.ContainsRune(title, 0) {
		return fmt.Errorf("%w: title contains a NUL character", ErrTitleEncoding)
	}
	h, ok := w.liveHandle()
	if !ok {
		return ErrWindowDestroyed
	}
	if err := w.app.api.SetWindowText(h, title); err != nil {
		return fmt.Errorf("set window title: %w", err)
	}
	return nil
}

// RequestClose queues a close request for the window. It is safe to call
// from any goroutine. The request goes through OnClose like one issued by
// the user.
func (w *Window) RequestClose() error {
	h, ok := w.liveHandle()
	if !ok {
		return ErrWindowDestroyed
	}
	if err := w.app.api.PostMessage(h, win32.WMClose, 0, 0); err != nil {
		return fmt.Errorf("post close request: %w", err)
	}
	return nil
}

// close runs OnClosing, destroys the native window and runs OnClosed, in
// that order and at most once. If the destroy fails the window stays in
// StateClosing; calling close again retries the destroy without running
// OnClosing a second time.
func (w *Window) close() {
	if w.transition(StateLive, StateClosing) {
		w.controller.OnClosing(w)
	} else if w.State() != StateClosing || w.destroying {
		return
	}

	w.destroying = true
	err := w.app.api.DestroyWindow(w.Handle())
	w.destroying = false
	if err != nil {
		w.app.log.Error("destroy window", slog.Any("window", w), slog.Any("err", err))
		return
	}

	if w.transition(StateClosing, StateDestroyed) {
		w.controller.OnClosed(w)
	}
}
