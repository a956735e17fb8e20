package window

import (
	"errors"
	"log/slog"

	"github.com/tinyrange/winman/internal/gowin/input"
	"github.com/tinyrange/winman/internal/gowin/win32"
)

// windowProc is the procedure of the Application's window class. The OS
// calls it for every message addressed to one of its windows, both from
// DispatchMessage and re-entrantly from CreateWindow/DestroyWindow.
//
// It must never panic: messages for handles it does not know, such as
// WM_NCCREATE before WM_CREATE, go to default processing unchanged.
func (a *Application) windowProc(m win32.Msg) uintptr {
	if m.Message == win32.WMCreate {
		return a.handleCreate(m)
	}

	w := a.Lookup(m.Handle)
	if w == nil {
		return a.api.DefWindowProc(m)
	}

	switch m.Message {
	case win32.WMClose:
		// Default processing would destroy the window behind the
		// controller's back.
		switch w.State() {
		case StateLive:
			if w.controller.OnClose(w) {
				w.close()
			}
		case StateClosing:
			// An earlier destroy failed; the close was already accepted.
			w.close()
		}
		return 0
	case win32.WMDestroy:
		a.handleDestroy(w)
		return 0
	}

	if w.State() != StateLive {
		a.log.Debug("message outside live state",
			slog.Any("window", w),
			slog.Uint64("msg", uint64(m.Message)),
		)
		return a.api.DefWindowProc(m)
	}
	return a.dispatchLive(w, m)
}

// handleCreate binds the handle to the pending Window named by the creation
// parameter, registers it for lookup and runs OnInit.
func (a *Application) handleCreate(m win32.Msg) uintptr {
	token := a.api.CreateParam(m)
	w := a.takePending(token)
	if w == nil {
		a.log.Warn("WM_CREATE without a pending window", slog.Uint64("token", uint64(token)))
		return a.api.DefWindowProc(m)
	}
	if !w.bind(m.Handle) {
		return a.api.DefWindowProc(m)
	}

	a.track(w)

	a.log.Debug("window created", slog.Any("window", w))
	w.controller.OnInit(w)
	w.transition(StateInitializing, StateLive)
	return 0
}

// handleDestroy forgets the window and applies the quit policy. A window
// destroyed without a successful close, by the OS, during OnInit or after a
// failed destroy, is finished here.
func (a *Application) handleDestroy(w *Window) {
	tracked, remaining := a.forget(w)
	a.log.Debug("window destroyed", slog.Any("window", w), slog.Int("remaining", remaining))

	// close finishes its own destroy once DestroyWindow returns.
	if !w.destroying {
		if w.transition(StateLive, StateDestroyed) ||
			w.transition(StateInitializing, StateDestroyed) ||
			w.transition(StateClosing, StateDestroyed) {
			w.controller.OnClosed(w)
		}
	}

	if a.exiting {
		return
	}
	switch a.quitPolicy {
	case QuitOnAnyWindow:
		a.api.PostQuitMessage(0)
	case QuitOnLastWindow:
		if tracked && remaining == 0 {
			a.api.PostQuitMessage(0)
		}
	}
}

func (a *Application) dispatchLive(w *Window, m win32.Msg) uintptr {
	ctrl := w.controller

	switch m.Message {
	case win32.WMMove:
		x, y := decodePoint(m.LParam)
		ctrl.OnMoved(w, input.WindowMovedEvent{X: x, Y: y})
	case win32.WMSize:
		width, height := decodeSize(m.LParam)
		ctrl.OnResized(w, input.WindowResizedEvent{Width: width, Height: height})
	case win32.WMPaint:
		a.api.PaintBackground(m.Handle)

	case win32.WMKeyDown:
		ctrl.OnKey(w, decodeKeyDown(m))
	case win32.WMKeyUp:
		ctrl.OnKey(w, decodeKeyUp(m))
	case win32.WMSysKeyDown:
		// Alt+F4 and the system menu live in default processing.
		ctrl.OnKey(w, decodeKeyDown(m))
		return a.api.DefWindowProc(m)
	case win32.WMSysKeyUp:
		ctrl.OnKey(w, decodeKeyUp(m))
		return a.api.DefWindowProc(m)
	case win32.WMChar:
		r, err := decodeChar(m.Message, uint32(m.WParam), &w.highSurrogate)
		if err != nil {
			if !errors.Is(err, errSurrogatePending) {
				a.log.Debug("dropped character", slog.Any("window", w), slog.Any("err", err))
			}
			return 0
		}
		ctrl.OnChar(w, input.CharEvent{Char: r, Repeat: prevKeyDown(m.LParam)})
	case win32.WMSetFocus:
		ctrl.OnFocus(w, input.FocusChangedEvent{Focused: true})
	case win32.WMKillFocus:
		ctrl.OnFocus(w, input.FocusChangedEvent{Focused: false})

	case win32.WMMouseMove:
		x, y := decodePoint(m.LParam)
		ctrl.OnMouseMove(w, input.MouseMoveEvent{X: x, Y: y})
	case win32.WMLButtonDown:
		a.mouseButton(w, m, input.MouseLeft, input.ButtonPress)
	case win32.WMLButtonUp:
		a.mouseButton(w, m, input.MouseLeft, input.ButtonRelease)
	case win32.WMRButtonDown:
		a.mouseButton(w, m, input.MouseRight, input.ButtonPress)
	case win32.WMRButtonUp:
		a.mouseButton(w, m, input.MouseRight, input.ButtonRelease)
	case win32.WMMButtonDown:
		a.mouseButton(w, m, input.MouseMiddle, input.ButtonPress)
	case win32.WMMButtonUp:
		a.mouseButton(w, m, input.MouseMiddle, input.ButtonRelease)
	case win32.WMXButtonDown, win32.WMXButtonUp:
		// XBUTTON messages are acknowledged with TRUE, aborted or not.
		button, err := decodeXButton(m.Message, m.WParam)
		if err != nil {
			a.log.Error("aborting message", slog.Any("window", w), slog.Any("err", err))
			return 1
		}
		state := input.ButtonPress
		if m.Message == win32.WMXButtonUp {
			state = input.ButtonRelease
		}
		a.mouseButton(w, m, button, state)
		return 1
	case win32.WMMouseWheel:
		x, y := decodePoint(m.LParam)
		ctrl.OnMouseWheel(w, input.MouseWheelEvent{Vertical: decodeWheelDelta(m.WParam), X: x, Y: y})
	case win32.WMMouseHWheel:
		x, y := decodePoint(m.LParam)
		ctrl.OnMouseWheel(w, input.MouseWheelEvent{Horizontal: decodeWheelDelta(m.WParam), X: x, Y: y})

	default:
		return a.api.DefWindowProc(m)
	}
	return 0
}

func (a *Application) mouseButton(w *Window, m win32.Msg, button input.MouseButton, state input.ButtonState) {
	x, y := decodePoint(m.LParam)
	w.controller.OnMouseButton(w, input.MouseButtonEvent{Button: button, State: state, X: x, Y: y})
}
