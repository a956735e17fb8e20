package window

import (
	"fmt"
	"strings"

	"github.com/tinyrange/winman/internal/gowin/input"
)

// recorder is a WindowController that logs every callback it receives.
type recorder struct {
	NopWindowController

	config  Config
	veto    bool
	events  []string
	keys    []input.KeyEvent
	chars   []input.CharEvent
	buttons []input.MouseButtonEvent
	wheels  []input.MouseWheelEvent

	// States observed by the lifecycle callbacks.
	initState    State
	closingState State
	closedState  State

	onInit func(w *Window)
}

func newRecorder(title string) *recorder {
	cfg := DefaultConfig()
	cfg.Title = title
	return &recorder{config: cfg}
}

func (r *recorder) log(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) String() string {
	return strings.Join(r.events, ",")
}

func (r *recorder) Config() Config { return r.config }

func (r *recorder) OnInit(w *Window) {
	r.initState = w.State()
	r.log("init")
	if r.onInit != nil {
		r.onInit(w)
	}
}

func (r *recorder) OnClose(w *Window) bool {
	r.log("close")
	return !r.veto
}

func (r *recorder) OnClosing(w *Window) {
	r.closingState = w.State()
	r.log("closing")
}

func (r *recorder) OnClosed(w *Window) {
	r.closedState = w.State()
	r.log("closed")
}

func (r *recorder) OnMoved(w *Window, ev input.WindowMovedEvent) {
	r.log("moved(%v,%v)", ev.X, ev.Y)
}

func (r *recorder) OnResized(w *Window, ev input.WindowResizedEvent) {
	r.log("resized(%vx%v)", ev.Width, ev.Height)
}

func (r *recorder) OnKey(w *Window, ev input.KeyEvent) {
	r.keys = append(r.keys, ev)
	r.log("key")
}

func (r *recorder) OnChar(w *Window, ev input.CharEvent) {
	r.chars = append(r.chars, ev)
	r.log("char(%q)", ev.Char)
}

func (r *recorder) OnFocus(w *Window, ev input.FocusChangedEvent) {
	r.log("focus(%v)", ev.Focused)
}

func (r *recorder) OnMouseMove(w *Window, ev input.MouseMoveEvent) {
	r.log("mousemove(%v,%v)", ev.X, ev.Y)
}

func (r *recorder) OnMouseButton(w *Window, ev input.MouseButtonEvent) {
	r.buttons = append(r.buttons, ev)
	r.log("button(%s,%s)", ev.Button, ev.State)
}

func (r *recorder) OnMouseWheel(w *Window, ev input.MouseWheelEvent) {
	r.wheels = append(r.wheels, ev)
	r.log("wheel(%v,%v)", ev.Vertical, ev.Horizontal)
}

var _ WindowController = (*recorder)(nil)
