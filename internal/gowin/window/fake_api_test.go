package window

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/tinyrange/winman/internal/gowin/win32"
)

// Frame insets the fake's AdjustWindowRect adds around a client rect.
const (
	fakeBorder  = 8
	fakeCaption = 31
)

type fakeWindow struct {
	class  string
	params win32.CreateWindowParams
	title  string
	shown  []int32
}

// fakeAPI is an in-memory win32.API. Like the real OS it delivers WM_CREATE
// from CreateWindow and WM_DESTROY from DestroyWindow before returning, and
// default processing of WM_CLOSE destroys the window.
type fakeAPI struct {
	classes      map[string]win32.WndProc
	unregistered []string
	registerErr  error
	registerN    int

	windows    map[win32.Handle]*fakeWindow
	nextHandle win32.Handle
	createErr  error
	// skipCreate makes CreateWindow succeed without WM_CREATE.
	skipCreate bool
	destroyed  []win32.Handle

	queue    []win32.Msg
	quitCode int32
	quits    int
	// idle runs from WaitMessage; with no idle func an empty queue posts
	// quit so a test can never hang.
	idle func()

	defProc   []win32.Msg
	painted   []win32.Handle
	clipboard string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	return &fakeAPI{
		classes:    make(map[string]win32.WndProc),
		windows:    make(map[win32.Handle]*fakeWindow),
		nextHandle: 0x1000,
	}
}

func (f *fakeAPI) RegisterClass(name string, proc win32.WndProc) error {
	f.registerN++
	if f.registerErr != nil {
		return f.registerErr
	}
	if _, ok := f.classes[name]; ok {
		return errors.New("class already exists")
	}
	f.classes[name] = proc
	return nil
}

func (f *fakeAPI) UnregisterClass(name string) error {
	if _, ok := f.classes[name]; !ok {
		return errors.New("class does not exist")
	}
	for _, w := range f.windows {
		if w.class == name {
			return errors.New("class still has windows")
		}
	}
	delete(f.classes, name)
	f.unregistered = append(f.unregistered, name)
	return nil
}

func (f *fakeAPI) CreateWindow(p win32.CreateWindowParams) (win32.Handle, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	proc, ok := f.classes[p.ClassName]
	if !ok {
		return 0, fmt.Errorf("unknown class %q", p.ClassName)
	}
	f.nextHandle += 4
	h := f.nextHandle
	f.windows[h] = &fakeWindow{class: p.ClassName, params: p, title: p.Title}
	if !f.skipCreate {
		proc(win32.Msg{Handle: h, Message: win32.WMCreate, LParam: p.Param})
	}
	return h, nil
}

func (f *fakeAPI) DestroyWindow(h win32.Handle) error {
	w, ok := f.windows[h]
	if !ok {
		return errors.New("invalid window handle")
	}
	delete(f.windows, h)
	f.destroyed = append(f.destroyed, h)
	if proc, ok := f.classes[w.class]; ok {
		proc(win32.Msg{Handle: h, Message: win32.WMDestroy})
	}
	return nil
}

// failingDestroyAPI refuses the next failures DestroyWindow calls.
type failingDestroyAPI struct {
	*fakeAPI
	failures int
}

func (f *failingDestroyAPI) DestroyWindow(h win32.Handle) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("access denied")
	}
	return f.fakeAPI.DestroyWindow(h)
}

func (f *fakeAPI) DefWindowProc(m win32.Msg) uintptr {
	f.defProc = append(f.defProc, m)
	if m.Message == win32.WMClose {
		_ = f.DestroyWindow(m.Handle)
	}
	return 0
}

func (f *fakeAPI) CreateParam(m win32.Msg) uintptr {
	return m.LParam
}

func (f *fakeAPI) ShowWindow(h win32.Handle, cmd int32) {
	if w, ok := f.windows[h]; ok {
		w.shown = append(w.shown, cmd)
	}
}

func (f *fakeAPI) SetWindowText(h win32.Handle, text string) error {
	w, ok := f.windows[h]
	if !ok {
		return errors.New("invalid window handle")
	}
	w.title = text
	return nil
}

func (f *fakeAPI) AdjustWindowRect(r win32.Rect, style, exStyle uint32) (win32.Rect, error) {
	if style&win32.WSCaption == win32.WSCaption {
		r.Top -= fakeCaption
	}
	if style&win32.WSThickFrame != 0 {
		r.Left -= fakeBorder
		r.Right += fakeBorder
		r.Bottom += fakeBorder
	}
	return r, nil
}

func (f *fakeAPI) PaintBackground(h win32.Handle) {
	f.painted = append(f.painted, h)
}

func (f *fakeAPI) PeekMessage() (win32.Msg, bool) {
	if len(f.queue) == 0 {
		return win32.Msg{}, false
	}
	m := f.queue[0]
	f.queue = f.queue[1:]
	return m, true
}

func (f *fakeAPI) DispatchMessage(m win32.Msg) {
	f.send(m.Handle, m.Message, m.WParam, m.LParam)
}

func (f *fakeAPI) WaitMessage() error {
	if f.idle != nil {
		f.idle()
	}
	if len(f.queue) == 0 {
		f.PostQuitMessage(0)
	}
	return nil
}

func (f *fakeAPI) PostMessage(h win32.Handle, message uint32, wParam, lParam uintptr) error {
	if _, ok := f.windows[h]; !ok {
		return errors.New("invalid window handle")
	}
	f.post(h, message, wParam, lParam)
	return nil
}

func (f *fakeAPI) PostQuitMessage(code int32) {
	f.quits++
	f.quitCode = code
	f.queue = append(f.queue, win32.Msg{Message: win32.WMQuit, WParam: uintptr(code)})
}

func (f *fakeAPI) ClipboardText(owner win32.Handle) (string, error) {
	return f.clipboard, nil
}

func (f *fakeAPI) SetClipboardText(owner win32.Handle, text string) error {
	f.clipboard = text
	return nil
}

// send delivers a message straight to the window procedure, the way
// SendMessage does. Unknown handles fall through to default processing.
func (f *fakeAPI) send(h win32.Handle, message uint32, wParam, lParam uintptr) uintptr {
	m := win32.Msg{Handle: h, Message: message, WParam: wParam, LParam: lParam}
	w, ok := f.windows[h]
	if !ok {
		return f.DefWindowProc(m)
	}
	return f.classes[w.class](m)
}

func (f *fakeAPI) post(h win32.Handle, message uint32, wParam, lParam uintptr) {
	f.queue = append(f.queue, win32.Msg{Handle: h, Message: message, WParam: wParam, LParam: lParam})
}

func (f *fakeAPI) defProcCount(message uint32) int {
	n := 0
	for _, m := range f.defProc {
		if m.Message == message {
			n++
		}
	}
	return n
}

var _ win32.API = (*fakeAPI)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApplication(t *testing.T, opts ...Option) (*Application, *fakeAPI) {
	t.Helper()
	api := newFakeAPI(t)
	opts = append([]Option{WithAPI(api), WithLogger(discardLogger())}, opts...)
	app, err := newApplication(opts...)
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	return app, api
}
