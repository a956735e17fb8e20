package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/tinyrange/winman/internal/gowin/win32"
)

// QuitPolicy decides when destroying a window ends the message loop.
type QuitPolicy uint8

const (
	// QuitOnLastWindow posts the quit signal once the last tracked window
	// is destroyed.
	QuitOnLastWindow QuitPolicy = iota
	// QuitOnAnyWindow posts the quit signal whenever any window is
	// destroyed.
	QuitOnAnyWindow
	// QuitManual never posts the quit signal; the application calls
	// Shutdown itself.
	QuitManual
)

func (p QuitPolicy) String() string {
	switch p {
	case QuitOnLastWindow:
		return "last-window"
	case QuitOnAnyWindow:
		return "any-window"
	case QuitManual:
		return "manual"
	default:
		return fmt.Sprintf("QuitPolicy(%d)", uint8(p))
	}
}

type options struct {
	api        win32.API
	logger     *slog.Logger
	className  string
	quitPolicy QuitPolicy
}

// Option configures an Application.
type Option func(*options)

// WithLogger sets the logger used for lifecycle and dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClassName overrides the native window class name.
func WithClassName(name string) Option {
	return func(o *options) { o.className = name }
}

// WithQuitPolicy selects when window destruction ends the message loop.
func WithQuitPolicy(p QuitPolicy) Option {
	return func(o *options) { o.quitPolicy = p }
}

// WithAPI runs the Application against the given platform API instead of
// the native one.
func WithAPI(api win32.API) Option {
	return func(o *options) { o.api = api }
}

// Application owns the windows of one Run and the message loop that feeds
// them.
type Application struct {
	api        win32.API
	log        *slog.Logger
	quitPolicy QuitPolicy
	class      *classRegistry

	mu        sync.RWMutex
	windows   []*Window
	byHandle  map[win32.Handle]*Window
	pending   map[uintptr]*Window
	nextToken uintptr

	// Loop-thread only.
	exiting bool
}

func newApplication(opts ...Option) (*Application, error) {
	o := options{className: DefaultClassName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.className == "" || strings.ContainsRune(o.className, 0) {
		return nil, fmt.Errorf("%w: invalid class name %q", ErrRegistration, o.className)
	}
	if o.api == nil {
		api, err := win32.New()
		if err != nil {
			return nil, fmt.Errorf("initialise windowing: %w", err)
		}
		o.api = api
	}

	app := &Application{
		api:        o.api,
		log:        o.logger,
		quitPolicy: o.quitPolicy,
		byHandle:   make(map[win32.Handle]*Window),
		pending:    make(map[uintptr]*Window),
	}
	app.class = newClassRegistry(o.api, o.className, app.windowProc)
	return app, nil
}

// Run creates an Application, hands it to ctrl.OnInit and pumps messages
// until the quit signal is observed. The value produced by ctrl.OnExit is
// returned.
//
// Run locks the calling goroutine to its OS thread for its whole duration;
// every controller callback runs on that thread. Windows still open when
// the loop ends are closed after OnExit, without consulting OnClose.
func Run[T any](ctrl ApplicationController[T], opts ...Option) (T, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	app, err := newApplication(opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return runApplication(app, ctrl)
}

func runApplication[T any](app *Application, ctrl ApplicationController[T]) (T, error) {
	before, _ := ctrl.(BeforeWindowEventsHook)
	after, _ := ctrl.(AfterWindowEventsHook)

	app.log.Debug("application starting", slog.String("quit_policy", app.quitPolicy.String()))
	ctrl.OnInit(app)

	for {
		if before != nil {
			before.BeforeWindowEvents(app)
		}
		if app.drain() {
			break
		}
		if after != nil {
			after.AfterWindowEvents(app)
		} else {
			app.WaitForEvents()
		}
	}

	app.log.Debug("application exiting")
	result := ctrl.OnExit(app)
	return result, app.teardown()
}

// drain dispatches every queued message without blocking and reports
// whether the quit signal was among them.
func (a *Application) drain() (quit bool) {
	for {
		m, ok := a.api.PeekMessage()
		if !ok {
			return quit
		}
		if m.Message == win32.WMQuit {
			quit = true
			continue
		}
		a.api.DispatchMessage(m)
	}
}

func (a *Application) teardown() error {
	a.exiting = true
	for _, w := range a.Windows() {
		w.close()
	}
	if n := len(a.Windows()); n > 0 {
		a.log.Error("windows survived teardown", slog.Int("count", n))
	}
	return a.class.release()
}

// WaitForEvents blocks until at least one message is queued for the loop
// thread.
func (a *Application) WaitForEvents() {
	if err := a.api.WaitMessage(); err != nil {
		a.log.Error("wait for messages", slog.Any("err", err))
	}
}

// Shutdown posts the quit signal. Run returns after the current drain.
// It must be called on the message-loop thread; other goroutines should
// RequestClose their windows instead.
func (a *Application) Shutdown() {
	a.api.PostQuitMessage(0)
}

// Logger returns the Application's logger.
func (a *Application) Logger() *slog.Logger {
	return a.log
}

// Windows returns the live windows in creation order.
func (a *Application) Windows() []*Window {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.windows)
}

// Lookup returns the window owning a native handle, or nil.
func (a *Application) Lookup(h win32.Handle) *Window {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.byHandle[h]
}

// CreateWindow creates a native window driven by ctrl. The window's OnInit
// has already run when CreateWindow returns.
func (a *Application) CreateWindow(ctrl WindowController) (*Window, error) {
	if ctrl == nil {
		return nil, errors.New("create window: nil controller")
	}
	cfg := ctrl.Config()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	className, err := a.class.acquire()
	if err != nil {
		return nil, err
	}

	style, exStyle := windowStyle(cfg)
	client := cfg.ClientSize()
	outer, err := a.api.AdjustWindowRect(win32.Rect{
		Right:  int32(client.Width),
		Bottom: int32(client.Height),
	}, style, exStyle)
	if err != nil {
		return nil, fmt.Errorf("%w: adjust window rect: %w", ErrWindowCreation, err)
	}

	x, y := win32.CWUseDefault, win32.CWUseDefault
	if cfg.Position != nil {
		x, y = int32(cfg.Position.X), int32(cfg.Position.Y)
	}

	w := newWindow(a, ctrl, cfg)
	token := a.addPending(w)
	defer a.takePending(token)

	h, err := a.api.CreateWindow(win32.CreateWindowParams{
		ClassName: className,
		Title:     cfg.Title,
		Style:     style,
		ExStyle:   exStyle,
		X:         x,
		Y:         y,
		Width:     outer.Width(),
		Height:    outer.Height(),
		Param:     token,
	})
	if err != nil {
		a.forget(w)
		return nil, fmt.Errorf("%w: %q: %w", ErrWindowCreation, cfg.Title, err)
	}
	if w.State() == StateUninitialized {
		// The OS created something, but not through our window procedure.
		if derr := a.api.DestroyWindow(h); derr != nil {
			a.log.Error("destroy orphaned window", slog.Uint64("handle", uint64(h)), slog.Any("err", derr))
		}
		return nil, fmt.Errorf("%w: %q: no creation notification", ErrWindowCreation, cfg.Title)
	}

	a.log.Debug("window ready", slog.Any("window", w), slog.String("title", cfg.Title))
	return w, nil
}

// windowStyle maps the portable decoration flags to native style bits.
func windowStyle(cfg Config) (style, exStyle uint32) {
	style = win32.WSClipSiblings | win32.WSClipChildren
	if cfg.Decorated {
		style |= win32.WSCaption
		if cfg.Resizable {
			style |= win32.WSSysMenu | win32.WSMinimizeBox | win32.WSMaximizeBox | win32.WSThickFrame
		}
	} else {
		style |= win32.WSPopup
	}
	return style, win32.WSExAppWindow
}

func (a *Application) addPending(w *Window) uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextToken++
	a.pending[a.nextToken] = w
	return a.nextToken
}

func (a *Application) takePending(token uintptr) *Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	w := a.pending[token]
	delete(a.pending, token)
	return w
}

// track makes a freshly bound window visible to Lookup and Windows.
func (a *Application) track(w *Window) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.byHandle[w.Handle()] = w
	a.windows = append(a.windows, w)
}

// forget removes w from the registry and the live collection. It reports
// whether w was tracked and how many windows remain.
func (a *Application) forget(w *Window) (tracked bool, remaining int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if h := w.Handle(); h != 0 && a.byHandle[h] == w {
		delete(a.byHandle, h)
	}
	if i := slices.Index(a.windows, w); i >= 0 {
		a.windows = slices.Delete(a.windows, i, i+1)
		tracked = true
	}
	return tracked, len(a.windows)
}
