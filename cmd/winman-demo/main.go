// Command winman-demo opens a window and traces every event it receives.
//
// Escape closes the focused window, N opens another one, F11 toggles
// maximize and Ctrl+C copies the window title to the clipboard. The program
// exits when the last window is closed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tinyrange/winman"
	"github.com/tinyrange/winman/internal/gowin/input"
)

type demoWindow struct {
	winman.NopWindowController

	config    winman.WindowConfig
	trace     *tracer
	maximized bool
}

func (d *demoWindow) title() string { return d.config.Title }

func (d *demoWindow) Config() winman.WindowConfig { return d.config }

func (d *demoWindow) OnInit(w *winman.Window) {
	d.trace.event(d.title(), "init", "handle=%#x", uintptr(w.Handle()))
}

func (d *demoWindow) OnClose(w *winman.Window) bool {
	d.trace.event(d.title(), "close", "requested")
	return true
}

func (d *demoWindow) OnClosed(w *winman.Window) {
	d.trace.event(d.title(), "closed", "")
}

func (d *demoWindow) OnMoved(w *winman.Window, ev winman.WindowMovedEvent) {
	d.trace.event(d.title(), "move", "x=%v y=%v", ev.X, ev.Y)
}

func (d *demoWindow) OnResized(w *winman.Window, ev winman.WindowResizedEvent) {
	d.trace.event(d.title(), "resize", "%vx%v", ev.Width, ev.Height)
}

func (d *demoWindow) OnKey(w *winman.Window, ev winman.KeyEvent) {
	d.trace.event(d.title(), "key", "%s %s raw=%#x", ev.Key, ev.State, ev.Raw)
	if !ev.IsDown() {
		return
	}
	switch ev.Key {
	case input.KeyEscape:
		if err := w.RequestClose(); err != nil {
			slog.Warn("request close", "err", err)
		}
	case input.KeyN:
		d.spawn(w.Application())
	case input.KeyF11:
		if d.maximized {
			w.Show()
		} else {
			w.Maximize()
		}
		d.maximized = !d.maximized
	}
}

func (d *demoWindow) OnChar(w *winman.Window, ev winman.CharEvent) {
	d.trace.event(d.title(), "char", "%q repeat=%v", ev.Char, ev.Repeat)
	// Ctrl+C arrives as ETX.
	if ev.Char == 0x03 {
		if err := w.SetClipboardText(d.title()); err != nil {
			slog.Warn("copy title", "err", err)
		}
	}
}

func (d *demoWindow) OnFocus(w *winman.Window, ev winman.FocusChangedEvent) {
	d.trace.event(d.title(), "focus", "%v", ev.Focused)
}

func (d *demoWindow) OnMouseMove(w *winman.Window, ev winman.MouseMoveEvent) {
	d.trace.event(d.title(), "mouse", "move x=%v y=%v", ev.X, ev.Y)
}

func (d *demoWindow) OnMouseButton(w *winman.Window, ev winman.MouseButtonEvent) {
	d.trace.event(d.title(), "mouse", "%s %s x=%v y=%v", ev.Button, ev.State, ev.X, ev.Y)
}

func (d *demoWindow) OnMouseWheel(w *winman.Window, ev winman.MouseWheelEvent) {
	v, h := ev.Notches()
	d.trace.event(d.title(), "wheel", "vertical=%v horizontal=%v", v, h)
}

func (d *demoWindow) spawn(app *winman.Application) {
	cfg := d.config
	cfg.Title = fmt.Sprintf("%s #%d", d.config.Title, len(app.Windows())+1)
	cfg.Position = nil
	w, err := app.CreateWindow(&demoWindow{config: cfg, trace: d.trace})
	if err != nil {
		slog.Error("open window", "err", err)
		return
	}
	w.Show()
}

type demoApp struct {
	config winman.WindowConfig
	trace  *tracer
}

func (a *demoApp) OnInit(app *winman.Application) {
	w, err := app.CreateWindow(&demoWindow{config: a.config, trace: a.trace})
	if err != nil {
		slog.Error("open window", "err", err)
		app.Shutdown()
		return
	}
	w.Show()
}

func (a *demoApp) OnExit(app *winman.Application) int {
	slog.Debug("demo finished")
	return 0
}

func run() (int, error) {
	configPath := flag.String("config", "", "YAML window description")
	title := flag.String("title", "", "window title (overrides -config)")
	verbose := flag.Bool("v", false, "enable debug logging")
	colorFlag := flag.String("color", "auto", "colour the event trace: auto, always or never")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	mode, err := parseColorMode(*colorFlag)
	if err != nil {
		return 2, err
	}

	cfg := winman.DefaultWindowConfig()
	cfg.Title = "winman demo"
	if *configPath != "" {
		cfg, err = winman.LoadWindowConfig(*configPath)
		if err != nil {
			return 1, err
		}
	}
	if *title != "" {
		cfg.Title = *title
	}

	app := &demoApp{
		config: cfg,
		trace:  &tracer{out: os.Stdout, color: mode.enabled(int(os.Stdout.Fd()))},
	}
	code, err := winman.Run[int](app, winman.WithLogger(logger))
	if err != nil {
		return 1, err
	}
	return code, nil
}

func main() {
	code, err := run()
	if err != nil {
		if errors.Is(err, winman.ErrUnsupported) {
			fmt.Fprintln(os.Stderr, "winman-demo: native windows are only available on Windows")
		} else {
			fmt.Fprintf(os.Stderr, "winman-demo: %v\n", err)
		}
	}
	os.Exit(code)
}
