// Package win32 binds the parts of the Win32 windowing API that winman needs.
//
// The API interface is what the rest of the module programs against. On
// Windows New returns an implementation backed by user32 and kernel32;
// on every other platform it returns ErrUnsupported.
package win32

import "errors"

// ErrUnsupported is returned by New on platforms without a Win32 backend.
var ErrUnsupported = errors.New("win32: windowing API not supported on this platform")

// Handle is an opaque window handle (HWND).
type Handle uintptr

// Point mirrors POINT.
type Point struct {
	X int32
	Y int32
}

// Rect mirrors RECT.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns Right-Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Msg is a window message as delivered to a window procedure or pulled off
// the thread's queue.
type Msg struct {
	Handle  Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

// WndProc handles one message for a window of a registered class.
type WndProc func(m Msg) uintptr

// CreateWindowParams are the arguments to CreateWindowExW.
type CreateWindowParams struct {
	ClassName string
	Title     string
	Style     uint32
	ExStyle   uint32
	X         int32
	Y         int32
	Width     int32
	Height    int32

	// Param is handed back to the window procedure through the
	// CREATESTRUCT of WM_NCCREATE and WM_CREATE; see API.CreateParam.
	Param uintptr
}

// API is the native windowing surface.
//
// CreateWindow and DestroyWindow deliver WM_CREATE and WM_DESTROY to the
// class window procedure before they return. Everything except PostMessage
// and PostQuitMessage must be called from the thread that created the
// windows involved.
type API interface {
	RegisterClass(name string, proc WndProc) error
	UnregisterClass(name string) error

	CreateWindow(p CreateWindowParams) (Handle, error)
	DestroyWindow(h Handle) error
	DefWindowProc(m Msg) uintptr

	// CreateParam extracts CreateWindowParams.Param from a WM_CREATE
	// message.
	CreateParam(m Msg) uintptr

	ShowWindow(h Handle, cmd int32)
	SetWindowText(h Handle, text string) error
	AdjustWindowRect(r Rect, style, exStyle uint32) (Rect, error)

	// PaintBackground validates the update region of h, filling it with
	// the system background brush.
	PaintBackground(h Handle)

	// PeekMessage removes the next message from the thread's queue.
	PeekMessage() (Msg, bool)
	// DispatchMessage translates m and hands it to its window procedure.
	DispatchMessage(m Msg)
	WaitMessage() error
	PostMessage(h Handle, msg uint32, wParam, lParam uintptr) error
	PostQuitMessage(code int32)

	ClipboardText(owner Handle) (string, error)
	SetClipboardText(owner Handle, text string) error
}
