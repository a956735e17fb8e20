//go:build windows

package win32

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

const (
	pmRemove        = 0x0001
	idcArrow        = 32512
	colorBackground = 1
	gcwAtom         = -32
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

type msg struct {
	hwnd     Handle
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       Point
	lPrivate uint32
}

// Only the leading field of CREATESTRUCTW is read.
type createStruct struct {
	lpCreateParams uintptr
}

type paintStruct struct {
	hdc         windows.Handle
	fErase      int32
	rcPaint     Rect
	fRestore    int32
	fIncUpdate  int32
	rgbReserved [32]byte
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassEx  = user32.NewProc("RegisterClassExW")
	procUnregisterClass  = user32.NewProc("UnregisterClassW")
	procCreateWindowEx   = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDefWindowProc    = user32.NewProc("DefWindowProcW")
	procShowWindow       = user32.NewProc("ShowWindow")
	procSetWindowText    = user32.NewProc("SetWindowTextW")
	procAdjustWindowRect = user32.NewProc("AdjustWindowRectEx")
	procBeginPaint       = user32.NewProc("BeginPaint")
	procEndPaint         = user32.NewProc("EndPaint")
	procFillRect         = user32.NewProc("FillRect")
	procPeekMessage      = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessage  = user32.NewProc("DispatchMessageW")
	procWaitMessage      = user32.NewProc("WaitMessage")
	procPostMessage      = user32.NewProc("PostMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procGetClassWord     = user32.NewProc("GetClassWord")
	procLoadCursor       = user32.NewProc("LoadCursorW")
	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procGetClipboardData = user32.NewProc("GetClipboardData")
	procSetClipboardData = user32.NewProc("SetClipboardData")
	procGetModuleHandle  = kernel32.NewProc("GetModuleHandleW")
	procGlobalAlloc      = kernel32.NewProc("GlobalAlloc")
	procGlobalFree       = kernel32.NewProc("GlobalFree")
	procGlobalLock       = kernel32.NewProc("GlobalLock")
	procGlobalUnlock     = kernel32.NewProc("GlobalUnlock")
)

func validateProcs() error {
	procs := []*windows.LazyProc{
		procRegisterClassEx,
		procUnregisterClass,
		procCreateWindowEx,
		procDestroyWindow,
		procDefWindowProc,
		procPeekMessage,
		procDispatchMessage,
		procGetClassWord,
	}
	for _, p := range procs {
		if err := p.Find(); err != nil {
			return fmt.Errorf("missing procedure %q: %w", p.Name, err)
		}
	}
	return nil
}

func winErr(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno == 0 {
		return fmt.Errorf("%s failed", op)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

type user32API struct {
	instance uintptr

	mu    sync.RWMutex
	atoms map[string]uint16
	procs map[uint16]WndProc
}

var (
	// All classes share one trampoline; the class atom of the target
	// window selects the Go procedure.
	trampoline uintptr
	backend    *user32API
	backendErr error
	once       sync.Once
)

// New returns the process-wide Win32 backend.
func New() (API, error) {
	once.Do(func() {
		if err := validateProcs(); err != nil {
			backendErr = err
			return
		}
		inst, _, _ := procGetModuleHandle.Call(0)
		backend = &user32API{
			instance: inst,
			atoms:    make(map[string]uint16),
			procs:    make(map[uint16]WndProc),
		}
		trampoline = purego.NewCallback(wndProc)
	})
	if backendErr != nil {
		return nil, backendErr
	}
	return backend, nil
}

func wndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	idx := int32(gcwAtom)
	atom, _, _ := procGetClassWord.Call(hwnd, uintptr(idx))

	backend.mu.RLock()
	proc := backend.procs[uint16(atom)]
	backend.mu.RUnlock()

	m := Msg{Handle: Handle(hwnd), Message: uint32(message), WParam: wParam, LParam: lParam}
	if proc == nil {
		return backend.DefWindowProc(m)
	}
	return proc(m)
}

func (u *user32API) RegisterClass(name string, proc WndProc) error {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("class name %q: %w", name, err)
	}
	cursor, _, _ := procLoadCursor.Call(0, idcArrow)

	wc := wndClassEx{
		cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		style:         CSHRedraw | CSVRedraw,
		lpfnWndProc:   trampoline,
		hInstance:     windows.Handle(u.instance),
		hCursor:       windows.Handle(cursor),
		lpszClassName: namePtr,
	}

	atom, _, callErr := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		if errors.Is(callErr, windows.ERROR_CLASS_ALREADY_EXISTS) {
			return fmt.Errorf("window class %q already registered: %w", name, callErr)
		}
		return winErr("RegisterClassExW", callErr)
	}

	u.mu.Lock()
	u.atoms[name] = uint16(atom)
	u.procs[uint16(atom)] = proc
	u.mu.Unlock()
	return nil
}

func (u *user32API) UnregisterClass(name string) error {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("class name %q: %w", name, err)
	}
	ret, _, callErr := procUnregisterClass.Call(uintptr(unsafe.Pointer(namePtr)), u.instance)
	if ret == 0 {
		return winErr("UnregisterClassW", callErr)
	}

	u.mu.Lock()
	if atom, ok := u.atoms[name]; ok {
		delete(u.procs, atom)
		delete(u.atoms, name)
	}
	u.mu.Unlock()
	return nil
}

func (u *user32API) CreateWindow(p CreateWindowParams) (Handle, error) {
	classPtr, err := windows.UTF16PtrFromString(p.ClassName)
	if err != nil {
		return 0, fmt.Errorf("class name %q: %w", p.ClassName, err)
	}
	titlePtr, err := windows.UTF16PtrFromString(p.Title)
	if err != nil {
		return 0, fmt.Errorf("window title: %w", err)
	}

	ret, _, callErr := procCreateWindowEx.Call(
		uintptr(p.ExStyle),
		uintptr(unsafe.Pointer(classPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(p.Style),
		uintptr(p.X),
		uintptr(p.Y),
		uintptr(p.Width),
		uintptr(p.Height),
		0,
		0,
		u.instance,
		p.Param,
	)
	if ret == 0 {
		return 0, winErr("CreateWindowExW", callErr)
	}
	return Handle(ret), nil
}

func (u *user32API) DestroyWindow(h Handle) error {
	ret, _, callErr := procDestroyWindow.Call(uintptr(h))
	if ret == 0 {
		return winErr("DestroyWindow", callErr)
	}
	return nil
}

func (u *user32API) DefWindowProc(m Msg) uintptr {
	ret, _, _ := procDefWindowProc.Call(uintptr(m.Handle), uintptr(m.Message), m.WParam, m.LParam)
	return ret
}

func (u *user32API) CreateParam(m Msg) uintptr {
	if m.LParam == 0 {
		return 0
	}
	cs := (*createStruct)(unsafe.Pointer(m.LParam))
	return cs.lpCreateParams
}

func (u *user32API) ShowWindow(h Handle, cmd int32) {
	procShowWindow.Call(uintptr(h), uintptr(cmd))
}

func (u *user32API) SetWindowText(h Handle, text string) error {
	textPtr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return err
	}
	ret, _, callErr := procSetWindowText.Call(uintptr(h), uintptr(unsafe.Pointer(textPtr)))
	if ret == 0 {
		return winErr("SetWindowTextW", callErr)
	}
	return nil
}

func (u *user32API) AdjustWindowRect(r Rect, style, exStyle uint32) (Rect, error) {
	ret, _, callErr := procAdjustWindowRect.Call(
		uintptr(unsafe.Pointer(&r)),
		uintptr(style),
		0,
		uintptr(exStyle),
	)
	if ret == 0 {
		return Rect{}, winErr("AdjustWindowRectEx", callErr)
	}
	return r, nil
}

func (u *user32API) PaintBackground(h Handle) {
	var ps paintStruct
	hdc, _, _ := procBeginPaint.Call(uintptr(h), uintptr(unsafe.Pointer(&ps)))
	if hdc == 0 {
		return
	}
	procFillRect.Call(hdc, uintptr(unsafe.Pointer(&ps.rcPaint)), colorBackground+1)
	procEndPaint.Call(uintptr(h), uintptr(unsafe.Pointer(&ps)))
}

func (u *user32API) PeekMessage() (Msg, bool) {
	var m msg
	ret, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
	if ret == 0 {
		return Msg{}, false
	}
	return Msg{
		Handle:  m.hwnd,
		Message: m.message,
		WParam:  m.wParam,
		LParam:  m.lParam,
		Time:    m.time,
		Pt:      m.pt,
	}, true
}

func (u *user32API) DispatchMessage(in Msg) {
	m := msg{
		hwnd:    in.Handle,
		message: in.Message,
		wParam:  in.WParam,
		lParam:  in.LParam,
		time:    in.Time,
		pt:      in.Pt,
	}
	procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
	procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
}

func (u *user32API) WaitMessage() error {
	ret, _, callErr := procWaitMessage.Call()
	if ret == 0 {
		return winErr("WaitMessage", callErr)
	}
	return nil
}

func (u *user32API) PostMessage(h Handle, message uint32, wParam, lParam uintptr) error {
	ret, _, callErr := procPostMessage.Call(uintptr(h), uintptr(message), wParam, lParam)
	if ret == 0 {
		return winErr("PostMessageW", callErr)
	}
	return nil
}

func (u *user32API) PostQuitMessage(code int32) {
	procPostQuitMessage.Call(uintptr(code))
}
