//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	cfUnicodeText = 13 // CF_UNICODETEXT
	gmemMoveable  = 0x0002
)

// ClipboardText returns the clipboard's text, or "" if it holds none.
func (u *user32API) ClipboardText(owner Handle) (string, error) {
	ret, _, callErr := procOpenClipboard.Call(uintptr(owner))
	if ret == 0 {
		return "", winErr("OpenClipboard", callErr)
	}
	defer procCloseClipboard.Call()

	hData, _, _ := procGetClipboardData.Call(cfUnicodeText)
	if hData == 0 {
		return "", nil
	}

	ptr, _, callErr := procGlobalLock.Call(hData)
	if ptr == 0 {
		return "", winErr("GlobalLock", callErr)
	}
	defer procGlobalUnlock.Call(hData)

	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(ptr))), nil
}

// SetClipboardText replaces the clipboard contents with text. On success
// the clipboard owns the allocated memory.
func (u *user32API) SetClipboardText(owner Handle, text string) error {
	u16, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}
	size := len(u16) * 2

	hMem, _, callErr := procGlobalAlloc.Call(gmemMoveable, uintptr(size))
	if hMem == 0 {
		return winErr("GlobalAlloc", callErr)
	}

	ptr, _, callErr := procGlobalLock.Call(hMem)
	if ptr == 0 {
		procGlobalFree.Call(hMem)
		return winErr("GlobalLock", callErr)
	}
	copy(unsafe.Slice((*uint16)(unsafe.Pointer(ptr)), len(u16)), u16)
	procGlobalUnlock.Call(hMem)

	ret, _, callErr := procOpenClipboard.Call(uintptr(owner))
	if ret == 0 {
		procGlobalFree.Call(hMem)
		return winErr("OpenClipboard", callErr)
	}
	defer procCloseClipboard.Call()

	procEmptyClipboard.Call()
	ret, _, callErr = procSetClipboardData.Call(cfUnicodeText, hMem)
	if ret == 0 {
		procGlobalFree.Call(hMem)
		return winErr("SetClipboardData", callErr)
	}
	return nil
}
