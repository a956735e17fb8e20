package window

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tinyrange/winman/internal/gowin/input"
	"github.com/tinyrange/winman/internal/gowin/win32"
)

// decodePoint reads the signed x/y pair packed into lParam by mouse and
// move messages. Coordinates left of or above the origin are negative.
func decodePoint(lParam uintptr) (x, y float32) {
	return float32(int16(win32.LoWord(lParam))), float32(int16(win32.HiWord(lParam)))
}

// decodeSize reads the unsigned width/height pair of WM_SIZE.
func decodeSize(lParam uintptr) (width, height float32) {
	return float32(win32.LoWord(lParam)), float32(win32.HiWord(lParam))
}

// decodeWheelDelta reads the signed rotation from the high word of wParam.
func decodeWheelDelta(wParam uintptr) float32 {
	return float32(int16(win32.HiWord(wParam)))
}

// decodeXButton maps the high word of an XBUTTON message's wParam. Any
// value other than XBUTTON1/XBUTTON2 means the message is not what it
// claims to be.
func decodeXButton(message uint32, wParam uintptr) (input.MouseButton, error) {
	switch x := win32.HiWord(wParam); x {
	case win32.XButton1:
		return input.MouseX1, nil
	case win32.XButton2:
		return input.MouseX2, nil
	default:
		return 0, &DecodeError{Message: message, Reason: fmt.Sprintf("unknown x-button %#x", x)}
	}
}

// prevKeyDown reports the previous-key-state bit of a key message.
func prevKeyDown(lParam uintptr) bool {
	return lParam&win32.PrevKeyStateBit != 0
}

func decodeKeyDown(m win32.Msg) input.KeyEvent {
	raw := uint32(m.WParam)
	state := input.KeyPress
	if prevKeyDown(m.LParam) {
		state = input.KeyRepeat
	}
	return input.KeyEvent{Key: input.DecodeVirtualKey(raw), State: state, Raw: raw}
}

func decodeKeyUp(m win32.Msg) input.KeyEvent {
	raw := uint32(m.WParam)
	return input.KeyEvent{Key: input.DecodeVirtualKey(raw), State: input.KeyRelease, Raw: raw}
}

// decodeChar turns a WM_CHAR code into a rune. Characters outside the BMP
// arrive as two messages; the high surrogate is parked in *high until its
// partner shows up.
func decodeChar(message uint32, code uint32, high *rune) (rune, error) {
	r := rune(code)
	switch {
	case code >= 0xD800 && code < 0xDC00:
		*high = r
		return 0, errSurrogatePending
	case code >= 0xDC00 && code < 0xE000:
		if *high == 0 {
			return 0, &DecodeError{Message: message, Reason: "unpaired low surrogate"}
		}
		r = utf16.DecodeRune(*high, r)
		*high = 0
		return r, nil
	}

	*high = 0
	if !utf8.ValidRune(r) {
		return 0, &DecodeError{Message: message, Reason: fmt.Sprintf("invalid character code %#x", code)}
	}
	return r, nil
}
