package input

import (
	"fmt"

	"github.com/tinyrange/winman/internal/gowin/win32"
)

// VirtualKey identifies a logical keyboard key independent of the platform's
// raw key codes.
type VirtualKey uint16

// KeyUnrecognized is what DecodeVirtualKey yields for a raw code outside the
// table. It has no symbolic name and no raw code.
const KeyUnrecognized VirtualKey = 0

const (
	// Letters
	KeyA VirtualKey = iota + 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Top row digits
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Numpad
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadMultiply
	KeyNumpadAdd
	KeyNumpadSeparator
	KeyNumpadSubtract
	KeyNumpadDecimal
	KeyNumpadDivide

	KeyBackspace
	KeyTab
	KeyEnter

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Modifiers. The sided variants are only reported by some keyboards and
	// input paths; WM_KEYDOWN usually carries the generic code.
	KeyShift
	KeyControl
	KeyAlt
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper  // Windows key
	KeyRightSuper // Windows key
	KeyMenu       // Applications key

	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	KeyPause
	KeyEscape
	KeySpace

	// Navigation
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyLeft
	KeyUp
	KeyRight
	KeyDown

	KeyClear
	KeySelect
	KeyPrint
	KeyExecute
	KeyPrintScreen
	KeyHelp
	KeySleep

	// Punctuation (US layout legends)
	KeyColon        // ; :
	KeyPlus         // = +
	KeyComma        // , <
	KeyMinus        // - _
	KeyPeriod       // . >
	KeySlash        // / ?
	KeyTilde        // ` ~
	KeyLeftBracket  // [ {
	KeyBackslash    // \ |
	KeyRightBracket // ] }
	KeyQuote        // ' "

	// Media
	KeyVolumeMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNextTrack
	KeyMediaPreviousTrack
	KeyMediaStop
	KeyMediaPlayPause

	keyCount
)

type keyInfo struct {
	name string
	raw  uint32
}

var keyTable = [keyCount]keyInfo{
	KeyA: {"A", win32.VKA},
	KeyB: {"B", win32.VKB},
	KeyC: {"C", win32.VKC},
	KeyD: {"D", win32.VKD},
	KeyE: {"E", win32.VKE},
	KeyF: {"F", win32.VKF},
	KeyG: {"G", win32.VKG},
	KeyH: {"H", win32.VKH},
	KeyI: {"I", win32.VKI},
	KeyJ: {"J", win32.VKJ},
	KeyK: {"K", win32.VKK},
	KeyL: {"L", win32.VKL},
	KeyM: {"M", win32.VKM},
	KeyN: {"N", win32.VKN},
	KeyO: {"O", win32.VKO},
	KeyP: {"P", win32.VKP},
	KeyQ: {"Q", win32.VKQ},
	KeyR: {"R", win32.VKR},
	KeyS: {"S", win32.VKS},
	KeyT: {"T", win32.VKT},
	KeyU: {"U", win32.VKU},
	KeyV: {"V", win32.VKV},
	KeyW: {"W", win32.VKW},
	KeyX: {"X", win32.VKX},
	KeyY: {"Y", win32.VKY},
	KeyZ: {"Z", win32.VKZ},

	KeyNum0: {"Num0", win32.VK0},
	KeyNum1: {"Num1", win32.VK1},
	KeyNum2: {"Num2", win32.VK2},
	KeyNum3: {"Num3", win32.VK3},
	KeyNum4: {"Num4", win32.VK4},
	KeyNum5: {"Num5", win32.VK5},
	KeyNum6: {"Num6", win32.VK6},
	KeyNum7: {"Num7", win32.VK7},
	KeyNum8: {"Num8", win32.VK8},
	KeyNum9: {"Num9", win32.VK9},

	KeyNumpad0:         {"Numpad0", win32.VKNumpad0},
	KeyNumpad1:         {"Numpad1", win32.VKNumpad1},
	KeyNumpad2:         {"Numpad2", win32.VKNumpad2},
	KeyNumpad3:         {"Numpad3", win32.VKNumpad3},
	KeyNumpad4:         {"Numpad4", win32.VKNumpad4},
	KeyNumpad5:         {"Numpad5", win32.VKNumpad5},
	KeyNumpad6:         {"Numpad6", win32.VKNumpad6},
	KeyNumpad7:         {"Numpad7", win32.VKNumpad7},
	KeyNumpad8:         {"Numpad8", win32.VKNumpad8},
	KeyNumpad9:         {"Numpad9", win32.VKNumpad9},
	KeyNumpadMultiply:  {"NumpadMultiply", win32.VKMultiply},
	KeyNumpadAdd:       {"NumpadAdd", win32.VKAdd},
	KeyNumpadSeparator: {"NumpadSeparator", win32.VKSeparator},
	KeyNumpadSubtract:  {"NumpadSubtract", win32.VKSubtract},
	KeyNumpadDecimal:   {"NumpadDecimal", win32.VKDecimal},
	KeyNumpadDivide:    {"NumpadDivide", win32.VKDivide},

	KeyBackspace: {"Backspace", win32.VKBack},
	KeyTab:       {"Tab", win32.VKTab},
	KeyEnter:     {"Enter", win32.VKReturn},

	KeyF1:  {"F1", win32.VKF1},
	KeyF2:  {"F2", win32.VKF2},
	KeyF3:  {"F3", win32.VKF3},
	KeyF4:  {"F4", win32.VKF4},
	KeyF5:  {"F5", win32.VKF5},
	KeyF6:  {"F6", win32.VKF6},
	KeyF7:  {"F7", win32.VKF7},
	KeyF8:  {"F8", win32.VKF8},
	KeyF9:  {"F9", win32.VKF9},
	KeyF10: {"F10", win32.VKF10},
	KeyF11: {"F11", win32.VKF11},
	KeyF12: {"F12", win32.VKF12},
	KeyF13: {"F13", win32.VKF13},
	KeyF14: {"F14", win32.VKF14},
	KeyF15: {"F15", win32.VKF15},
	KeyF16: {"F16", win32.VKF16},
	KeyF17: {"F17", win32.VKF17},
	KeyF18: {"F18", win32.VKF18},
	KeyF19: {"F19", win32.VKF19},
	KeyF20: {"F20", win32.VKF20},
	KeyF21: {"F21", win32.VKF21},
	KeyF22: {"F22", win32.VKF22},
	KeyF23: {"F23", win32.VKF23},
	KeyF24: {"F24", win32.VKF24},

	KeyShift:        {"Shift", win32.VKShift},
	KeyControl:      {"Control", win32.VKControl},
	KeyAlt:          {"Alt", win32.VKMenu},
	KeyLeftShift:    {"LeftShift", win32.VKLShift},
	KeyRightShift:   {"RightShift", win32.VKRShift},
	KeyLeftControl:  {"LeftControl", win32.VKLControl},
	KeyRightControl: {"RightControl", win32.VKRControl},
	KeyLeftAlt:      {"LeftAlt", win32.VKLMenu},
	KeyRightAlt:     {"RightAlt", win32.VKRMenu},
	KeyLeftSuper:    {"LeftSuper", win32.VKLWin},
	KeyRightSuper:   {"RightSuper", win32.VKRWin},
	KeyMenu:         {"Menu", win32.VKApps},

	KeyCapsLock:   {"CapsLock", win32.VKCapital},
	KeyNumLock:    {"NumLock", win32.VKNumLock},
	KeyScrollLock: {"ScrollLock", win32.VKScroll},

	KeyPause:  {"Pause", win32.VKPause},
	KeyEscape: {"Escape", win32.VKEscape},
	KeySpace:  {"Space", win32.VKSpace},

	KeyInsert:   {"Insert", win32.VKInsert},
	KeyDelete:   {"Delete", win32.VKDelete},
	KeyPageUp:   {"PageUp", win32.VKPrior},
	KeyPageDown: {"PageDown", win32.VKNext},
	KeyEnd:      {"End", win32.VKEnd},
	KeyHome:     {"Home", win32.VKHome},
	KeyLeft:     {"Left", win32.VKLeft},
	KeyUp:       {"Up", win32.VKUp},
	KeyRight:    {"Right", win32.VKRight},
	KeyDown:     {"Down", win32.VKDown},

	KeyClear:       {"Clear", win32.VKClear},
	KeySelect:      {"Select", win32.VKSelect},
	KeyPrint:       {"Print", win32.VKPrint},
	KeyExecute:     {"Execute", win32.VKExecute},
	KeyPrintScreen: {"PrintScreen", win32.VKSnapshot},
	KeyHelp:        {"Help", win32.VKHelp},
	KeySleep:       {"Sleep", win32.VKSleep},

	KeyColon:        {"Colon", win32.VKOEM1},
	KeyPlus:         {"Plus", win32.VKOEMPlus},
	KeyComma:        {"Comma", win32.VKOEMComma},
	KeyMinus:        {"Minus", win32.VKOEMMinus},
	KeyPeriod:       {"Period", win32.VKOEMPeriod},
	KeySlash:        {"Slash", win32.VKOEM2},
	KeyTilde:        {"Tilde", win32.VKOEM3},
	KeyLeftBracket:  {"LeftBracket", win32.VKOEM4},
	KeyBackslash:    {"Backslash", win32.VKOEM5},
	KeyRightBracket: {"RightBracket", win32.VKOEM6},
	KeyQuote:        {"Quote", win32.VKOEM7},

	KeyVolumeMute:         {"VolumeMute", win32.VKVolumeMute},
	KeyVolumeDown:         {"VolumeDown", win32.VKVolumeDown},
	KeyVolumeUp:           {"VolumeUp", win32.VKVolumeUp},
	KeyMediaNextTrack:     {"MediaNextTrack", win32.VKMediaNextTrack},
	KeyMediaPreviousTrack: {"MediaPreviousTrack", win32.VKMediaPrevTrack},
	KeyMediaStop:          {"MediaStop", win32.VKMediaStop},
	KeyMediaPlayPause:     {"MediaPlayPause", win32.VKMediaPlayPause},
}

// Raw codes are a single byte on Win32.
var rawToKey [256]VirtualKey

func init() {
	for k := KeyUnrecognized + 1; k < keyCount; k++ {
		info := keyTable[k]
		if info.name == "" {
			panic(fmt.Sprintf("input: key %d has no table entry", k))
		}
		if rawToKey[info.raw] != KeyUnrecognized {
			panic(fmt.Sprintf("input: raw code %#x mapped twice", info.raw))
		}
		rawToKey[info.raw] = k
	}
}

// DecodeVirtualKey maps a raw platform key code to a VirtualKey. It never
// fails: codes without a table entry yield KeyUnrecognized.
func DecodeVirtualKey(raw uint32) VirtualKey {
	if raw >= uint32(len(rawToKey)) {
		return KeyUnrecognized
	}
	return rawToKey[raw]
}

// Raw returns the platform key code for k. It reports false for
// KeyUnrecognized and for values outside the enumeration.
func (k VirtualKey) Raw() (uint32, bool) {
	if !k.Valid() {
		return 0, false
	}
	return keyTable[k].raw, true
}

// Valid reports whether k names a key.
func (k VirtualKey) Valid() bool {
	return k > KeyUnrecognized && k < keyCount
}

func (k VirtualKey) String() string {
	switch {
	case k == KeyUnrecognized:
		return "Unrecognized"
	case k.Valid():
		return keyTable[k].name
	default:
		return fmt.Sprintf("VirtualKey(%d)", uint16(k))
	}
}

// VirtualKeys returns every named key in declaration order.
func VirtualKeys() []VirtualKey {
	keys := make([]VirtualKey, 0, keyCount-1)
	for k := KeyUnrecognized + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
