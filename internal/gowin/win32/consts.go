package win32

// Window messages.
const (
	WMCreate      = 0x0001
	WMDestroy     = 0x0002
	WMMove        = 0x0003
	WMSize        = 0x0005
	WMSetFocus    = 0x0007
	WMKillFocus   = 0x0008
	WMPaint       = 0x000F
	WMClose       = 0x0010
	WMQuit        = 0x0012
	WMNCCreate    = 0x0081
	WMNCDestroy   = 0x0082
	WMKeyDown     = 0x0100
	WMKeyUp       = 0x0101
	WMChar        = 0x0102
	WMSysKeyDown  = 0x0104
	WMSysKeyUp    = 0x0105
	WMMouseMove   = 0x0200
	WMLButtonDown = 0x0201
	WMLButtonUp   = 0x0202
	WMRButtonDown = 0x0204
	WMRButtonUp   = 0x0205
	WMMButtonDown = 0x0207
	WMMButtonUp   = 0x0208
	WMMouseWheel  = 0x020A
	WMXButtonDown = 0x020B
	WMXButtonUp   = 0x020C
	WMMouseHWheel = 0x020E
)

// Window styles.
const (
	WSOverlapped   = 0x00000000
	WSPopup        = 0x80000000
	WSClipSiblings = 0x04000000
	WSClipChildren = 0x02000000
	WSCaption      = 0x00C00000
	WSSysMenu      = 0x00080000
	WSThickFrame   = 0x00040000
	WSMinimizeBox  = 0x00020000
	WSMaximizeBox  = 0x00010000

	WSExAppWindow = 0x00040000
)

// Class styles.
const (
	CSVRedraw = 0x0001
	CSHRedraw = 0x0002
)

// ShowWindow commands.
const (
	SWHide          = 0
	SWShowMinimized = 2
	SWShowMaximized = 3
	SWShowDefault   = 10
)

// CWUseDefault lets the OS pick a window position.
const CWUseDefault int32 = -0x80000000

// Mouse constants.
const (
	XButton1   = 0x0001
	XButton2   = 0x0002
	WheelDelta = 120
)

// PrevKeyStateBit is set in a key message's lParam when the key was already
// down before the message was generated.
const PrevKeyStateBit = 1 << 30

// Virtual-key codes.
const (
	VKBack     = 0x08
	VKTab      = 0x09
	VKClear    = 0x0C
	VKReturn   = 0x0D
	VKShift    = 0x10
	VKControl  = 0x11
	VKMenu     = 0x12 // Alt
	VKPause    = 0x13
	VKCapital  = 0x14
	VKEscape   = 0x1B
	VKSpace    = 0x20
	VKPrior    = 0x21 // Page Up
	VKNext     = 0x22 // Page Down
	VKEnd      = 0x23
	VKHome     = 0x24
	VKLeft     = 0x25
	VKUp       = 0x26
	VKRight    = 0x27
	VKDown     = 0x28
	VKSelect   = 0x29
	VKPrint    = 0x2A
	VKExecute  = 0x2B
	VKSnapshot = 0x2C // Print Screen
	VKInsert   = 0x2D
	VKDelete   = 0x2E
	VKHelp     = 0x2F

	VK0 = 0x30
	VK1 = 0x31
	VK2 = 0x32
	VK3 = 0x33
	VK4 = 0x34
	VK5 = 0x35
	VK6 = 0x36
	VK7 = 0x37
	VK8 = 0x38
	VK9 = 0x39

	VKA = 0x41
	VKB = 0x42
	VKC = 0x43
	VKD = 0x44
	VKE = 0x45
	VKF = 0x46
	VKG = 0x47
	VKH = 0x48
	VKI = 0x49
	VKJ = 0x4A
	VKK = 0x4B
	VKL = 0x4C
	VKM = 0x4D
	VKN = 0x4E
	VKO = 0x4F
	VKP = 0x50
	VKQ = 0x51
	VKR = 0x52
	VKS = 0x53
	VKT = 0x54
	VKU = 0x55
	VKV = 0x56
	VKW = 0x57
	VKX = 0x58
	VKY = 0x59
	VKZ = 0x5A

	VKLWin  = 0x5B
	VKRWin  = 0x5C
	VKApps  = 0x5D
	VKSleep = 0x5F

	VKNumpad0   = 0x60
	VKNumpad1   = 0x61
	VKNumpad2   = 0x62
	VKNumpad3   = 0x63
	VKNumpad4   = 0x64
	VKNumpad5   = 0x65
	VKNumpad6   = 0x66
	VKNumpad7   = 0x67
	VKNumpad8   = 0x68
	VKNumpad9   = 0x69
	VKMultiply  = 0x6A
	VKAdd       = 0x6B
	VKSeparator = 0x6C
	VKSubtract  = 0x6D
	VKDecimal   = 0x6E
	VKDivide    = 0x6F

	VKF1  = 0x70
	VKF2  = 0x71
	VKF3  = 0x72
	VKF4  = 0x73
	VKF5  = 0x74
	VKF6  = 0x75
	VKF7  = 0x76
	VKF8  = 0x77
	VKF9  = 0x78
	VKF10 = 0x79
	VKF11 = 0x7A
	VKF12 = 0x7B
	VKF13 = 0x7C
	VKF14 = 0x7D
	VKF15 = 0x7E
	VKF16 = 0x7F
	VKF17 = 0x80
	VKF18 = 0x81
	VKF19 = 0x82
	VKF20 = 0x83
	VKF21 = 0x84
	VKF22 = 0x85
	VKF23 = 0x86
	VKF24 = 0x87

	VKNumLock = 0x90
	VKScroll  = 0x91

	VKLShift   = 0xA0
	VKRShift   = 0xA1
	VKLControl = 0xA2
	VKRControl = 0xA3
	VKLMenu    = 0xA4
	VKRMenu    = 0xA5

	VKVolumeMute     = 0xAD
	VKVolumeDown     = 0xAE
	VKVolumeUp       = 0xAF
	VKMediaNextTrack = 0xB0
	VKMediaPrevTrack = 0xB1
	VKMediaStop      = 0xB2
	VKMediaPlayPause = 0xB3

	VKOEM1      = 0xBA // ; :
	VKOEMPlus   = 0xBB // = +
	VKOEMComma  = 0xBC // , <
	VKOEMMinus  = 0xBD // - _
	VKOEMPeriod = 0xBE // . >
	VKOEM2      = 0xBF // / ?
	VKOEM3      = 0xC0 // ` ~
	VKOEM4      = 0xDB // [ {
	VKOEM5      = 0xDC // \ |
	VKOEM6      = 0xDD // ] }
	VKOEM7      = 0xDE // ' "
)

// LoWord returns the low 16 bits of v.
func LoWord(v uintptr) uint16 {
	return uint16(v)
}

// HiWord returns bits 16-31 of v.
func HiWord(v uintptr) uint16 {
	return uint16(uint32(v) >> 16)
}

// MakeLong packs two words the way MAKELPARAM/MAKEWPARAM do.
func MakeLong(lo, hi uint16) uintptr {
	return uintptr(uint32(lo) | uint32(hi)<<16)
}
