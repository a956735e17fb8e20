//go:build windows

package win32

import (
	"testing"
)

func TestUser32Smoke(t *testing.T) {
	api, err := New()
	if err != nil {
		t.Skipf("user32 unavailable: %v", err)
	}

	var created, destroyed int
	proc := func(m Msg) uintptr {
		switch m.Message {
		case WMCreate:
			created++
			if got := api.CreateParam(m); got != 0x5150 {
				t.Errorf("CreateParam = %#x, want 0x5150", got)
			}
			return 0
		case WMDestroy:
			destroyed++
			return 0
		}
		return api.DefWindowProc(m)
	}

	const class = "winman-smoke"
	if err := api.RegisterClass(class, proc); err != nil {
		t.Fatalf("RegisterClass: %v", err)
	}
	defer func() {
		if err := api.UnregisterClass(class); err != nil {
			t.Errorf("UnregisterClass: %v", err)
		}
	}()

	style := uint32(WSCaption | WSSysMenu)
	outer, err := api.AdjustWindowRect(Rect{Right: 200, Bottom: 100}, style, 0)
	if err != nil {
		t.Fatalf("AdjustWindowRect: %v", err)
	}
	if outer.Width() < 200 || outer.Height() <= 100 {
		t.Errorf("outer rect %+v does not contain the client area", outer)
	}

	h, err := api.CreateWindow(CreateWindowParams{
		ClassName: class,
		Title:     "smoke",
		Style:     style,
		X:         CWUseDefault,
		Y:         CWUseDefault,
		Width:     outer.Width(),
		Height:    outer.Height(),
		Param:     0x5150,
	})
	if err != nil {
		t.Skipf("CreateWindow (no desktop?): %v", err)
	}
	if created != 1 {
		t.Errorf("WM_CREATE delivered %d times during CreateWindow", created)
	}

	if err := api.SetWindowText(h, "smoke 2"); err != nil {
		t.Errorf("SetWindowText: %v", err)
	}
	if err := api.DestroyWindow(h); err != nil {
		t.Fatalf("DestroyWindow: %v", err)
	}
	if destroyed != 1 {
		t.Errorf("WM_DESTROY delivered %d times during DestroyWindow", destroyed)
	}
}
