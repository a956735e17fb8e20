//go:build !windows

package win32

import (
	"errors"
	"testing"
)

func TestNewUnsupported(t *testing.T) {
	api, err := New()
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if api != nil {
		t.Errorf("api = %v, want nil", api)
	}
}
