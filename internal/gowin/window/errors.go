package window

import (
	"errors"
	"fmt"
)

var (
	// ErrRegistration means the window class could not be registered. It
	// is reported by every CreateWindow call of the Application.
	ErrRegistration = errors.New("window class registration failed")

	// ErrWindowCreation means the OS refused to create a window.
	ErrWindowCreation = errors.New("window creation failed")

	// ErrTitleEncoding means a title cannot be handed to the OS, which
	// expects a NUL-terminated string.
	ErrTitleEncoding = errors.New("title is not representable as a native string")

	// ErrWindowDestroyed is returned by operations on a window whose
	// native handle is gone or not yet assigned.
	ErrWindowDestroyed = errors.New("window has no live native handle")

	// ErrDecode is wrapped by every DecodeError.
	ErrDecode = errors.New("message decode failed")

	// errSurrogatePending is returned while a high surrogate waits for
	// its partner. It is not a failure and is never logged.
	errSurrogatePending = errors.New("high surrogate pending")
)

// DecodeError reports a native message payload that could not be turned
// into an event.
type DecodeError struct {
	Message uint32
	Reason  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: message %#04x: %s", ErrDecode, e.Message, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}
