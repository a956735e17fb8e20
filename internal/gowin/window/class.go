package window

import (
	"fmt"
	"sync"

	"github.com/tinyrange/winman/internal/gowin/win32"
)

// DefaultClassName is the native window class registered by an Application
// unless WithClassName says otherwise.
const DefaultClassName = "winman"

// classRegistry registers the window class on first use and unregisters it
// when the owning Application finishes. Exactly one registration is
// attempted; a failure is remembered and returned to every later caller.
type classRegistry struct {
	api  win32.API
	name string
	proc win32.WndProc

	once sync.Once
	err  error

	mu         sync.Mutex
	registered bool
}

func newClassRegistry(api win32.API, name string, proc win32.WndProc) *classRegistry {
	return &classRegistry{api: api, name: name, proc: proc}
}

func (c *classRegistry) acquire() (string, error) {
	c.once.Do(func() {
		if err := c.api.RegisterClass(c.name, c.proc); err != nil {
			c.err = fmt.Errorf("%w: class %q: %w", ErrRegistration, c.name, err)
			return
		}
		c.mu.Lock()
		c.registered = true
		c.mu.Unlock()
	})
	return c.name, c.err
}

// release unregisters the class. Every window of the class must already be
// destroyed.
func (c *classRegistry) release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.registered {
		return nil
	}
	c.registered = false
	if err := c.api.UnregisterClass(c.name); err != nil {
		return fmt.Errorf("unregister window class %q: %w", c.name, err)
	}
	return nil
}
