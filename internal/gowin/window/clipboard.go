package window

import "fmt"

// ClipboardText returns the text on the system clipboard, opening it on
// behalf of this window. An empty clipboard yields "".
func (w *Window) ClipboardText() (string, error) {
	h, ok := w.liveHandle()
	if !ok {
		return "", ErrWindowDestroyed
	}
	text, err := w.app.api.ClipboardText(h)
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// SetClipboardText replaces the clipboard contents with text.
func (w *Window) SetClipboardText(text string) error {
	h, ok := w.liveHandle()
	if !ok {
		return ErrWindowDestroyed
	}
	if err := w.app.api.SetClipboardText(h, text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
