//go:build !windows

package win32

// New reports ErrUnsupported outside Windows.
func New() (API, error) {
	return nil, ErrUnsupported
}
