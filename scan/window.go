package scan

import (
	"errors"
	"sync"
	"time"
)

// DefaultWindow is how long the scanner stays open waiting for a code
// before closing itself.
const DefaultWindow = 10 * time.Second

var ErrWindowClosed = errors.New("scan window is closed")

// CloseReason says which exit path shut the window.
type CloseReason string

const (
	CloseReasonScanned CloseReason = "scanned"
	CloseReasonManual  CloseReason = "manual"
	CloseReasonTimeout CloseReason = "timeout"
)

// Window is one open scanner session. The auto-close timer is owned by
// the window and is cancelled on every exit path: a successful scan, a
// manual close, or the timeout itself firing.
type Window struct {
	mu      sync.Mutex
	open    bool
	timer   *time.Timer
	onClose func(CloseReason)
}

// OpenWindow starts a scan window that closes itself after d. onClose
// fires exactly once with the reason the window shut.
func OpenWindow(d time.Duration, onClose func(CloseReason)) *Window {
	w := &Window{
		open:    true,
		onClose: onClose,
	}
	w.timer = time.AfterFunc(d, func() {
		w.close(CloseReasonTimeout)
	})
	return w
}

// Scan consumes a decoded payload, shuts the window and returns the
// parsed identity. A scan against an already-closed window fails.
func (w *Window) Scan(raw string) (Identity, error) {
	if !w.close(CloseReasonScanned) {
		return Identity{}, ErrWindowClosed
	}
	return Parse(raw), nil
}

// Close shuts the window on operator request.
func (w *Window) Close() {
	w.close(CloseReasonManual)
}

// IsOpen reports whether the window still accepts scans.
func (w *Window) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

func (w *Window) close(reason CloseReason) bool {
	w.mu.Lock()
	if !w.open {
		w.mu.Unlock()
		return false
	}
	w.open = false
	w.timer.Stop()
	w.mu.Unlock()

	if w.onClose != nil {
		w.onClose(reason)
	}
	return true
}
